package harehttp

import (
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Supported zstd compression levels.
const (
	CompressZstdSpeedNotSet = iota
	CompressZstdBestSpeed
	CompressZstdDefault
	CompressZstdSpeedBetter
	CompressZstdBestCompression
)

var (
	zstdDecoderPool   sync.Pool
	zstdWriterPoolMap = newCompressWriterPoolMap()
)

func acquireZstdReader(r io.Reader) (*zstd.Decoder, error) {
	v := zstdDecoderPool.Get()
	if v == nil {
		return zstd.NewReader(r)
	}
	zr := v.(*zstd.Decoder)
	if err := zr.Reset(r); err != nil {
		return nil, err
	}
	return zr, nil
}

func releaseZstdReader(zr *zstd.Decoder) {
	zstdDecoderPool.Put(zr)
}

func acquireZstdWriter(w io.Writer, level int) *zstd.Encoder {
	nLevel := normalizeZstdCompressLevel(level)
	p := zstdWriterPoolMap[nLevel]
	v := p.Get()
	if v == nil {
		zw, err := zstd.NewWriter(w, zstd.WithEncoderLevel(zstd.EncoderLevel(level)))
		if err != nil {
			panic(fmt.Sprintf("BUG: unexpected error from zstd.NewWriter(%d): %v", level, err))
		}
		return zw
	}
	zw := v.(*zstd.Encoder)
	zw.Reset(w)
	return zw
}

func releaseZstdWriter(zw *zstd.Encoder, level int) {
	zw.Close()
	nLevel := normalizeZstdCompressLevel(level)
	zstdWriterPoolMap[nLevel].Put(zw)
}

// normalizeZstdCompressLevel translates a zstd compression level into
// [0..4], so it could be used as an index in the writer pool map.
func normalizeZstdCompressLevel(level int) int {
	if level < CompressZstdSpeedNotSet || level > CompressZstdBestCompression {
		level = CompressZstdDefault
	}
	return level
}

// AppendZstdBytesLevel appends zstd compressed src to dst using the
// given compression level and returns the resulting dst.
func AppendZstdBytesLevel(dst, src []byte, level int) []byte {
	w := &byteSliceWriter{b: dst}
	zw := acquireZstdWriter(w, level)
	zw.Write(src) //nolint:errcheck
	releaseZstdWriter(zw, level)
	return w.b
}

// AppendZstdBytes appends zstd compressed src to dst and returns the
// resulting dst.
func AppendZstdBytes(dst, src []byte) []byte {
	return AppendZstdBytesLevel(dst, src, CompressZstdDefault)
}

// AppendUnzstdBytes appends zstd decompressed src to dst and returns
// the resulting dst.
func AppendUnzstdBytes(dst, src []byte) ([]byte, error) {
	r := &byteSliceReader{b: src}
	zr, err := acquireZstdReader(r)
	if err != nil {
		return dst, err
	}
	w := &byteSliceWriter{b: dst}
	_, err = io.Copy(w, zr)
	releaseZstdReader(zr)
	return w.b, err
}

// BodyUnzstd returns the request body decompressed with zstd.
func (req *Request) BodyUnzstd() ([]byte, error) {
	return AppendUnzstdBytes(nil, req.body)
}

// BodyUnzstd returns the response body decompressed with zstd.
func (resp *Response) BodyUnzstd() ([]byte, error) {
	return AppendUnzstdBytes(nil, resp.body)
}
