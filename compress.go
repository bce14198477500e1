package harehttp

import (
	"fmt"
	"io"
	"sync"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
)

// Supported gzip compression levels.
const (
	CompressNoCompression      = gzip.NoCompression
	CompressBestSpeed          = gzip.BestSpeed
	CompressBestCompression    = gzip.BestCompression
	CompressDefaultCompression = gzip.DefaultCompression
	CompressHuffmanOnly        = gzip.HuffmanOnly
)

// Supported brotli compression levels.
const (
	CompressBrotliBestSpeed          = brotli.BestSpeed
	CompressBrotliBestCompression    = brotli.BestCompression
	CompressBrotliDefaultCompression = brotli.DefaultCompression
)

var (
	gzipReaderPool   sync.Pool
	brotliReaderPool sync.Pool

	gzipWriterPoolMap   = newCompressWriterPoolMap()
	brotliWriterPoolMap = newCompressWriterPoolMap()
)

func newCompressWriterPoolMap() []*sync.Pool {
	// Initialize pools for all the compression levels defined
	// in https://pkg.go.dev/compress/flate#pkg-constants .
	// Compression levels are normalized with normalizeCompressLevel,
	// so the fit [0..11].
	var m []*sync.Pool
	for i := 0; i < 12; i++ {
		m = append(m, &sync.Pool{})
	}
	return m
}

// normalizeCompressLevel translates a compression level into [0..11],
// so it could be used as an index in the writer pool map.
func normalizeCompressLevel(level int) int {
	// -2 is the lowest valid compression level.
	if level < -2 || level > 9 {
		level = CompressDefaultCompression
	}
	return level + 2
}

func normalizeBrotliCompressLevel(level int) int {
	// 0 is the lowest valid brotli compression level.
	if level < 0 || level > 11 {
		level = CompressBrotliDefaultCompression
	}
	return level
}

func acquireGzipReader(r io.Reader) (*gzip.Reader, error) {
	v := gzipReaderPool.Get()
	if v == nil {
		return gzip.NewReader(r)
	}
	zr := v.(*gzip.Reader)
	if err := zr.Reset(r); err != nil {
		return nil, err
	}
	return zr, nil
}

func releaseGzipReader(zr *gzip.Reader) {
	zr.Close()
	gzipReaderPool.Put(zr)
}

func acquireGzipWriter(w io.Writer, level int) *gzip.Writer {
	nLevel := normalizeCompressLevel(level)
	p := gzipWriterPoolMap[nLevel]
	v := p.Get()
	if v == nil {
		zw, err := gzip.NewWriterLevel(w, level)
		if err != nil {
			panic(fmt.Sprintf("BUG: unexpected error from gzip.NewWriterLevel(%d): %v", level, err))
		}
		return zw
	}
	zw := v.(*gzip.Writer)
	zw.Reset(w)
	return zw
}

func releaseGzipWriter(zw *gzip.Writer, level int) {
	zw.Close()
	nLevel := normalizeCompressLevel(level)
	gzipWriterPoolMap[nLevel].Put(zw)
}

func acquireBrotliReader(r io.Reader) (*brotli.Reader, error) {
	v := brotliReaderPool.Get()
	if v == nil {
		return brotli.NewReader(r), nil
	}
	br := v.(*brotli.Reader)
	if err := br.Reset(r); err != nil {
		return nil, err
	}
	return br, nil
}

func releaseBrotliReader(br *brotli.Reader) {
	brotliReaderPool.Put(br)
}

func acquireBrotliWriter(w io.Writer, level int) *brotli.Writer {
	nLevel := normalizeBrotliCompressLevel(level)
	p := brotliWriterPoolMap[nLevel]
	v := p.Get()
	if v == nil {
		return brotli.NewWriterLevel(w, level)
	}
	bw := v.(*brotli.Writer)
	bw.Reset(w)
	return bw
}

func releaseBrotliWriter(bw *brotli.Writer, level int) {
	bw.Close()
	nLevel := normalizeBrotliCompressLevel(level)
	brotliWriterPoolMap[nLevel].Put(bw)
}

// AppendGzipBytesLevel appends gzipped src to dst using the given
// compression level and returns the resulting dst.
func AppendGzipBytesLevel(dst, src []byte, level int) []byte {
	w := &byteSliceWriter{b: dst}
	zw := acquireGzipWriter(w, level)
	zw.Write(src) //nolint:errcheck
	releaseGzipWriter(zw, level)
	return w.b
}

// AppendGzipBytes appends gzipped src to dst and returns the resulting
// dst.
func AppendGzipBytes(dst, src []byte) []byte {
	return AppendGzipBytesLevel(dst, src, CompressDefaultCompression)
}

// AppendGunzipBytes appends gunzipped src to dst and returns the
// resulting dst.
func AppendGunzipBytes(dst, src []byte) ([]byte, error) {
	r := &byteSliceReader{b: src}
	zr, err := acquireGzipReader(r)
	if err != nil {
		return dst, err
	}
	w := &byteSliceWriter{b: dst}
	_, err = io.Copy(w, zr)
	releaseGzipReader(zr)
	return w.b, err
}

// AppendBrotliBytesLevel appends brotlied src to dst using the given
// compression level and returns the resulting dst.
func AppendBrotliBytesLevel(dst, src []byte, level int) []byte {
	w := &byteSliceWriter{b: dst}
	bw := acquireBrotliWriter(w, level)
	bw.Write(src) //nolint:errcheck
	releaseBrotliWriter(bw, level)
	return w.b
}

// AppendBrotliBytes appends brotlied src to dst and returns the
// resulting dst.
func AppendBrotliBytes(dst, src []byte) []byte {
	return AppendBrotliBytesLevel(dst, src, CompressBrotliDefaultCompression)
}

// AppendUnbrotliBytes appends unbrotlied src to dst and returns the
// resulting dst.
func AppendUnbrotliBytes(dst, src []byte) ([]byte, error) {
	r := &byteSliceReader{b: src}
	br, err := acquireBrotliReader(r)
	if err != nil {
		return dst, err
	}
	w := &byteSliceWriter{b: dst}
	_, err = io.Copy(w, br)
	releaseBrotliReader(br)
	return w.b, err
}

// BodyGunzip returns the gunzipped request body.
func (req *Request) BodyGunzip() ([]byte, error) {
	return AppendGunzipBytes(nil, req.body)
}

// BodyGunzip returns the gunzipped response body.
func (resp *Response) BodyGunzip() ([]byte, error) {
	return AppendGunzipBytes(nil, resp.body)
}

// BodyUnbrotli returns the unbrotlied request body.
func (req *Request) BodyUnbrotli() ([]byte, error) {
	return AppendUnbrotliBytes(nil, req.body)
}

// BodyUnbrotli returns the unbrotlied response body.
func (resp *Response) BodyUnbrotli() ([]byte, error) {
	return AppendUnbrotliBytes(nil, resp.body)
}

type byteSliceWriter struct {
	b []byte
}

func (w *byteSliceWriter) Write(p []byte) (int, error) {
	w.b = append(w.b, p...)
	return len(p), nil
}

type byteSliceReader struct {
	b []byte
}

func (r *byteSliceReader) Read(p []byte) (int, error) {
	if len(r.b) == 0 {
		return 0, io.EOF
	}
	n := copy(p, r.b)
	r.b = r.b[n:]
	return n, nil
}
