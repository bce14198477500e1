package harehttp

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
)

// Request represents an HTTP request.
//
// It is unsafe modifying/reading Request instance from concurrently
// running goroutines.
type Request struct {
	method     Method
	requestURI string
	headers    []Header
	body       []byte
}

// Response represents an HTTP response.
//
// It is unsafe modifying/reading Response instance from concurrently
// running goroutines.
type Response struct {
	statusCode StatusCode
	headers    []Header
	body       []byte
}

// Message is either a *Request or a *Response, used wherever an
// operation does not need to distinguish them.
//
// The variant set is closed; no other type satisfies the interface.
type Message interface {
	// Reset clears the message for reuse. Header value views and body
	// slices handed out earlier must not be used afterwards.
	Reset()

	appendStartLine(dst []byte) []byte
	messageHeaders() []Header
	messageBody() []byte
}

// Method returns the request method.
func (req *Request) Method() Method {
	return req.method
}

// SetMethod sets the request method.
func (req *Request) SetMethod(method Method) {
	req.method = method
}

// RequestURI returns the request URI.
func (req *Request) RequestURI() string {
	return req.requestURI
}

// SetRequestURI sets the request URI.
func (req *Request) SetRequestURI(requestURI string) {
	req.requestURI = requestURI
}

// StatusCode returns the response status code.
func (resp *Response) StatusCode() StatusCode {
	return resp.statusCode
}

// SetStatusCode sets the response status code.
func (resp *Response) SetStatusCode(statusCode StatusCode) {
	resp.statusCode = statusCode
}

// Body returns the request body.
//
// The returned slice is valid until the request is reset or released.
func (req *Request) Body() []byte {
	return req.body
}

// SetBody sets the request body.
func (req *Request) SetBody(body []byte) {
	req.body = append(req.body[:0], body...)
}

// SetBodyString sets the request body.
func (req *Request) SetBodyString(body string) {
	req.body = append(req.body[:0], body...)
}

// AppendBody appends p to the request body.
func (req *Request) AppendBody(p []byte) {
	req.body = append(req.body, p...)
}

// Body returns the response body.
//
// The returned slice is valid until the response is reset or released.
func (resp *Response) Body() []byte {
	return resp.body
}

// SetBody sets the response body.
func (resp *Response) SetBody(body []byte) {
	resp.body = append(resp.body[:0], body...)
}

// SetBodyString sets the response body.
func (resp *Response) SetBodyString(body string) {
	resp.body = append(resp.body[:0], body...)
}

// AppendBody appends p to the response body.
func (resp *Response) AppendBody(p []byte) {
	resp.body = append(resp.body, p...)
}

// Headers returns the request headers in insertion order.
func (req *Request) Headers() []Header {
	return req.headers
}

// Headers returns the response headers in insertion order.
func (resp *Response) Headers() []Header {
	return resp.headers
}

// AddHeader builds a header from key and values and appends it to the
// request. Headers are neither deduplicated nor reordered.
func (req *Request) AddHeader(key string, values ...string) {
	req.headers = append(req.headers, NewHeader(key, values...))
}

// AddHeader builds a header from key and values and appends it to the
// response. Headers are neither deduplicated nor reordered.
func (resp *Response) AddHeader(key string, values ...string) {
	resp.headers = append(resp.headers, NewHeader(key, values...))
}

// PeekHeader returns the first request header with the given key, or
// nil if there is none. Key comparison is case-insensitive.
func (req *Request) PeekHeader(key string) *Header {
	return peekHeader(req.headers, key)
}

// PeekHeader returns the first response header with the given key, or
// nil if there is none. Key comparison is case-insensitive.
func (resp *Response) PeekHeader(key string) *Header {
	return peekHeader(resp.headers, key)
}

func peekHeader(hh []Header, key string) *Header {
	for i := range hh {
		if strings.EqualFold(hh[i].key, key) {
			return &hh[i]
		}
	}
	return nil
}

// Reset clears the request for reuse.
func (req *Request) Reset() {
	req.method = MethodGet
	req.requestURI = ""
	req.headers = resetHeaders(req.headers)
	req.body = req.body[:0]
}

// Reset clears the response for reuse.
func (resp *Response) Reset() {
	resp.statusCode = 0
	resp.headers = resetHeaders(resp.headers)
	resp.body = resp.body[:0]
}

func resetHeaders(hh []Header) []Header {
	for i := range hh {
		hh[i].reset()
	}
	return hh[:0]
}

func (req *Request) appendStartLine(dst []byte) []byte {
	return appendRequestLine(dst, req.method, req.requestURI)
}

func (resp *Response) appendStartLine(dst []byte) []byte {
	return appendStatusLine(dst, resp.statusCode)
}

func (req *Request) messageHeaders() []Header   { return req.headers }
func (resp *Response) messageHeaders() []Header { return resp.headers }

func (req *Request) messageBody() []byte   { return req.body }
func (resp *Response) messageBody() []byte { return resp.body }

// AppendMessage appends the wire form of m to dst and returns the
// extended dst: start line, headers in insertion order, a blank line,
// then the raw body verbatim. The body is not length-framed; delimiting
// it is the caller's responsibility.
func AppendMessage(dst []byte, m Message) []byte {
	dst = m.appendStartLine(dst)
	hh := m.messageHeaders()
	for i := range hh {
		dst = appendHeaderLine(dst, &hh[i])
	}
	dst = append(dst, strCRLF...)
	return append(dst, m.messageBody()...)
}

// WriteMessage writes the wire form of m to w.
//
// It returns the number of bytes written and the first I/O error
// encountered. Writing stops at the first failure.
func WriteMessage(w io.Writer, m Message) (int, error) {
	b := AcquireByteBuffer()
	b.B = AppendMessage(b.B[:0], m)
	n, err := w.Write(b.B)
	ReleaseByteBuffer(b)
	return n, err
}

// Write writes the request to w.
//
// Write doesn't flush the request to w for performance reasons.
func (req *Request) Write(w *bufio.Writer) error {
	_, err := WriteMessage(w, req)
	return err
}

// Write writes the response to w.
//
// Write doesn't flush the response to w for performance reasons.
func (resp *Response) Write(w *bufio.Writer) error {
	_, err := WriteMessage(w, resp)
	return err
}

// WriteTo writes the request to w. It implements io.WriterTo.
func (req *Request) WriteTo(w io.Writer) (int64, error) {
	n, err := WriteMessage(w, req)
	return int64(n), err
}

// WriteTo writes the response to w. It implements io.WriterTo.
func (resp *Response) WriteTo(w io.Writer) (int64, error) {
	n, err := WriteMessage(w, resp)
	return int64(n), err
}

// String returns the request representation.
func (req *Request) String() string {
	return messageString(req)
}

// String returns the response representation.
func (resp *Response) String() string {
	return messageString(resp)
}

func messageString(m Message) string {
	b := AcquireByteBuffer()
	b.B = AppendMessage(b.B[:0], m)
	s := string(b.B)
	ReleaseByteBuffer(b)
	return s
}

// Read reads the request start line and headers from r.
//
// The body is not read; framing it is the caller's responsibility. On
// any parse failure the request is reset, so no partial state survives.
func (req *Request) Read(r *bufio.Reader) error {
	req.Reset()
	if err := req.read(r); err != nil {
		req.Reset()
		return err
	}
	return nil
}

func (req *Request) read(r *bufio.Reader) error {
	line, err := readLine(r)
	if err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: empty stream", ErrMalformedStartLine)
		}
		return err
	}
	m, uri, err := parseRequestLine(line)
	if err != nil {
		return err
	}
	req.method = m
	req.requestURI = uri
	return readHeaders(r, &req.headers)
}

// Read reads the response status line and headers from r.
//
// The body is not read; framing it is the caller's responsibility. On
// any parse failure the response is reset, so no partial state survives.
func (resp *Response) Read(r *bufio.Reader) error {
	resp.Reset()
	if err := resp.read(r); err != nil {
		resp.Reset()
		return err
	}
	return nil
}

func (resp *Response) read(r *bufio.Reader) error {
	line, err := readLine(r)
	if err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: empty stream", ErrMalformedStartLine)
		}
		return err
	}
	code, err := parseStatusLine(line)
	if err != nil {
		return err
	}
	resp.statusCode = code
	return readHeaders(r, &resp.headers)
}

// readHeaders appends parsed header lines to dst until a blank line or
// the end of the stream. End-of-stream ends the loop and is not an
// error.
func readHeaders(r *bufio.Reader, dst *[]Header) error {
	for {
		line, err := readLine(r)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		if len(line) == 0 {
			return nil
		}
		h, err := ParseHeader(line)
		if err != nil {
			return err
		}
		*dst = append(*dst, h)
	}
}

// readLine reads one CRLF-terminated line from r. A trailing line
// without a terminator is still returned as a line.
func readLine(r *bufio.Reader) ([]byte, error) {
	line, err := r.ReadBytes('\n')
	if err != nil {
		if err != io.EOF || len(line) == 0 {
			return nil, err
		}
	}
	// drop \n and possible preceding \r
	if n := len(line); n > 0 && line[n-1] == '\n' {
		drop := 1
		if n > 1 && line[n-2] == '\r' {
			drop = 2
		}
		line = line[:n-drop]
	}
	return line, nil
}

// ReadRequest reads a request from r into a pooled instance.
//
// Release the returned request via ReleaseRequest when done. On error
// nothing is retained.
func ReadRequest(r *bufio.Reader) (*Request, error) {
	req := AcquireRequest()
	if err := req.Read(r); err != nil {
		ReleaseRequest(req)
		return nil, err
	}
	return req, nil
}

// ReadResponse reads a response from r into a pooled instance.
//
// Release the returned response via ReleaseResponse when done. On error
// nothing is retained.
func ReadResponse(r *bufio.Reader) (*Response, error) {
	resp := AcquireResponse()
	if err := resp.Read(r); err != nil {
		ReleaseResponse(resp)
		return nil, err
	}
	return resp, nil
}

var (
	requestPool  sync.Pool
	responsePool sync.Pool
)

// AcquireRequest returns an empty Request instance from the request pool.
//
// The returned Request instance may be passed to ReleaseRequest when it is
// no longer needed. This allows Request recycling, reduces GC pressure
// and usually improves performance.
func AcquireRequest() *Request {
	v := requestPool.Get()
	if v == nil {
		return &Request{}
	}
	return v.(*Request)
}

// ReleaseRequest returns req acquired via AcquireRequest to the request
// pool.
//
// It is forbidden accessing req and/or its members after returning
// it to the request pool.
func ReleaseRequest(req *Request) {
	req.Reset()
	requestPool.Put(req)
}

// AcquireResponse returns an empty Response instance from the response
// pool.
//
// The returned Response instance may be passed to ReleaseResponse when it
// is no longer needed. This allows Response recycling, reduces GC pressure
// and usually improves performance.
func AcquireResponse() *Response {
	v := responsePool.Get()
	if v == nil {
		return &Response{}
	}
	return v.(*Response)
}

// ReleaseResponse returns resp acquired via AcquireResponse to the
// response pool.
//
// It is forbidden accessing resp and/or its members after returning
// it to the response pool.
func ReleaseResponse(resp *Response) {
	resp.Reset()
	responsePool.Put(resp)
}

// ReleaseMessage releases m to the matching pool. Release a message
// exactly once; its headers, body and header value views must not be
// used afterwards.
func ReleaseMessage(m Message) {
	switch v := m.(type) {
	case *Request:
		ReleaseRequest(v)
	case *Response:
		ReleaseResponse(v)
	}
}
