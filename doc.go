/*
Package harehttp provides a minimal HTTP/1.1 message model.

The package covers the in-memory representation of requests and
responses, serialization to the wire line format and parsing back from
a byte stream:

  - Request and Response structures with ordered, multi-valued headers.
  - A header codec supporting single-value, semicolon-delimited
    multi-value and empty-value header lines.
  - Request-line and status-line codecs.
  - A line-by-line message reader yielding typed parse errors.

The model does not manage connections. Keep-alive, chunked
transfer-encoding, pipelining and timeouts belong to the transport
layer; a message body is treated as an opaque byte buffer whose length
is delimited by the caller. Content-Length and Transfer-Encoding are
never interpreted here.

Request and Response instances may be pooled via AcquireRequest,
AcquireResponse and the corresponding Release functions in order to
reduce memory allocations in busy loops.
*/
package harehttp
