package tablebridge

import "net/url"

// Request describes one outbound API call before signing: the HTTP method,
// the endpoint path relative to the client base URL, query parameters, and
// an optional serialized body. A Request is consumed exactly once by the
// signing transport; the three signature headers are attached to Headers
// immediately before dispatch.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Headers map[string]string
	Body    []byte
}

// setHeader sets one header, allocating the map on first use.
func (r *Request) setHeader(key, value string) {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
}

// Response is the normalized response returned by a Transport.
// Header keys are lowercased by the HTTP transport.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Data       []byte
}
