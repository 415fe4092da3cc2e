package tablebridge

import "context"

// Transport dispatches a normalized request and returns the normalized
// response. The client wraps its Transport in a SigningTransport, so a
// Transport implementation only ever sees fully signed requests.
//
// Implementations must be safe for concurrent use: the client may issue
// several unrelated requests at once.
type Transport interface {
	Execute(ctx context.Context, req *Request) (*Response, error)
}
