// Package delivery holds the inbound adapters: the public API server and the
// lead worker transports.
package delivery

import "context"

// Delivery is a long-running inbound transport started by the command's fx app.
type Delivery interface {
	Serve(ctx context.Context) error
}
