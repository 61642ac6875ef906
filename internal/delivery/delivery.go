// Package delivery defines the inbound transports started by the application.
package delivery

import "context"

// Delivery is a long-running inbound transport such as the HTTP server.
type Delivery interface {
	Serve(ctx context.Context) error
}
