// Package delivery defines the contract between the application entry point
// and its transport layers.
package delivery

import "context"

// Delivery is a transport surface that can serve requests until its context
// is cancelled or the server is shut down.
type Delivery interface {
	Serve(ctx context.Context) error
}
