// Package delivery defines the contract every transport-facing server implements.
package delivery

import "context"

// Delivery is a serving surface (HTTP today) started by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
