// Package lifecycle holds constants shared by components that hook into the
// fx application lifecycle.
package lifecycle

import "time"

// DefaultTimeout bounds startup and shutdown hooks (DB ping, HTTP drain).
const DefaultTimeout = 10 * time.Second
