// Package lifecycle holds shared constants for application start and
// shutdown coordination.
package lifecycle

import "time"

// DefaultTimeout bounds startup checks and graceful shutdown steps.
const DefaultTimeout = 10 * time.Second
