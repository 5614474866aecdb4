// Package lifecycle holds shared timing constants for fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every start or stop hook (DB ping, server shutdown, watcher drain).
const DefaultTimeout = 10 * time.Second
