// Package lifecycle holds timing shared by fx start and stop hooks.
package lifecycle

import "time"

// DefaultTimeout bounds every OnStart/OnStop hook.
const DefaultTimeout = 10 * time.Second
