package services

import "time"

// Clock supplies the current time to services whose behavior depends on it,
// so the time-window logic stays testable. Production wiring passes
// time.Now.
type Clock func() time.Time
