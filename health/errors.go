package health

import "errors"

// ErrObserverGone indicates that Changed was called on a Component or
// Aggregator handle whose underlying worker has already exited, so no
// further health transitions will ever be observed.
var ErrObserverGone = errors.New("health: observed component or aggregator is gone")
