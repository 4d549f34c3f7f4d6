package eventstream

import "errors"

// ErrNilActionEvent indicates a nil action event payload was provided to a publisher.
var ErrNilActionEvent = errors.New("nil action event")
