package events

import "errors"

// ErrHubClosed is returned by Notify after the hub has been closed.
var ErrHubClosed = errors.New("events: hub is closed")
