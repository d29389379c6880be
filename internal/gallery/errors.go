package gallery

import "errors"

var (
	// ErrDuplicateIndex is returned when two copyable items share an index.
	ErrDuplicateIndex = errors.New("duplicate copy index")
	// ErrUnknownItem is returned when a copy is requested for an unregistered index.
	ErrUnknownItem = errors.New("unknown copy item")
	// ErrClipboardUnavailable wraps every failed clipboard write.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
	// ErrClosed is returned by a controller after Close.
	ErrClosed = errors.New("controller closed")
	// ErrInvalidRange is returned for slider options that describe no values.
	ErrInvalidRange = errors.New("invalid slider range")
	// ErrInvalidSections is returned when a tab group cannot be built.
	ErrInvalidSections = errors.New("invalid tab sections")
)
