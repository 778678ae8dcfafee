package wizard

import "errors"

var (
	// ErrAborted signals the user interrupted the session (Ctrl+C).
	ErrAborted = errors.New("wizard: aborted")
	// ErrNoKinds is returned when the registry exposes no element kinds.
	ErrNoKinds = errors.New("wizard: registry has no element kinds")
)
