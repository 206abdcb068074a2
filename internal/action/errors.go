package action

import (
	"errors"
	"fmt"
)

var ErrInvalidAction = errors.New("invalid action")

// Error wraps ErrInvalidAction with the offending tag.
type Error struct {
	Kind error
	Tag  string
	Msg  string
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	prefix := e.Kind.Error()
	if e.Tag != "" {
		prefix = fmt.Sprintf("%s %q", prefix, e.Tag)
	}
	if e.Msg == "" {
		return prefix
	}
	return prefix + ": " + e.Msg
}

func (e *Error) Unwrap() error { return e.Kind }

func invalidf(tag, format string, args ...any) error {
	return &Error{Kind: ErrInvalidAction, Tag: tag, Msg: fmt.Sprintf(format, args...)}
}
