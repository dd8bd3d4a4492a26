package nes

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is a closed set of outcome codes. Values are stable and safe to log
// or switch on; new kinds are only ever appended, never renumbered.
type Kind int

const (
	// BadArguments marks a defensive argument check failing before any
	// work was attempted.
	BadArguments Kind = iota + 1

	// BadInesFormat marks a malformed iNES header (bad magic, or a zero
	// PRG or CHR bank count).
	BadInesFormat

	// Truncated marks an iNES image whose declared PRG/CHR sizes don't
	// fit in the bytes actually supplied.
	Truncated

	// UnsupportedMapper marks an iNES mapper id this module doesn't
	// implement.
	UnsupportedMapper

	// PrgRomReadOnly marks a write attempt against PRG-ROM space.
	PrgRomReadOnly

	// UnsupportedInstruction marks an opcode whose table entry is not
	// marked Official, i.e. one this core does not execute.
	UnsupportedInstruction

	// BadAddressing marks an addressing-mode/opcode combination the
	// decode table should never produce. Seeing this means the table
	// is wrong, not that the ROM is wrong.
	BadAddressing
)

func (k Kind) String() string {
	switch k {
	case BadArguments:
		return "bad arguments"
	case BadInesFormat:
		return "bad ines format"
	case Truncated:
		return "truncated"
	case UnsupportedMapper:
		return "unsupported mapper"
	case PrgRomReadOnly:
		return "prg rom is read-only"
	case UnsupportedInstruction:
		return "unsupported instruction"
	case BadAddressing:
		return "bad addressing"
	default:
		return fmt.Sprintf("unknown kind %d", int(k))
	}
}

// Error pairs a Kind with context. Host code that needs to branch on the
// outcome should compare Kind, not the message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func newError(kind Kind, format string, args ...interface{}) error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// wrap attaches loader-level context to err without discarding the
// underlying Kind, using pkg/errors so callers can still errors.Cause()
// their way back to the *Error.
func wrap(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return errors.Wrapf(err, format, args...)
}

// KindOf unwraps err (following pkg/errors-style Cause chains) looking for
// an *Error and returns its Kind. The second return is false if no *Error
// is found anywhere in the chain.
func KindOf(err error) (Kind, bool) {
	for err != nil {
		if e, ok := err.(*Error); ok {
			return e.Kind, true
		}
		cause, ok := err.(interface{ Cause() error })
		if !ok {
			return 0, false
		}
		err = cause.Cause()
	}
	return 0, false
}
