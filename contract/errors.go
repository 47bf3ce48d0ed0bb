package contract

import (
	"errors"
	"fmt"
)

// ErrorKind is the closed set of reasons a call can be rejected. The numeric
// code and the symbol are stable and safe to persist or ship over the wire.
type ErrorKind uint8

const (
	KindNotFound            ErrorKind = 1
	KindUnauthorized        ErrorKind = 2
	KindInvalidParams       ErrorKind = 3
	KindInsufficientBalance ErrorKind = 4
	KindInactive            ErrorKind = 5
	KindVotingClosed        ErrorKind = 6
	KindDuplicateVote       ErrorKind = 7
	KindTransferFailed      ErrorKind = 8
)

// Code returns the numeric code of the kind.
func (k ErrorKind) Code() uint8 { return uint8(k) }

// String returns the symbolic code, e.g. "voting_closed".
func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindInvalidParams:
		return "invalid_params"
	case KindInsufficientBalance:
		return "insufficient_balance"
	case KindInactive:
		return "inactive"
	case KindVotingClosed:
		return "voting_closed"
	case KindDuplicateVote:
		return "duplicate_vote"
	case KindTransferFailed:
		return "transfer_failed"
	default:
		return "unknown"
	}
}

// Error is a rejected call. Two errors match with errors.Is when their kinds
// are equal, so callers compare against the sentinels below.
type Error struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Msg != "" {
		msg += ": " + e.Msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Sentinel errors for governance calls
var (
	ErrNotFound            = &Error{Kind: KindNotFound}
	ErrUnauthorized        = &Error{Kind: KindUnauthorized}
	ErrInvalidParams       = &Error{Kind: KindInvalidParams}
	ErrInsufficientBalance = &Error{Kind: KindInsufficientBalance}
	ErrInactive            = &Error{Kind: KindInactive}
	ErrVotingClosed        = &Error{Kind: KindVotingClosed}
	ErrDuplicateVote       = &Error{Kind: KindDuplicateVote}
	ErrTransferFailed      = &Error{Kind: KindTransferFailed}
)

// KindOf reports the kind of a rejected call. ok is false for storage and
// codec failures, which are not part of the closed set.
func KindOf(err error) (kind ErrorKind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

func fail(kind ErrorKind, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}
