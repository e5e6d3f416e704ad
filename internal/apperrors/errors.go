package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure so the routing layer can map it onto a status
// code without string matching.
type Kind string

const (
	KindNotFound             Kind = "NotFound"
	KindUserNotFound         Kind = "UserNotFound"
	KindOwnershipMismatch    Kind = "OwnershipMismatch"
	KindDuplicateMembership  Kind = "DuplicateMembership"
	KindNotInBox             Kind = "NotInBox"
	KindLocationNotEmpty     Kind = "LocationNotEmpty"
	KindWeakPassword         Kind = "WeakPassword"
	KindInvalidEmailFormat   Kind = "InvalidEmailFormat"
	KindDuplicateEmail       Kind = "DuplicateEmail"
	KindInvalidCredentials   Kind = "InvalidCredentials"
	KindMissingRequiredField Kind = "MissingRequiredField"
	KindStorageFailure       Kind = "StorageFailure"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap marks an unexpected persistence failure as StorageFailure while
// keeping the cause reachable through errors.Unwrap.
func Wrap(err error, message string) *Error {
	return &Error{Kind: KindStorageFailure, Message: message, Err: err}
}

// KindOf returns the classified kind of err, or KindStorageFailure when the
// error did not originate from this package.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindStorageFailure
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
