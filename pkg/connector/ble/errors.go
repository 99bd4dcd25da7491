package ble

import (
	"errors"
	"fmt"
)

// Kind classifies why a session attempt failed.
type Kind int

const (
	KindUnknown Kind = iota
	KindNoAdapter
	KindScan
	KindPeripheralNotFound
	KindConnection
	KindServiceNotFound
	KindCharacteristicNotFound
	KindSubscription
	KindStatusQuery
)

var kindMessages = map[Kind]string{
	KindUnknown:                "ble: session failed",
	KindNoAdapter:              "ble: no Bluetooth adapter available",
	KindScan:                   "ble: scan failed",
	KindPeripheralNotFound:     "ble: peripheral not found",
	KindConnection:             "ble: failed to connect to peripheral",
	KindServiceNotFound:        "ble: service not found",
	KindCharacteristicNotFound: "ble: characteristic not found",
	KindSubscription:           "ble: failed to subscribe to notifications",
	KindStatusQuery:            "ble: failed to query connection status",
}

func (k Kind) String() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return kindMessages[KindUnknown]
}

// Error is returned by adapters and by the session manager. The sentinel values below carry no
// cause and match any Error of the same Kind under errors.Is.
type Error struct {
	Kind Kind
	Err  error
}

var (
	ErrNoAdapter              = &Error{Kind: KindNoAdapter}
	ErrScan                   = &Error{Kind: KindScan}
	ErrPeripheralNotFound     = &Error{Kind: KindPeripheralNotFound}
	ErrConnection             = &Error{Kind: KindConnection}
	ErrServiceNotFound        = &Error{Kind: KindServiceNotFound}
	ErrCharacteristicNotFound = &Error{Kind: KindCharacteristicNotFound}
	ErrSubscription           = &Error{Kind: KindSubscription}
	ErrStatusQuery            = &Error{Kind: KindStatusQuery}
)

// ErrAdapterInvalidID is the cause attached to KindNoAdapter when a configured adapter ID cannot
// be used on this platform.
var ErrAdapterInvalidID = errors.New("the bluetooth adapter ID is invalid")

func NewError(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Kind.String()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Err == nil && t.Kind == e.Kind
}

// Format prints the cause with %+v so stack traces recorded by github.com/pkg/errors survive.
func (e *Error) Format(s fmt.State, verb rune) {
	if verb == 'v' && s.Flag('+') && e.Err != nil {
		fmt.Fprintf(s, "%s: %+v", e.Kind, e.Err)
		return
	}
	fmt.Fprint(s, e.Error())
}

// Temporary returns false for failures that point at a firmware or identifier mismatch rather
// than a transient radio condition. Callers retry both the same way.
func (e *Error) Temporary() bool {
	switch e.Kind {
	case KindServiceNotFound, KindCharacteristicNotFound:
		return false
	}
	return true
}

// KindOf returns the Kind of the first Error in err's chain, or KindUnknown.
func KindOf(err error) Kind {
	var bleErr *Error
	if errors.As(err, &bleErr) {
		return bleErr.Kind
	}
	return KindUnknown
}

// Classify returns err unchanged if it already carries a Kind, and wraps it in kind otherwise.
func Classify(kind Kind, err error) error {
	if err == nil {
		return nil
	}
	var bleErr *Error
	if errors.As(err, &bleErr) {
		return err
	}
	return NewError(kind, err)
}
