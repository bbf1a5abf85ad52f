package ir

import (
	"errors"
	"fmt"
	"path/filepath"
	"runtime"
	"strings"
)

// ErrorCode classifies failures. The numeric values are stable and are
// reported under the "code" key of an error rendered as a Value.
type ErrorCode int

const (
	ErrUnknown ErrorCode = iota
	ErrTypeMismatchWrite
	ErrTypeMismatchRead
	ErrCollectionAsScalar
	ErrScalarAsCollection
	ErrNonMapAsMap
	ErrNonArrayAsArray
	ErrIndexOutOfBounds
	ErrDeserialization
	ErrSerialization
	ErrDBConnection
	ErrUnknownMIMEType
	ErrCommunication
	ErrContractViolation
)

var codeMessages = [...]string{
	ErrUnknown:            "unknown error",
	ErrTypeMismatchWrite:  "attempt to assign a value to a container which already holds a value of another type",
	ErrTypeMismatchRead:   "attempt to convert a value to an incompatible type",
	ErrCollectionAsScalar: "attempt to treat a collection as a scalar",
	ErrScalarAsCollection: "attempt to treat a scalar as a collection",
	ErrNonMapAsMap:        "attempt to treat a non-map container as a map",
	ErrNonArrayAsArray:    "attempt to treat a non-array container as an array",
	ErrIndexOutOfBounds:   "array subscript out of bounds",
	ErrDeserialization:    "input is not a valid serialized value",
	ErrSerialization:      "unable to serialize value",
	ErrDBConnection:       "error connecting to the database",
	ErrUnknownMIMEType:    "unknown mime type",
	ErrCommunication:      "communication error",
	ErrContractViolation:  "contract violation",
}

// Error makes codes usable as errors.Is targets.
func (c ErrorCode) Error() string {
	if c < 0 || int(c) >= len(codeMessages) {
		return codeMessages[ErrUnknown]
	}
	return codeMessages[c]
}

// Error is the structured record for every failure raised by the core.
type Error struct {
	Code   ErrorCode
	Op     string
	File   string
	Line   int
	Detail string

	// Container is a clone of the offending value, if any.
	Container *Value

	// Violations and Mask are set for contract violations.
	Violations []string
	Mask       uint32
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	msg := e.Code.Error()
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	if len(e.Violations) != 0 {
		msg += " (" + strings.Join(e.Violations, "; ") + ")"
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Code
}

// Value renders the error as a Map value.
func (e *Error) Value() *Value {
	fields := map[string]*Value{
		"code":    FromInt(int64(e.Code)),
		"message": FromString(e.Code.Error()),
	}
	if e.Detail != "" {
		fields["detail"] = FromString(e.Detail)
	}
	if e.Op != "" {
		fields["function"] = FromString(e.Op)
		fields["file"] = FromString(e.File)
		fields["line"] = FromInt(int64(e.Line))
	}
	if e.Container != nil {
		fields["container"] = e.Container.Clone()
	}
	if len(e.Violations) != 0 {
		vs := make([]*Value, len(e.Violations))
		for i, m := range e.Violations {
			vs[i] = FromString(m)
		}
		fields["violations"] = FromSlice(vs)
		fields["compare_result"] = FromInt(int64(e.Mask))
	}
	return FromMap(fields)
}

// NewError builds an Error with provenance taken from the caller.
func NewError(code ErrorCode, bad *Value) *Error {
	return newError(2, code, bad, "")
}

// Errorf is NewError with a formatted detail.
func Errorf(code ErrorCode, bad *Value, format string, args ...any) *Error {
	return newError(2, code, bad, fmt.Sprintf(format, args...))
}

func newError(skip int, code ErrorCode, bad *Value, detail string) *Error {
	e := &Error{Code: code, Detail: detail}
	if pc, file, line, ok := runtime.Caller(skip); ok {
		e.File = filepath.Base(file)
		e.Line = line
		if fn := runtime.FuncForPC(pc); fn != nil {
			name := fn.Name()
			if i := strings.LastIndexByte(name, '/'); i != -1 {
				name = name[i+1:]
			}
			e.Op = name
		}
	}
	if bad != nil {
		e.Container = bad.Clone()
	}
	return e
}

// Code returns the ErrorCode of err, or ErrUnknown if err is not
// an *Error.
func Code(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrUnknown
}

// IsPermanentConfiguration reports whether err comes from an external
// collaborator which cannot succeed on retry.
func IsPermanentConfiguration(err error) bool {
	switch Code(err) {
	case ErrDBConnection, ErrUnknownMIMEType, ErrCommunication:
		return true
	}
	return false
}
