package ir

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorValue(t *testing.T) {
	bad := FromInt(9)
	err := Errorf(ErrIndexOutOfBounds, bad, "index %d", 4)
	if !errors.Is(err, ErrIndexOutOfBounds) {
		t.Fatalf("errors.Is(%v, ErrIndexOutOfBounds) = false", err)
	}
	wrapped := fmt.Errorf("loading: %w", err)
	if Code(wrapped) != ErrIndexOutOfBounds {
		t.Errorf("Code() = %d, want %d", Code(wrapped), ErrIndexOutOfBounds)
	}
	if err.File != "errs_test.go" || err.Line == 0 {
		t.Errorf("provenance = %s:%d", err.File, err.Line)
	}
	if !strings.Contains(err.Op, "TestErrorValue") {
		t.Errorf("Op = %q", err.Op)
	}

	v := err.Value()
	for _, k := range []string{"code", "message", "detail", "function", "file", "line", "container"} {
		if !v.Exists(k) {
			t.Errorf("error value lacks %q", k)
		}
	}
	code, _ := v.Get("code")
	if !code.EqualInt(int64(ErrIndexOutOfBounds)) {
		t.Errorf("code = %#v", code)
	}
	c, _ := v.Get("container")
	if !c.Equal(bad) {
		t.Errorf("container = %#v, want %#v", c, bad)
	}
}

func TestContractErrorValue(t *testing.T) {
	err := NewError(ErrContractViolation, nil)
	err.Violations = []string{"a", "b"}
	err.Mask = 3
	v := err.Value()
	vs, _ := v.Get("violations")
	if n, _ := vs.Len(); n != 2 {
		t.Errorf("violations length = %d, want 2", n)
	}
	mask, _ := v.Get("compare_result")
	if !mask.EqualInt(3) {
		t.Errorf("compare_result = %#v", mask)
	}
	if !strings.Contains(err.Error(), "a; b") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIsPermanentConfiguration(t *testing.T) {
	for code := ErrUnknown; code <= ErrContractViolation; code++ {
		want := code >= ErrDBConnection && code <= ErrCommunication
		if got := IsPermanentConfiguration(NewError(code, nil)); got != want {
			t.Errorf("IsPermanentConfiguration(%d) = %v, want %v", code, got, want)
		}
	}
	if IsPermanentConfiguration(errors.New("plain")) {
		t.Errorf("plain error is permanent")
	}
}
