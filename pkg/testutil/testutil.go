package testutil

import (
	"errors"
	"testing"
)

func Must(t testing.TB, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("error returned for operation: %v", err)
	}
}

func MustDo(t testing.TB, what string, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("%s, expected no error, got err=%s", what, err)
	}
}

// RequirePanicIs runs f and fails t unless f panics with an error matching
// target.
func RequirePanicIs(t testing.TB, target error, f func()) {
	t.Helper()
	var recovered interface{}
	func() {
		defer func() { recovered = recover() }()
		f()
	}()
	if recovered == nil {
		t.Fatalf("expected panic with %v", target)
	}
	err, ok := recovered.(error)
	if !ok {
		t.Fatalf("panic value %v is not an error, expected %v", recovered, target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("panic err=%v, expected %v", err, target)
	}
}
