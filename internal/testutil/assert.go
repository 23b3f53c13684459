// Package testutil provides shared test helpers: go-cmp based assertions
// and position builders for tests above the engine package.
package testutil

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// AssertEqual compares got and want using cmp.Diff and reports differences.
// The msgAndArgs are optional and provide additional context on failure.
func AssertEqual(t testing.TB, got, want interface{}, msgAndArgs ...interface{}) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		fail(t, msgAndArgs, "mismatch (-want +got):\n%s", diff)
	}
}

// AssertDiff is AssertEqual with cmp options, for structs that need
// cmpopts or comparers.
func AssertDiff(t testing.TB, want, got interface{}, opts ...cmp.Option) {
	t.Helper()
	if diff := cmp.Diff(want, got, opts...); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

// AssertNoError fails if err is not nil.
func AssertNoError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err != nil {
		fail(t, msgAndArgs, "unexpected error: %v", err)
	}
}

// AssertError fails if err is nil when an error was expected.
func AssertError(t testing.TB, err error, msgAndArgs ...interface{}) {
	t.Helper()
	if err == nil {
		fail(t, msgAndArgs, "expected error but got nil")
	}
}

// AssertErrorIs fails unless errors.Is(err, target).
func AssertErrorIs(t testing.TB, err, target error, msgAndArgs ...interface{}) {
	t.Helper()
	if !errors.Is(err, target) {
		fail(t, msgAndArgs, "error = %v, want %v", err, target)
	}
}

// AssertContains fails if substr is not found in got.
func AssertContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if !strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q does not contain %q", got, substr)
	}
}

// AssertNotContains fails if substr is found in got.
func AssertNotContains(t testing.TB, got, substr string, msgAndArgs ...interface{}) {
	t.Helper()
	if strings.Contains(got, substr) {
		fail(t, msgAndArgs, "%q should not contain %q", got, substr)
	}
}

// AssertTrue fails if condition is false.
func AssertTrue(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if !condition {
		fail(t, msgAndArgs, "expected true but got false")
	}
}

// AssertFalse fails if condition is true.
func AssertFalse(t testing.TB, condition bool, msgAndArgs ...interface{}) {
	t.Helper()
	if condition {
		fail(t, msgAndArgs, "expected false but got true")
	}
}

func fail(t testing.TB, msgAndArgs []interface{}, format string, args ...interface{}) {
	t.Helper()
	text := fmt.Sprintf(format, args...)
	if msg := formatMessage(msgAndArgs...); msg != "" {
		text = msg + ": " + text
	}
	t.Error(text)
}

// formatMessage formats optional message arguments into a string.
func formatMessage(msgAndArgs ...interface{}) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	s, ok := msgAndArgs[0].(string)
	if !ok {
		return fmt.Sprintf("%v", msgAndArgs[0])
	}
	if len(msgAndArgs) == 1 {
		return s
	}
	return fmt.Sprintf(s, msgAndArgs[1:]...)
}
