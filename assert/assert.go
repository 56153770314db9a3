// A wrapper around *testing.T. I hate the if a != b { t.ErrorF(....) } pattern.
// Every helper fails the test immediately.
package assert

import (
	"errors"
	"iter"
	"reflect"
	"strings"
	"testing"
)

// a == b
func Equal[T comparable](t *testing.T, actual T, expected T) {
	t.Helper()
	if actual != expected {
		t.Fatalf("expected '%v' to equal '%v'", actual, expected)
	}
}

// Two lists are equal (same length & same values in the same order)
func List[T comparable](t *testing.T, actuals []T, expecteds []T) {
	t.Helper()
	if len(actuals) != len(expecteds) {
		t.Fatalf("expected %v (len %d) to equal %v (len %d)", actuals, len(actuals), expecteds, len(expecteds))
	}
	for i, actual := range actuals {
		if actual != expecteds[i] {
			t.Fatalf("expected %v to equal %v (index %d differs)", actuals, expecteds, i)
		}
	}
}

// A sequence yields exactly the expected values, in order
func Seq[T comparable](t *testing.T, seq iter.Seq[T], expecteds ...T) {
	t.Helper()
	var actuals []T
	for v := range seq {
		actuals = append(actuals, v)
	}
	List(t, actuals, expecteds)
}

// A value is nil
func Nil(t *testing.T, actual interface{}) {
	t.Helper()
	if !isNil(actual) {
		t.Fatalf("expected %v to be nil", actual)
	}
}

// A value is not nil
func NotNil(t *testing.T, actual interface{}) {
	t.Helper()
	if isNil(actual) {
		t.Fatalf("expected %v to be not nil", actual)
	}
}

// A value is true
func True(t *testing.T, actual bool) {
	t.Helper()
	if !actual {
		t.Fatal("expected true, got false")
	}
}

// A value is false
func False(t *testing.T, actual bool) {
	t.Helper()
	if actual {
		t.Fatal("expected false, got true")
	}
}

// The string contains the given value
func StringContains(t *testing.T, actual string, expected string) {
	t.Helper()
	if !strings.Contains(actual, expected) {
		t.Fatalf("expected %s to contain %s", actual, expected)
	}
}

// actual is, or wraps, expected
func Error(t *testing.T, actual error, expected error) {
	t.Helper()
	if !errors.Is(actual, expected) {
		t.Fatalf("expected '%v' to be '%v'", actual, expected)
	}
}

func NoError(t *testing.T, actual error) {
	t.Helper()
	if actual != nil {
		t.Fatalf("expected no error, got '%v'", actual)
	}
}

func isNil(value interface{}) bool {
	if value == nil {
		return true
	}
	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Chan, reflect.Func, reflect.Interface, reflect.Map, reflect.Pointer, reflect.Slice:
		return v.IsNil()
	}
	return false
}
