package diag

import (
	"errors"
	"fmt"
	"testing"
)

func TestError(t *testing.T) {
	setCulpritMarkers(t, "<", ">")
	setMessageMarkers(t, "{", "}")

	err := &testError{
		Message: "bad list",
		Context: *contextInParen("a.tvk", "draw (x y)"),
	}

	wantErrorString := "test error: a.tvk:1:6: bad list"
	if s := err.Error(); s != wantErrorString {
		t.Errorf(".Error() returns %q, want %q", s, wantErrorString)
	}

	wantRanging := Ranging{From: 5, To: 10}
	if r := err.Range(); r != wantRanging {
		t.Errorf(".Range() returns %v, want %v", r, wantRanging)
	}

	wantShow := lines(
		"Test error: {bad list}",
		"  a.tvk, line 1: draw <(x y)>",
	)
	if s := err.Show(""); s != wantShow {
		t.Errorf(".Show(\"\") returns %q, want %q", s, wantShow)
	}
}

func TestPackAndUnpackErrors(t *testing.T) {
	if err := PackErrors[testErrorTag](nil); err != nil {
		t.Errorf("PackErrors(nil) -> %v, want nil", err)
	}

	e1 := &testError{Message: "one", Context: *NewContext("x", "ab", Ranging{0, 1})}
	e2 := &testError{Message: "two", Context: *NewContext("x", "ab", Ranging{1, 2})}

	if err := PackErrors([]*testError{e1}); err != e1 {
		t.Errorf("PackErrors of one error -> %v, want the error itself", err)
	}

	packed := PackErrors([]*testError{e1, e2})
	unpacked := UnpackErrors[testErrorTag](packed)
	if len(unpacked) != 2 || unpacked[0] != e1 || unpacked[1] != e2 {
		t.Errorf("UnpackErrors -> %v, want [e1 e2]", unpacked)
	}

	wrapped := fmt.Errorf("wrapped: %w", e1)
	if got := UnpackErrors[testErrorTag](wrapped); len(got) != 1 || got[0] != e1 {
		t.Errorf("UnpackErrors(wrapped) -> %v, want [e1]", got)
	}

	if got := UnpackErrors[testErrorTag](errors.New("plain")); got != nil {
		t.Errorf("UnpackErrors(plain) -> %v, want nil", got)
	}
}
