package eval_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	. "src.tvk.sh/pkg/eval"
	"src.tvk.sh/pkg/scene"
)

func TestEnv(t *testing.T) {
	env := NewEnv()
	if _, ok := env.Lookup("a"); ok {
		t.Errorf("empty env has a binding")
	}
	env.Define("b", scene.UInt(1))
	env.Define("a", scene.Float(2))
	env.Define("b", scene.UInt(3))

	if v, _ := env.Lookup("b"); v != scene.UInt(3) {
		t.Errorf("got b = %v, want 3", v)
	}
	if diff := cmp.Diff([]string{"a", "b"}, env.Names()); diff != "" {
		t.Errorf("names (-want +got):\n%s", diff)
	}
	if env.Len() != 2 {
		t.Errorf("got Len %d, want 2", env.Len())
	}
}
