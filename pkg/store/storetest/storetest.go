// Package storetest keeps test suites against storedefs.Store.
package storetest

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"src.tvk.sh/pkg/store/storedefs"
)

var revisionsToAdd = []storedefs.Revision{
	{Name: "a.tvk", Text: "(def a 1)"},
	{Name: "b.tvk", Text: "(draw vb)"},
	{Name: "a.tvk", Text: "(def a 2)"},
	{Name: "a.tvk", Text: ""},
}

// TestRevision runs the revision test suite against the given store.
func TestRevision(t *testing.T, store storedefs.Store) {
	startSeq, err := store.NextRevisionSeq()
	if startSeq != 1 || err != nil {
		t.Errorf("store.NextRevisionSeq() -> %v, %v, want %v, nil",
			startSeq, err, 1)
	}

	var want []storedefs.Revision
	for i, rev := range revisionsToAdd {
		wantSeq := startSeq + i
		seq, err := store.AddRevision(rev.Name, rev.Text)
		if seq != wantSeq || err != nil {
			t.Errorf("store.AddRevision(%q, %q) -> %v, %v, want %v, nil",
				rev.Name, rev.Text, seq, err, wantSeq)
		}
		rev.Seq = wantSeq
		want = append(want, rev)
	}

	endSeq, err := store.NextRevisionSeq()
	wantEndSeq := startSeq + len(revisionsToAdd)
	if endSeq != wantEndSeq || err != nil {
		t.Errorf("store.NextRevisionSeq() -> %v, %v, want %v, nil",
			endSeq, err, wantEndSeq)
	}

	for _, rev := range want {
		got, err := store.Revision(rev.Seq)
		if got != rev || err != nil {
			t.Errorf("store.Revision(%v) -> %v, %v, want %v, nil", rev.Seq, got, err, rev)
		}
	}
	if _, err := store.Revision(endSeq); err != storedefs.ErrNoMatchingRevision {
		t.Errorf("store.Revision(%v) -> error %v, want ErrNoMatchingRevision", endSeq, err)
	}

	revs, err := store.Revisions(startSeq+1, startSeq+3)
	if diff := cmp.Diff(want[1:3], revs); diff != "" || err != nil {
		t.Errorf("store.Revisions -> error %v, diff (-want +got):\n%s", err, diff)
	}

	last, err := store.LastRevision("a.tvk")
	if last != want[3] || err != nil {
		t.Errorf("store.LastRevision(a.tvk) -> %v, %v, want %v, nil", last, err, want[3])
	}
	last, err = store.LastRevision("b.tvk")
	if last != want[1] || err != nil {
		t.Errorf("store.LastRevision(b.tvk) -> %v, %v, want %v, nil", last, err, want[1])
	}
	// A name that is a prefix of another does not match.
	if _, err := store.LastRevision("a"); err != storedefs.ErrNoMatchingRevision {
		t.Errorf("store.LastRevision(a) -> error %v, want ErrNoMatchingRevision", err)
	}

	if err := store.DelRevision(want[3].Seq); err != nil {
		t.Errorf("store.DelRevision -> %v", err)
	}
	last, err = store.LastRevision("a.tvk")
	if last != want[2] || err != nil {
		t.Errorf("store.LastRevision(a.tvk) after deletion -> %v, %v, want %v, nil",
			last, err, want[2])
	}
}

// TestScene runs the scene test suite against the given store.
func TestScene(t *testing.T, store storedefs.Store) {
	if _, err := store.Scene("cube"); err != storedefs.ErrNoScene {
		t.Errorf("store.Scene(cube) -> error %v, want ErrNoScene", err)
	}

	for _, name := range []string{"cube", "axes"} {
		if err := store.SetScene(name, "("+name+")"); err != nil {
			t.Errorf("store.SetScene(%q) -> %v", name, err)
		}
	}
	if err := store.SetScene("cube", "(draw m)"); err != nil {
		t.Errorf("store.SetScene(cube) -> %v", err)
	}

	if text, err := store.Scene("cube"); text != "(draw m)" || err != nil {
		t.Errorf("store.Scene(cube) -> %q, %v, want %q, nil", text, err, "(draw m)")
	}
	names, err := store.SceneNames()
	if diff := cmp.Diff([]string{"axes", "cube"}, names); diff != "" || err != nil {
		t.Errorf("store.SceneNames() -> error %v, diff (-want +got):\n%s", err, diff)
	}

	if err := store.DelScene("cube"); err != nil {
		t.Errorf("store.DelScene(cube) -> %v", err)
	}
	if _, err := store.Scene("cube"); err != storedefs.ErrNoScene {
		t.Errorf("store.Scene(cube) after deletion -> error %v, want ErrNoScene", err)
	}
}
