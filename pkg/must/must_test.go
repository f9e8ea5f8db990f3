package must

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestOK_PanicsOnError(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("OK did not panic on error")
		}
	}()
	OK(errors.New("bad"))
}

func TestOK1_ReturnsValue(t *testing.T) {
	if got := OK1(42, nil); got != 42 {
		t.Errorf("OK1 -> %v, want 42", got)
	}
}

func TestWriteFileAndReadFileString(t *testing.T) {
	name := filepath.Join(t.TempDir(), "a", "b.tvk")
	WriteFile(name, "(draw vb)")
	if got := ReadFileString(name); got != "(draw vb)" {
		t.Errorf("ReadFileString -> %q, want %q", got, "(draw vb)")
	}
}

func TestPipe(t *testing.T) {
	r, w := Pipe()
	w.WriteString("data")
	w.Close()
	if got := ReadAllAndClose(r); got != "data" {
		t.Errorf("ReadAllAndClose -> %q, want %q", got, "data")
	}
}
