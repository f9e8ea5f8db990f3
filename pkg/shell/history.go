package shell

import (
	"fmt"
	"io"
	"strings"

	"src.tvk.sh/pkg/fsutil"
	"src.tvk.sh/pkg/store/storedefs"
)

// Lists revisions, one per line, with the first line of their text. If name is
// not empty, only revisions of that source are listed.
func listRevisions(w io.Writer, st storedefs.Store, name string) error {
	upto, err := st.NextRevisionSeq()
	if err != nil {
		return err
	}
	revs, err := st.Revisions(1, upto)
	if err != nil {
		return err
	}
	for _, rev := range revs {
		if name != "" && rev.Name != name {
			continue
		}
		fmt.Fprintf(w, "%5d  %s  %s\n", rev.Seq, fsutil.TildeAbbr(rev.Name), firstLine(rev.Text))
	}
	return nil
}

func printRevision(w io.Writer, st storedefs.Store, seq int) error {
	rev, err := st.Revision(seq)
	if err != nil {
		return fmt.Errorf("revision %d: %w", seq, err)
	}
	io.WriteString(w, rev.Text)
	if !strings.HasSuffix(rev.Text, "\n") {
		io.WriteString(w, "\n")
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i != -1 {
		return s[:i]
	}
	return s
}
