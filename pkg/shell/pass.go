package shell

import (
	"fmt"
	"io"
	"os"

	"src.tvk.sh/pkg/diag"
	"src.tvk.sh/pkg/eval"
	"src.tvk.sh/pkg/parse"
	"src.tvk.sh/pkg/render"
)

// Clears the recorder and evaluates src into it.
func pass(rec *render.Recorder, src parse.Source) eval.PassResult {
	rec.Clear()
	return eval.Pass(src, rec)
}

// Shows the errors of a pass on stderr, and either a summary or a YAML dump of
// what was drawn on stdout.
func showResult(fds [3]*os.File, res eval.PassResult, rec *render.Recorder, dump bool) {
	showErrors(fds[2], res)
	if dump {
		if err := rec.WriteYAML(fds[1]); err != nil {
			fmt.Fprintln(fds[2], "cannot write dump:", err)
		}
		return
	}
	showSummary(fds[1], res, rec)
}

func showErrors(w io.Writer, res eval.PassResult) {
	for _, err := range res.ParseErrors {
		diag.ShowError(w, err)
	}
	for _, err := range res.Diagnostics {
		diag.ShowError(w, err)
	}
	if res.Fatal != nil {
		diag.ShowError(w, res.Fatal)
	}
}

func showSummary(w io.Writer, res eval.PassResult, rec *render.Recorder) {
	fmt.Fprintf(w, "%d forms, %d models, %d vertex buffers, topology %s, %s mode\n",
		res.Forms, len(rec.Models()), len(rec.VertexBuffers()), rec.Topology(), res.Mode)
}
