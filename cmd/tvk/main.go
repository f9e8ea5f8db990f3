// Tvk evaluates scene descriptions: S-expressions that define vertices,
// buffers, cameras and models, and draw them. It can check a scene once, watch
// it for changes, show it in a preview window, serve it to editors through the
// language server protocol, or edit it interactively.
package main

import (
	"os"

	"src.tvk.sh/pkg/buildinfo"
	"src.tvk.sh/pkg/lsp"
	"src.tvk.sh/pkg/preview"
	"src.tvk.sh/pkg/prog"
	"src.tvk.sh/pkg/shell"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&buildinfo.Program{}, &lsp.Program{},
			&shell.Program{Preview: preview.Run})))
}
