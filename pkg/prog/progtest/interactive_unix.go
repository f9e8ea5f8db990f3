//go:build unix

package progtest

import (
	"io"
	"os"

	"github.com/creack/pty"

	"src.tvk.sh/pkg/must"
	"src.tvk.sh/pkg/prog"
)

// RunInteractive is like Run, but connects stdin to a pseudo-terminal, and
// writes input to the terminal. Stdout and stderr are still pipes.
func RunInteractive(p prog.Program, args []string, input string) (int, string, string) {
	ptmx, tty := must.OK2(pty.Open())
	defer ptmx.Close()
	defer tty.Close()
	// Drain the echo of the input.
	go io.Copy(io.Discard, ptmx)
	go io.WriteString(ptmx, input)

	r1, w1 := must.Pipe()
	r2, w2 := must.Pipe()
	stdout := make(chan string)
	stderr := make(chan string)
	go func() { stdout <- must.ReadAllAndClose(r1) }()
	go func() { stderr <- must.ReadAllAndClose(r2) }()

	exit := prog.Run([3]*os.File{tty, w1, w2}, args, p)
	w1.Close()
	w2.Close()
	return exit, <-stdout, <-stderr
}
