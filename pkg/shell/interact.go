package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"src.tvk.sh/pkg/config"
	"src.tvk.sh/pkg/diag"
	"src.tvk.sh/pkg/eval"
	"src.tvk.sh/pkg/parse"
	"src.tvk.sh/pkg/render"
	"src.tvk.sh/pkg/store/storedefs"
	"src.tvk.sh/pkg/sys"
)

const (
	prompt     = "tvk> "
	contPrompt = "...> "
	sessionSrc = "[session]"
)

// A session keeps the source entered so far. Every change to the source
// evaluates all of it again.
type session struct {
	fds  [3]*os.File
	st   storedefs.Store
	rec  *render.Recorder
	code string
	last eval.PassResult
	quit bool
}

// Runs an interactive session until :quit or the end of input.
func interact(fds [3]*os.File, cfg config.Config, st storedefs.Store) {
	s := &session{fds: fds, st: st, rec: render.NewRecorder(textureDir(cfg, "."))}
	in := bufio.NewReader(fds[0])
	for !s.quit {
		fmt.Fprint(fds[1], prompt)
		input, err := readInput(in, fds[1])
		if input != "" {
			s.handle(input)
		}
		if err == io.EOF {
			fmt.Fprintln(fds[1])
			return
		} else if err != nil {
			fmt.Fprintln(fds[2], "cannot read input:", err)
			return
		}
	}
}

// Reads one line, and more lines while the lists in the input are not closed.
func readInput(in *bufio.Reader, out io.Writer) (string, error) {
	var sb strings.Builder
	for {
		line, err := in.ReadString('\n')
		sb.WriteString(line)
		if err != nil || openLists(sb.String()) <= 0 {
			return strings.TrimRight(sb.String(), "\r\n"), err
		}
		fmt.Fprint(out, contPrompt)
	}
}

// Returns the number of lists that are opened but not closed in code.
func openLists(code string) int {
	depth := 0
	for _, r := range code {
		switch r {
		case '(':
			depth++
		case ')':
			depth--
		}
	}
	return depth
}

func (s *session) handle(input string) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return
	}
	if strings.HasPrefix(trimmed, ":") {
		s.command(strings.Fields(trimmed))
		return
	}
	if s.code != "" {
		s.code += "\n"
	}
	s.code += input
	s.reload()
}

func (s *session) reload() {
	s.last = pass(s.rec, parse.Source{Name: sessionSrc, Code: s.code})
	showErrors(s.fds[2], s.last)
	showSummary(s.fds[1], s.last, s.rec)
}

func (s *session) command(fields []string) {
	out := s.fds[1]
	name, args := fields[0], fields[1:]
	switch name {
	case ":quit":
		s.quit = true
	case ":source":
		if s.code != "" {
			fmt.Fprintln(out, s.code)
		}
	case ":reset":
		s.code = ""
		s.last = eval.PassResult{}
		s.rec.Clear()
	case ":env":
		if s.last.Env == nil {
			return
		}
		_, width := sys.WinSize(out)
		for _, name := range s.last.Env.Names() {
			v, _ := s.last.Env.Lookup(name)
			fmt.Fprintln(out, truncate(name+" = "+v.Repr(), width))
		}
	case ":ast":
		for _, form := range s.last.Tree.Forms {
			fmt.Fprintln(out, parse.Repr(form))
		}
	case ":scenes":
		if !s.needStore() {
			return
		}
		names, err := s.st.SceneNames()
		if err != nil {
			diag.Complainf(s.fds[2], "cannot list scenes: %v", err)
			return
		}
		for _, name := range names {
			fmt.Fprintln(out, name)
		}
	case ":save", ":load", ":delete":
		if len(args) != 1 {
			diag.Complainf(s.fds[2], "%s takes exactly one scene name", name)
			return
		}
		if !s.needStore() {
			return
		}
		s.sceneCommand(name, args[0])
	default:
		diag.Complainf(s.fds[2], "unknown command %s", name)
	}
}

func (s *session) needStore() bool {
	if s.st == nil {
		diag.Complain(s.fds[2], errNoDB.Error())
	}
	return s.st != nil
}

func (s *session) sceneCommand(cmd, scene string) {
	switch cmd {
	case ":save":
		if err := s.st.SetScene(scene, s.code); err != nil {
			diag.Complainf(s.fds[2], "cannot save scene: %v", err)
		}
	case ":load":
		code, err := s.st.Scene(scene)
		if err != nil {
			diag.Complainf(s.fds[2], "cannot load scene %s: %v", scene, err)
			return
		}
		s.code = code
		s.reload()
	case ":delete":
		if err := s.st.DelScene(scene); err != nil {
			diag.Complainf(s.fds[2], "cannot delete scene %s: %v", scene, err)
		}
	}
}

// Truncates s to width runes. A non-positive width means no limit.
func truncate(s string, width int) string {
	if width <= 0 {
		return s
	}
	rs := []rune(s)
	if len(rs) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(rs[:width-1]) + "…"
}
