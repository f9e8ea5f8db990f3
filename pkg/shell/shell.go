// Package shell is the entry point for the terminal interface of tvk.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"unicode/utf8"

	"src.tvk.sh/pkg/config"
	"src.tvk.sh/pkg/diag"
	"src.tvk.sh/pkg/eval"
	"src.tvk.sh/pkg/logutil"
	"src.tvk.sh/pkg/parse"
	"src.tvk.sh/pkg/prog"
	"src.tvk.sh/pkg/render"
	"src.tvk.sh/pkg/store"
	"src.tvk.sh/pkg/store/storedefs"
	"src.tvk.sh/pkg/sys"
)

var logger = logutil.GetLogger("[shell] ")

// PreviewFunc opens a preview window on the source file at path, and returns
// when the window is closed.
type PreviewFunc func(path string, cfg config.Config) error

// Program is the shell subprogram. It never returns prog.ErrNextProgram, so it
// should be the last program in a composite.
type Program struct {
	// Used for -preview. If nil, -preview is an error.
	Preview PreviewFunc

	paths    *prog.Paths
	dump     bool
	watch    bool
	preview  bool
	history  bool
	revision int

	// Hooks for tests of the watch mode.
	stop      <-chan struct{}
	afterPass func(eval.PassResult)
}

var (
	errNoDB      = errors.New("no database; set one with -db or in the configuration file")
	errNoPreview = errors.New("preview is not supported by this build")
)

func (p *Program) RegisterFlags(fs *prog.FlagSet) {
	p.paths = fs.Paths()
	fs.BoolVar(&p.dump, "dump", false,
		"write what the scene draws as YAML instead of a summary")
	fs.BoolVar(&p.watch, "watch", false,
		"evaluate the file again whenever it changes")
	fs.BoolVar(&p.preview, "preview", false, "show the scene in a preview window")
	fs.BoolVar(&p.history, "history", false,
		"list stored revisions, only those of the file if one is given")
	fs.IntVar(&p.revision, "revision", -1,
		"print the stored revision with the given sequence number")
}

func (p *Program) Run(fds [3]*os.File, args []string) error {
	if !sys.IsATTY(fds[2].Fd()) {
		diag.DisableColor()
	}
	cfg, err := config.ForPaths(p.paths)
	if err != nil {
		return err
	}
	if p.paths.Log == "" && cfg.Log != "" {
		if err := logutil.SetOutputFile(cfg.Log); err != nil {
			fmt.Fprintln(fds[2], err)
		}
	}
	if len(args) > 1 {
		return prog.BadUsage("at most one file can be given")
	}

	st, cleanup := openStore(fds[2], cfg.DB)
	defer cleanup()

	if p.history || p.revision >= 0 {
		if st == nil {
			return errNoDB
		}
		if p.revision >= 0 {
			return printRevision(fds[1], st, p.revision)
		}
		name := ""
		if len(args) == 1 {
			name, err = filepath.Abs(args[0])
			if err != nil {
				return err
			}
		}
		return listRevisions(fds[1], st, name)
	}

	if len(args) == 0 {
		if p.watch || p.preview {
			return prog.BadUsage("-watch and -preview require a file")
		}
		if sys.IsATTY(fds[0].Fd()) {
			interact(fds, cfg, st)
			return nil
		}
		code, err := io.ReadAll(fds[0])
		if err != nil {
			return err
		}
		src := parse.Source{Name: "[stdin]", Code: string(code)}
		rec := render.NewRecorder(textureDir(cfg, "."))
		return prog.Exit(p.runOnce(fds, src, rec))
	}

	name, err := filepath.Abs(args[0])
	if err != nil {
		fmt.Fprintf(fds[2], "cannot get full path of %q: %v\n", args[0], err)
		return prog.Exit(2)
	}
	if p.preview {
		if p.Preview == nil {
			return errNoPreview
		}
		return p.Preview(name, cfg)
	}
	rec := render.NewRecorder(textureDir(cfg, filepath.Dir(name)))
	if p.watch {
		return p.watchFile(fds, name, rec, cfg, st)
	}
	code, err := readFileUTF8(name)
	if err != nil {
		fmt.Fprintf(fds[2], "cannot read %q: %v\n", name, err)
		return prog.Exit(2)
	}
	addRevision(st, name, code)
	return prog.Exit(p.runOnce(fds, parse.Source{Name: name, Code: code}, rec))
}

// Runs one pass and writes the result. It returns the exit status.
func (p *Program) runOnce(fds [3]*os.File, src parse.Source, rec *render.Recorder) int {
	res := pass(rec, src)
	showResult(fds, res, rec, p.dump)
	if p.afterPass != nil {
		p.afterPass(res)
	}
	if res.Fatal != nil {
		return 2
	}
	return 0
}

// Opens the store if a database is configured. A store that cannot be opened
// is only a warning, since everything except the history works without one.
func openStore(stderr io.Writer, db string) (storedefs.Store, func()) {
	if db == "" {
		return nil, func() {}
	}
	st, err := store.NewStore(db)
	if err != nil {
		fmt.Fprintln(stderr, "Warning: cannot open database:", err)
		fmt.Fprintln(stderr, "Revisions and saved scenes are not available.")
		return nil, func() {}
	}
	return st, func() {
		if err := st.Close(); err != nil {
			logger.Println("closing store:", err)
		}
	}
}

// Stores a revision of the source, unless it is the same as the last one.
func addRevision(st storedefs.Store, name, code string) {
	if st == nil {
		return
	}
	last, err := st.LastRevision(name)
	if err == nil && last.Text == code {
		return
	}
	if _, err := st.AddRevision(name, code); err != nil {
		logger.Println("adding revision:", err)
	}
}

func textureDir(cfg config.Config, fallback string) string {
	if cfg.TextureDir != "" {
		return cfg.TextureDir
	}
	return fallback
}

var errSourceNotUTF8 = errors.New("source is not UTF-8")

func readFileUTF8(fname string) (string, error) {
	bytes, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(bytes) {
		return "", errSourceNotUTF8
	}
	return string(bytes), nil
}
