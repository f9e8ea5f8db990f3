package shell

import (
	"bufio"
	"fmt"
	"os"
	"os/signal"
	"time"

	"src.tvk.sh/pkg/config"
	"src.tvk.sh/pkg/eval"
	"src.tvk.sh/pkg/parse"
	"src.tvk.sh/pkg/prog"
	"src.tvk.sh/pkg/render"
	"src.tvk.sh/pkg/store/storedefs"
)

// Evaluates the file at name, and again every time its content changes, until
// interrupted.
//
// While the last pass left the interpreting mode at manual, changes are not
// picked up by themselves; a line on stdin requests a reload instead.
func (p *Program) watchFile(fds [3]*os.File, name string, rec *render.Recorder, cfg config.Config, st storedefs.Store) error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	defer signal.Stop(sigCh)

	reloadCh := make(chan struct{}, 1)
	go readReloadRequests(fds[0], reloadCh)

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	var (
		last   string
		mode   eval.Mode
		loaded bool
		forced bool
	)
	for {
		code, err := readFileUTF8(name)
		switch {
		case err != nil && !loaded:
			fmt.Fprintf(fds[2], "cannot read %q: %v\n", name, err)
			return prog.Exit(2)
		case err != nil:
			logger.Println("reading source:", err)
		case !loaded || forced || (code != last && mode != eval.Manual):
			if loaded {
				logger.Println("reloading", name)
			}
			addRevision(st, name, code)
			res := pass(rec, parse.Source{Name: name, Code: code})
			showResult(fds, res, rec, p.dump)
			if p.afterPass != nil {
				p.afterPass(res)
			}
			last, mode, loaded = code, res.Mode, true
		}
		forced = false

		select {
		case <-ticker.C:
		case <-reloadCh:
			forced = true
		case <-sigCh:
			return nil
		case <-p.stop:
			return nil
		}
	}
}

func readReloadRequests(in *os.File, reloadCh chan<- struct{}) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		select {
		case reloadCh <- struct{}{}:
		default:
		}
	}
}
