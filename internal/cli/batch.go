package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/export"
	"github.com/idilsaglam/todolist/internal/input"
	"github.com/idilsaglam/todolist/internal/ui"
)

func newBatchCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [FILE]",
		Short: "Run add/rm/ls commands from a script",
		Long: `batch reads one command per line from FILE, or stdin when FILE is
omitted or "-", and applies them to a fresh list:

  add <text>   add an entry; text is everything after the first space
               or tab following "add"
  rm <id>      remove the entries with this id
  rm #<n>      remove the entry shown at position n (1-based)
  ls           print the list

Blank lines and lines starting with # are skipped. The final list is
printed when the script ends.`,
		Example: `  printf 'add Buy milk\nadd Walk dog\nrm #1\n' | todo batch
  todo batch --ids uuid --json script.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r := cmd.InOrStdin()
			if len(args) == 1 && args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("open script: %w", err)
				}
				defer f.Close()
				r = f
			}

			sess, err := newSession(o.cfg, o.log)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			status := out
			if o.json {
				status = cmd.ErrOrStderr()
			}
			b := &batch{sess: sess, status: status, errOut: cmd.ErrOrStderr()}
			if err := b.run(r); err != nil {
				return err
			}

			snap := sess.presenter.Snapshot()
			o.log.Info("batch finished", "commands", b.done, "changes", sess.changes, "entries", snap.Len())
			if o.json {
				return export.Write(out, snap)
			}
			b.list(out)
			return nil
		},
	}
}

// batch applies script lines to one session.
type batch struct {
	sess   *session
	status io.Writer
	errOut io.Writer
	done   int
}

// run returns an error for malformed lines; refused or no-op commands are
// reported and the script goes on.
func (b *batch) run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	// Values are stored verbatim, so a line may be any length.
	sc.Buffer(make([]byte, 0, 64*1024), math.MaxInt)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimLeft(strings.TrimSuffix(sc.Text(), "\r"), " \t")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		cmd, arg := line, ""
		if i := strings.IndexAny(line, " \t"); i >= 0 {
			cmd, arg = line[:i], line[i+1:]
		}
		if err := b.exec(cmd, arg); err != nil {
			return fmt.Errorf("line %d: %w", n, err)
		}
		b.done++
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read script: %w", err)
	}
	return nil
}

func (b *batch) exec(cmd, arg string) error {
	switch cmd {
	case "add":
		b.sess.input.OnTextChange(arg)
		e, err := b.sess.input.OnSubmit()
		if err != nil {
			if errors.Is(err, input.ErrBlank) {
				ui.Fail(b.errOut, "add: "+err.Error())
				b.sess.input.OnTextChange("")
				return nil
			}
			return fmt.Errorf("add: %w", err)
		}
		ui.OK(b.status, "added "+e.ID)
		return nil

	case "rm":
		target := strings.TrimSpace(arg)
		if target == "" {
			return errors.New("usage: rm <id> | rm #<n>")
		}
		if pos, ok := strings.CutPrefix(target, "#"); ok {
			n, err := strconv.Atoi(pos)
			if err != nil {
				return fmt.Errorf("rm: not a number: %s", pos)
			}
			id, err := b.sess.presenter.IDAt(n)
			if err != nil {
				ui.Fail(b.errOut, "rm: "+err.Error())
				return nil
			}
			target = id
		}
		before := b.sess.presenter.Snapshot().Len()
		after := b.sess.presenter.OnEntryActivated(target).Len()
		if before == after {
			ui.Fail(b.errOut, "rm: no entry with id "+target)
			return nil
		}
		ui.OK(b.status, "removed "+target)
		return nil

	case "ls":
		if arg != "" {
			return errors.New("usage: ls")
		}
		b.list(b.status)
		return nil
	}
	return fmt.Errorf("unknown command %q", cmd)
}

func (b *batch) list(w io.Writer) {
	lines := []string{ui.Header(b.sess.presenter.Snapshot().Len()), ""}
	lines = append(lines, b.sess.presenter.Lines()...)
	ui.Panel(w, lines)
}
