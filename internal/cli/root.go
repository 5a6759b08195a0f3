package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/export"
	"github.com/idilsaglam/todolist/internal/tui"
	"github.com/idilsaglam/todolist/internal/ui"
)

// rootOptions are the persistent flags plus what PersistentPreRunE derives
// from them.
type rootOptions struct {
	configPath string
	verbose    bool
	json       bool

	cfg      config.Config
	log      *slog.Logger
	closeLog func() error
}

// Execute runs the CLI and returns the process exit code (0 ok, 1 error).
func Execute() int {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		ui.Fail(root.ErrOrStderr(), err.Error())
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	o := &rootOptions{}

	root := &cobra.Command{
		Use:   "todo",
		Short: "A tiny in-memory todo list",
		Long: `todo keeps a list of entries for the length of one session.
Type to fill the input, enter adds it; switch to the list with tab and
remove the selected entry with d or enter. Nothing is saved on exit.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// The TUI owns the terminal, so only batch mode logs to stderr by default.
			var fallback io.Writer = io.Discard
			if cmd.Name() != cmd.Root().Name() {
				fallback = cmd.ErrOrStderr()
			}
			return o.setup(cmd, fallback)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if o.closeLog != nil {
				return o.closeLog()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(o.cfg, o.log)
			if err != nil {
				return err
			}
			o.log.Info("tui started", "ids", o.cfg.IDs.Scheme, "reject_blank", o.cfg.Input.RejectBlank)
			snap, err := tui.Run(cmd.Context(), tui.New(sess.input, sess.presenter))
			if err != nil {
				return err
			}
			o.log.Info("tui finished", "changes", sess.changes, "entries", snap.Len())
			if o.json {
				return export.Write(cmd.OutOrStdout(), snap)
			}
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&o.configPath, "config", "", "config file (default $TODOLIST_CONFIG or <config dir>/todolist/config.toml)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.BoolVar(&o.json, "json", false, "Print the final list as JSON")
	pf.String("ids", "", "id scheme: timestamp, uuid or seq")
	pf.Bool("reject-blank", false, "Refuse blank or whitespace-only entries")
	pf.String("theme", "", "color theme: classic, neon or mono")
	pf.String("log-file", "", "append logs to this file")

	root.AddCommand(newBatchCmd(o), newVersionCmd())
	return root
}

// flagKeys maps persistent flags to config keys.
var flagKeys = map[string]string{
	"ids":          "ids.scheme",
	"reject-blank": "input.reject_blank",
	"theme":        "ui.theme",
	"log-file":     "log.file",
}

func (o *rootOptions) setup(cmd *cobra.Command, fallback io.Writer) error {
	v := config.New()
	for name, k := range flagKeys {
		if err := v.BindPFlag(k, cmd.Root().PersistentFlags().Lookup(name)); err != nil {
			return fmt.Errorf("bind flag %s: %w", name, err)
		}
	}
	cfg, err := config.Load(v, o.configPath)
	if err != nil {
		return err
	}
	if o.verbose {
		cfg.Log.Level = "debug"
	}
	if err := ui.SetTheme(cfg.UI.Theme); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, fallback)
	if err != nil {
		return err
	}
	slog.SetDefault(logger)

	o.cfg, o.log, o.closeLog = cfg, logger, closeLog
	logger.Debug("config loaded", "ids", cfg.IDs.Scheme, "theme", cfg.UI.Theme, "file", o.configPath)
	return nil
}

func newLogger(c config.LogConfig, fallback io.Writer) (*slog.Logger, func() error, error) {
	level, err := c.SlogLevel()
	if err != nil {
		return nil, nil, err
	}
	w, closeFn := fallback, func() error { return nil }
	if c.File != "" {
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w, closeFn = f, f.Close
	}
	opts := &slog.HandlerOptions{Level: level}
	return slog.New(slog.NewTextHandler(w, opts)), closeFn, nil
}
