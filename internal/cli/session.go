package cli

import (
	"log/slog"

	"github.com/idilsaglam/todolist/internal/config"
	"github.com/idilsaglam/todolist/internal/ids"
	"github.com/idilsaglam/todolist/internal/input"
	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/presenter"
	"github.com/idilsaglam/todolist/internal/store"
)

// session is the single owner of the store. It hands the same store to the
// input controller and the presenter; they never talk to each other.
type session struct {
	store     *store.Store
	input     *input.Controller
	presenter *presenter.Presenter

	// changes counts store mutations, for the exit log line.
	changes int
}

func newSession(cfg config.Config, log *slog.Logger) (*session, error) {
	gen, err := ids.ByScheme(cfg.IDs.Scheme)
	if err != nil {
		return nil, err
	}
	sess := &session{}
	s := store.New(store.WithGenerator(gen), store.WithLogger(log))
	s.Subscribe(store.ObserverFunc(func(_, _ *model.Snapshot) { sess.changes++ }))

	var opts []input.Option
	if cfg.Input.RejectBlank {
		opts = append(opts, input.WithRejectBlank())
	}
	sess.store = s
	sess.input = input.New(s, opts...)
	sess.presenter = presenter.New(s, s)
	return sess, nil
}
