package input

import (
	"errors"
	"strings"

	"github.com/idilsaglam/todolist/internal/model"
)

// ErrBlank is returned by OnSubmit when blank input is rejected.
var ErrBlank = errors.New("entry cannot be blank")

// Appender is the one store capability the controller needs.
type Appender interface {
	Append(value string) model.Entry
}

// Controller owns the pending text and turns it into entries on submit.
type Controller struct {
	store       Appender
	buffer      string
	rejectBlank bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithRejectBlank makes OnSubmit refuse empty and whitespace-only text.
func WithRejectBlank() Option {
	return func(c *Controller) { c.rejectBlank = true }
}

func New(store Appender, opts ...Option) *Controller {
	c := &Controller{store: store}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Buffer is the text typed so far.
func (c *Controller) Buffer() string { return c.buffer }

// OnTextChange replaces the buffer with text as-is.
func (c *Controller) OnTextChange(text string) { c.buffer = text }

// OnSubmit appends the buffer to the store and clears it.
// With WithRejectBlank, blank text returns ErrBlank and leaves both the store
// and the buffer untouched.
func (c *Controller) OnSubmit() (model.Entry, error) {
	if c.rejectBlank && strings.TrimSpace(c.buffer) == "" {
		return model.Entry{}, ErrBlank
	}
	e := c.store.Append(c.buffer)
	c.buffer = ""
	return e, nil
}
