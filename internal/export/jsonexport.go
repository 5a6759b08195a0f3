package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/idilsaglam/todolist/internal/model"
)

// JSON output of a snapshot. Human-readable, write-only: nothing reads it
// back into a session.

// Write encodes s as an indented JSON array of {"id","value"} objects.
func Write(w io.Writer, s *model.Snapshot) error {
	b, err := json.MarshalIndent(s.Entries(), "", "  ")
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := w.Write(b); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}
