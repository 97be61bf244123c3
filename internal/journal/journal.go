package journal

import (
	"context"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"github.com/feral-file/ff-dao/internal/adapter"
	"github.com/feral-file/ff-dao/internal/store"
	"github.com/feral-file/ff-dao/internal/store/schema"
)

// Entry describes one audited state change
type Entry struct {
	SubjectType schema.SubjectType
	SubjectID   string
	Action      string
	Actor       string
	At          time.Time
	Meta        map[string]any
}

// Recorder appends entries to the governance journal inside the caller's transaction.
// A nil Recorder records nothing.
type Recorder struct {
	json adapter.JSON
	jcs  adapter.JCS
}

// NewRecorder creates a journal recorder
func NewRecorder(jsonAdapter adapter.JSON, jcsAdapter adapter.JCS) *Recorder {
	return &Recorder{
		json: jsonAdapter,
		jcs:  jcsAdapter,
	}
}

// Record appends the entry using tx
func (r *Recorder) Record(ctx context.Context, tx store.Store, entry Entry) error {
	if r == nil {
		return nil
	}

	row := &schema.GovernanceJournal{
		SubjectType: entry.SubjectType,
		SubjectID:   entry.SubjectID,
		Action:      entry.Action,
		Actor:       entry.Actor,
		ChangedAt:   entry.At,
	}
	if len(entry.Meta) > 0 {
		meta, err := adapter.CanonicalJSON(r.json, r.jcs, entry.Meta)
		if err != nil {
			return fmt.Errorf("failed to encode journal meta: %w", err)
		}
		row.Meta = datatypes.JSON(meta)
	}

	return tx.AppendJournal(ctx, row)
}
