package audit

import (
	"context"
	"encoding/json"
	"time"

	"github.com/BruksfildServices01/estetica-agenda/internal/idgen"
	"github.com/BruksfildServices01/estetica-agenda/internal/models"
	"github.com/BruksfildServices01/estetica-agenda/internal/storage"
)

// MaxEntries bounds the audit slot; older entries are dropped first.
const MaxEntries = 500

// Logger appends audit entries to the AUDIT slot.
type Logger struct {
	store *storage.Store
	max   int
	now   func() time.Time
}

func New(store *storage.Store) *Logger {
	return &Logger{store: store, max: MaxEntries, now: time.Now}
}

func (l *Logger) Log(
	ctx context.Context,
	action string,
	entity string,
	entityID string,
	metadata any,
) error {

	var metaJSON string
	if metadata != nil {
		b, err := json.Marshal(metadata)
		if err != nil {
			return err
		}
		metaJSON = string(b)
	}

	entry := models.AuditLog{
		ID:        idgen.New(),
		Action:    action,
		Entity:    entity,
		EntityID:  entityID,
		Metadata:  metaJSON,
		CreatedAt: l.now().UnixMilli(),
	}

	logs := storage.ReadAll[models.AuditLog](ctx, l.store, storage.SlotAudit)
	logs = append(logs, entry)
	if len(logs) > l.max {
		logs = logs[len(logs)-l.max:]
	}
	storage.WriteAll(ctx, l.store, storage.SlotAudit, logs)
	return nil
}

// List returns entries newest first, optionally filtered by action and entity.
func (l *Logger) List(ctx context.Context, action, entity string) []models.AuditLog {
	logs := storage.ReadAll[models.AuditLog](ctx, l.store, storage.SlotAudit)

	out := make([]models.AuditLog, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		e := logs[i]
		if action != "" && e.Action != action {
			continue
		}
		if entity != "" && e.Entity != entity {
			continue
		}
		out = append(out, e)
	}
	return out
}
