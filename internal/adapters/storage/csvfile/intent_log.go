package csvfile

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/abcbank/corebank/internal/core/domain"
	portsrepo "github.com/abcbank/corebank/internal/core/ports/repositories"
)

var intentHeader = []string{"intent_id", "created_at", "status", "payload"}

const (
	intColID      = 0
	intColCreated = 1
	intColStatus  = 2
	intColPayload = 3
)

type intentLog struct {
	path string
	mu   sync.Mutex
}

// NewIntentLog creates the write-ahead intent log at path. Entries are stored
// as a JSON payload column so the log schema stays stable as operations grow.
func NewIntentLog(path string) portsrepo.IntentRepository {
	return &intentLog{path: path}
}

var _ portsrepo.IntentRepository = (*intentLog)(nil)

// BeginIntent appends the intent with status PENDING.
func (l *intentLog) BeginIntent(ctx context.Context, intent domain.Intent) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	payload, err := json.Marshal(intent.Entries)
	if err != nil {
		return storageErr("encode intent payload", err)
	}
	return appendRow(l.path, []string{
		intent.IntentID,
		intent.CreatedAt.Format(timeLayout),
		string(domain.IntentPending),
		string(payload),
	})
}

// MarkIntentCommitted flips the intent's status to COMMITTED.
func (l *intentLog) MarkIntentCommitted(ctx context.Context, intentID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := readTable(l.path)
	if err != nil {
		return err
	}
	found := false
	for _, row := range rows {
		if len(row) == len(intentHeader) && row[intColID] == intentID {
			row[intColStatus] = string(domain.IntentCommitted)
			found = true
		}
	}
	if !found {
		return storageErr("commit intent", fmt.Errorf("intent %s not found", intentID))
	}
	return writeTable(l.path, intentHeader, rows)
}

// ListPendingIntents retrieves intents still PENDING, in append order.
func (l *intentLog) ListPendingIntents(ctx context.Context) ([]domain.Intent, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	rows, err := readTable(l.path)
	if err != nil {
		return nil, err
	}
	pending := make([]domain.Intent, 0)
	for _, row := range rows {
		if len(row) != len(intentHeader) {
			return nil, storageErr("parse intent log", fmt.Errorf("expected %d columns, got %d", len(intentHeader), len(row)))
		}
		if domain.IntentStatus(row[intColStatus]) != domain.IntentPending {
			continue
		}
		createdAt, err := time.Parse(timeLayout, row[intColCreated])
		if err != nil {
			return nil, storageErr("parse intent log", err)
		}
		var entries []domain.IntentEntry
		if err := json.Unmarshal([]byte(row[intColPayload]), &entries); err != nil {
			return nil, storageErr("decode intent payload", err)
		}
		pending = append(pending, domain.Intent{
			IntentID:  row[intColID],
			CreatedAt: createdAt,
			Status:    domain.IntentPending,
			Entries:   entries,
		})
	}
	return pending, nil
}
