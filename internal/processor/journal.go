package processor

import (
	"context"
	"database/sql"

	"github.com/goran-ethernal/ReputationIndexor/pkg/store"
)

// DomainEvent links an applied mutation to the raw event that caused it.
type DomainEvent struct {
	Type       string `meddler:"domain_event_type"`
	EntityID   uint64 `meddler:"domain_entity_id"`
	RawEventID int64  `meddler:"raw_event_id"`
}

// Journal accumulates the domain_events rows of a batch.
type Journal []DomainEvent

// Add records that raw produced a mutation of entityID.
func (j *Journal) Add(eventType string, entityID uint64, raw *store.RawEvent) {
	*j = append(*j, DomainEvent{Type: eventType, EntityID: entityID, RawEventID: raw.ID})
}

// Write inserts the rows, skipping ones already journaled.
func (j Journal) Write(ctx context.Context, tx *sql.Tx) error {
	for i := range j {
		if err := InsertIgnore(ctx, tx, "domain_events", &j[i]); err != nil {
			return err
		}
	}
	return nil
}
