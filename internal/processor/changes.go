package processor

import (
	"context"
	"database/sql"
	"slices"
)

// Change is the pending write for one entity.
type Change[R any] struct {
	Row R
	// Insert writes the full row; otherwise only Columns are updated.
	Insert  bool
	Columns []string
}

// ChangeSet collapses the writes of a batch into one change per entity, last write wins.
// Insert is sticky: an entity created and updated in the same batch is still inserted in full.
type ChangeSet[K comparable, R any] struct {
	changes *OrderedMap[K, *Change[R]]
}

func NewChangeSet[K comparable, R any]() *ChangeSet[K, R] {
	return &ChangeSet[K, R]{changes: NewOrderedMap[K, *Change[R]]()}
}

// Insert records the full row for key.
func (c *ChangeSet[K, R]) Insert(key K, row R) {
	change, ok := c.changes.Get(key)
	if !ok {
		c.changes.Set(key, &Change[R]{Row: row, Insert: true})
		return
	}
	change.Row = row
	change.Insert = true
}

// Update records that columns of key changed. row carries the current state.
func (c *ChangeSet[K, R]) Update(key K, row R, columns ...string) {
	change, ok := c.changes.Get(key)
	if !ok {
		c.changes.Set(key, &Change[R]{Row: row, Columns: slices.Clone(columns)})
		return
	}
	change.Row = row
	for _, col := range columns {
		if !slices.Contains(change.Columns, col) {
			change.Columns = append(change.Columns, col)
		}
	}
}

func (c *ChangeSet[K, R]) Get(key K) (*Change[R], bool) {
	return c.changes.Get(key)
}

func (c *ChangeSet[K, R]) Len() int {
	return c.changes.Len()
}

// Apply writes every change into table. An update of a record that does not exist yet
// falls back to inserting the full row.
func (c *ChangeSet[K, R]) Apply(ctx context.Context, tx *sql.Tx, table, keyColumn string) error {
	return c.changes.Each(func(_ K, change *Change[R]) error {
		if change.Insert {
			return Upsert(ctx, tx, table, keyColumn, change.Row)
		}

		updated, err := UpdateColumns(ctx, tx, table, keyColumn, change.Row, change.Columns)
		if err != nil {
			return err
		}
		if updated == 0 {
			return Upsert(ctx, tx, table, keyColumn, change.Row)
		}
		return nil
	})
}
