package processor

import (
	"context"
	"database/sql"
	"fmt"
	"slices"
	"strings"

	"github.com/russross/meddler"
)

// Upsert inserts row into table, or overwrites every other column when keyColumn already exists.
// row must be a pointer to a meddler tagged struct.
func Upsert(ctx context.Context, tx *sql.Tx, table, keyColumn string, row any) error {
	columns, values, err := columnValues(row)
	if err != nil {
		return err
	}

	updates := make([]string, 0, len(columns))
	for _, c := range columns {
		if c != keyColumn {
			updates = append(updates, fmt.Sprintf("%s = excluded.%s", c, c))
		}
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT(%s) DO UPDATE SET %s",
		table, strings.Join(columns, ", "), placeholders(len(columns)), keyColumn,
		strings.Join(updates, ", "))
	if len(updates) == 0 {
		query = fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT(%s) DO NOTHING",
			table, strings.Join(columns, ", "), placeholders(len(columns)), keyColumn)
	}

	if _, err := tx.ExecContext(ctx, query, values...); err != nil {
		return fmt.Errorf("failed to upsert into %s: %w", table, err)
	}

	return nil
}

// InsertIgnore inserts row into table unless it violates a uniqueness constraint.
func InsertIgnore(ctx context.Context, tx *sql.Tx, table string, row any) error {
	columns, values, err := columnValues(row)
	if err != nil {
		return err
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) ON CONFLICT DO NOTHING",
		table, strings.Join(columns, ", "), placeholders(len(columns)))

	if _, err := tx.ExecContext(ctx, query, values...); err != nil {
		return fmt.Errorf("failed to insert into %s: %w", table, err)
	}

	return nil
}

// UpdateColumns writes only the named columns of row to the record identified by keyColumn.
// It returns the number of updated records.
func UpdateColumns(ctx context.Context, tx *sql.Tx, table, keyColumn string, row any, columns []string) (int64, error) {
	allColumns, allValues, err := columnValues(row)
	if err != nil {
		return 0, err
	}

	var (
		sets []string
		args []any
		key  any
	)
	for i, c := range allColumns {
		if c == keyColumn {
			key = allValues[i]
			continue
		}
		if slices.Contains(columns, c) {
			sets = append(sets, c+" = ?")
			args = append(args, allValues[i])
		}
	}

	if key == nil {
		return 0, fmt.Errorf("row of %s has no %s column", table, keyColumn)
	}
	if len(sets) == 0 {
		return 0, nil
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = ?", table, strings.Join(sets, ", "), keyColumn)
	res, err := tx.ExecContext(ctx, query, append(args, key)...)
	if err != nil {
		return 0, fmt.Errorf("failed to update %s: %w", table, err)
	}

	return res.RowsAffected()
}

func columnValues(row any) ([]string, []any, error) {
	columns, err := meddler.Columns(row, true)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read columns of %T: %w", row, err)
	}

	values, err := meddler.Values(row, true)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read values of %T: %w", row, err)
	}

	return columns, values, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
