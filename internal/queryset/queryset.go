// Package queryset builds read queries for tables with an is_active flag.
package queryset

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
)

const activeColumn = "is_active"

// Querier is satisfied by *pgxpool.Pool, *pgx.Conn and pgx.Tx
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// ActiveQuerySet selects rows of Table whose is_active column is true.
// Table may be schema qualified; empty Columns selects every column.
type ActiveQuerySet struct {
	Table   string
	Columns []string
	OrderBy string
}

// ActivesSQL returns the select statement with identifiers quoted
func (qs ActiveQuerySet) ActivesSQL() string {
	var b strings.Builder

	b.WriteString("SELECT ")
	b.WriteString(qs.columnList())
	b.WriteString(" FROM ")
	b.WriteString(pgx.Identifier(strings.Split(qs.Table, ".")).Sanitize())
	b.WriteString(" WHERE ")
	b.WriteString(pgx.Identifier{activeColumn}.Sanitize())
	b.WriteString(" = TRUE")

	if qs.OrderBy != "" {
		b.WriteString(" ORDER BY ")
		b.WriteString(pgx.Identifier{qs.OrderBy}.Sanitize())
	}

	return b.String()
}

func (qs ActiveQuerySet) columnList() string {
	if len(qs.Columns) == 0 {
		return "*"
	}

	quoted := make([]string, len(qs.Columns))
	for i, c := range qs.Columns {
		quoted[i] = pgx.Identifier{c}.Sanitize()
	}

	return strings.Join(quoted, ", ")
}

// Actives runs the query set and maps each row onto T by column name
func Actives[T any](ctx context.Context, q Querier, qs ActiveQuerySet) ([]T, error) {
	if qs.Table == "" {
		return nil, fmt.Errorf("queryset: table name required")
	}

	rows, err := q.Query(ctx, qs.ActivesSQL())
	if err != nil {
		return nil, fmt.Errorf("query active %s: %w", qs.Table, err)
	}

	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[T])
	if err != nil {
		return nil, fmt.Errorf("collect active %s: %w", qs.Table, err)
	}

	return items, nil
}
