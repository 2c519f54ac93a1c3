package router_test

import (
	"context"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
)

// memoryDB stands in for Postgres behind the generated queries. It keeps
// contact_submissions rows in insertion order and serves the three queries
// the intake API issues.
type memoryDB struct {
	mu   sync.Mutex
	rows [][]any
	now  time.Time
	fail error
}

func newMemoryDB() *memoryDB {
	return &memoryDB{now: time.Date(2024, 4, 1, 10, 0, 0, 0, time.UTC)}
}

func (m *memoryDB) Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, fmt.Errorf("memoryDB: exec not supported")
}

func (m *memoryDB) QueryRow(_ context.Context, sql string, args ...interface{}) pgx.Row {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return memoryRow{err: m.fail}
	}
	if !strings.Contains(sql, "INSERT INTO contact_submissions") {
		return memoryRow{err: fmt.Errorf("memoryDB: unexpected query %q", sql)}
	}

	m.now = m.now.Add(time.Minute)
	row := []any{int64(len(m.rows) + 1)}
	row = append(row, args...)
	row = append(row, pgtype.Timestamptz{Time: m.now, Valid: true})
	m.rows = append(m.rows, row)
	return memoryRow{values: row}
}

func (m *memoryDB) Query(_ context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.fail != nil {
		return nil, m.fail
	}

	sorted := make([][]any, len(m.rows))
	copy(sorted, m.rows)
	sort.SliceStable(sorted, func(i, j int) bool {
		return createdAt(sorted[i]).After(createdAt(sorted[j]))
	})

	limit := int(args[0].(int32))
	offset := 0
	export := len(args) == 1
	if !export {
		offset = int(args[1].(int32))
	}

	var page [][]any
	for i := offset; i < len(sorted) && len(page) < limit; i++ {
		row := sorted[i]
		if export {
			// id, name, email, phone, company, ... (no country_code)
			trimmed := append([]any{}, row[:4]...)
			row = append(trimmed, row[5:]...)
		}
		page = append(page, row)
	}
	return &memoryRows{rows: page, pos: -1}, nil
}

func createdAt(row []any) time.Time {
	return row[len(row)-1].(pgtype.Timestamptz).Time
}

type memoryRow struct {
	values []any
	err    error
}

func (r memoryRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	return scanInto(r.values, dest)
}

type memoryRows struct {
	rows [][]any
	pos  int
}

func (r *memoryRows) Close()                                       {}
func (r *memoryRows) Err() error                                   { return nil }
func (r *memoryRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *memoryRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *memoryRows) RawValues() [][]byte                          { return nil }
func (r *memoryRows) Conn() *pgx.Conn                              { return nil }
func (r *memoryRows) Values() ([]any, error)                       { return r.rows[r.pos], nil }

func (r *memoryRows) Next() bool {
	r.pos++
	return r.pos < len(r.rows)
}

func (r *memoryRows) Scan(dest ...any) error {
	return scanInto(r.rows[r.pos], dest)
}

func scanInto(values, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("memoryDB: %d values for %d targets", len(values), len(dest))
	}
	for i, v := range values {
		reflect.ValueOf(dest[i]).Elem().Set(reflect.ValueOf(v))
	}
	return nil
}
