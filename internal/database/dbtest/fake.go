// Package dbtest records statements sent to a fake database.DB.
package dbtest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"career-advisor/internal/database"

	"github.com/jackc/pgx/v5"
)

type Call struct {
	SQL  string
	Args []any
	InTx bool
}

type DB struct {
	mu sync.Mutex

	Calls []Call

	ExecFn     func(sql string, args []any) (int64, error)
	QueryFn    func(sql string, args []any) (database.Rows, error)
	QueryRowFn func(sql string, args []any) database.Row

	BeginErr  error
	PingErr   error
	Commits   int
	Rollbacks int
}

func New() *DB { return &DB{} }

func (d *DB) record(q string, args []any, inTx bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.Calls = append(d.Calls, Call{SQL: compact(q), Args: args, InTx: inTx})
}

func (d *DB) exec(q string, args []any, inTx bool) (int64, error) {
	d.record(q, args, inTx)
	if d.ExecFn == nil {
		return 1, nil
	}
	return d.ExecFn(compact(q), args)
}

func (d *DB) query(q string, args []any, inTx bool) (database.Rows, error) {
	d.record(q, args, inTx)
	if d.QueryFn == nil {
		return &Rows{}, nil
	}
	return d.QueryFn(compact(q), args)
}

func (d *DB) queryRow(q string, args []any, inTx bool) database.Row {
	d.record(q, args, inTx)
	if d.QueryRowFn == nil {
		return Row{Err: pgx.ErrNoRows}
	}
	return d.QueryRowFn(compact(q), args)
}

func (d *DB) Exec(_ context.Context, q string, args ...any) (int64, error) {
	return d.exec(q, args, false)
}

func (d *DB) Query(_ context.Context, q string, args ...any) (database.Rows, error) {
	return d.query(q, args, false)
}

func (d *DB) QueryRow(_ context.Context, q string, args ...any) database.Row {
	return d.queryRow(q, args, false)
}

func (d *DB) Ping(context.Context) error { return d.PingErr }
func (d *DB) Close() error               { return nil }
func (d *DB) SQLDB() *sql.DB             { return nil }

func (d *DB) Begin(context.Context) (database.Tx, error) {
	if d.BeginErr != nil {
		return nil, d.BeginErr
	}
	return &tx{db: d}, nil
}

func (d *DB) LastCall() Call {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.Calls) == 0 {
		return Call{}
	}
	return d.Calls[len(d.Calls)-1]
}

type tx struct {
	db   *DB
	done bool
}

func (t *tx) Exec(_ context.Context, q string, args ...any) (int64, error) {
	return t.db.exec(q, args, true)
}

func (t *tx) Query(_ context.Context, q string, args ...any) (database.Rows, error) {
	return t.db.query(q, args, true)
}

func (t *tx) QueryRow(_ context.Context, q string, args ...any) database.Row {
	return t.db.queryRow(q, args, true)
}

func (t *tx) Commit(context.Context) error {
	if t.done {
		return errors.New("tx closed")
	}
	t.done = true
	t.db.mu.Lock()
	t.db.Commits++
	t.db.mu.Unlock()
	return nil
}

func (t *tx) Rollback(context.Context) error {
	if t.done {
		return nil
	}
	t.done = true
	t.db.mu.Lock()
	t.db.Rollbacks++
	t.db.mu.Unlock()
	return nil
}

type Row struct {
	Values []any
	Err    error
}

func (r Row) Scan(dest ...any) error {
	if r.Err != nil {
		return r.Err
	}
	return assign(r.Values, dest)
}

type Rows struct {
	Data    [][]any
	IterErr error

	pos    int
	closed bool
}

func (r *Rows) Close()     { r.closed = true }
func (r *Rows) Err() error { return r.IterErr }

func (r *Rows) Next() bool {
	if r.closed || r.pos >= len(r.Data) {
		return false
	}
	r.pos++
	return true
}

func (r *Rows) Scan(dest ...any) error {
	if r.pos == 0 || r.pos > len(r.Data) {
		return errors.New("scan called without a current row")
	}
	return assign(r.Data[r.pos-1], dest)
}

func (r *Rows) Closed() bool { return r.closed }

func assign(values []any, dest []any) error {
	if len(values) != len(dest) {
		return fmt.Errorf("scan: %d values for %d destinations", len(values), len(dest))
	}
	for i, d := range dest {
		dv := reflect.ValueOf(d)
		if dv.Kind() != reflect.Pointer || dv.IsNil() {
			return fmt.Errorf("scan: destination %d is not a pointer", i)
		}
		target := dv.Elem()
		if values[i] == nil {
			target.Set(reflect.Zero(target.Type()))
			continue
		}
		v := reflect.ValueOf(values[i])
		switch {
		case v.Type().AssignableTo(target.Type()):
			target.Set(v)
		case v.Type().ConvertibleTo(target.Type()):
			target.Set(v.Convert(target.Type()))
		default:
			return fmt.Errorf("scan: cannot assign %T to %s", values[i], target.Type())
		}
	}
	return nil
}

func compact(q string) string {
	return strings.Join(strings.Fields(q), " ")
}
