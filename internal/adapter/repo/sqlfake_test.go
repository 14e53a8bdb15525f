package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// simpleRow is a pgx.Row backed by a scan function.
type simpleRow struct {
	scan func(dest ...any) error
}

func (r simpleRow) Scan(dest ...any) error {
	if r.scan == nil {
		return pgx.ErrNoRows
	}
	return r.scan(dest...)
}

type call struct {
	query string
	args  []any
}

// fakeSQL records statements and answers them with canned rows.
type fakeSQL struct {
	calls   []call
	row     func(query string, args []any) pgx.Row
	execTag pgconn.CommandTag
	err     error
}

func (f *fakeSQL) Exec(_ context.Context, query string, args ...any) (pgconn.CommandTag, error) {
	f.calls = append(f.calls, call{query: query, args: args})
	if f.err != nil {
		return pgconn.CommandTag{}, f.err
	}
	return f.execTag, nil
}

func (f *fakeSQL) QueryRow(_ context.Context, query string, args ...any) pgx.Row {
	f.calls = append(f.calls, call{query: query, args: args})
	if f.err != nil {
		return simpleRow{scan: func(...any) error { return f.err }}
	}
	if f.row == nil {
		return simpleRow{}
	}
	return f.row(query, args)
}

func (f *fakeSQL) Query(context.Context, string, ...any) (pgx.Rows, error) {
	return nil, errors.New("query not supported by fake")
}

func assign(dest []any, values ...any) error {
	if len(dest) != len(values) {
		return fmt.Errorf("unexpected scan args: got %d want %d", len(dest), len(values))
	}
	for i, v := range values {
		switch d := dest[i].(type) {
		case *string:
			*d = v.(string)
		case **string:
			if v == nil {
				*d = nil
			} else {
				s := v.(string)
				*d = &s
			}
		case *float64:
			*d = v.(float64)
		case *[]string:
			if v != nil {
				*d = v.([]string)
			}
		case *time.Time:
			*d = v.(time.Time)
		default:
			return fmt.Errorf("dest %d: unsupported scan target %T", i, d)
		}
	}
	return nil
}
