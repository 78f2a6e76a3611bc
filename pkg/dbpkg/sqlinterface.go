// Package dbpkg provides database setup and transaction support.
package dbpkg

import (
	"context"
	"database/sql"
)

// SQLInterface is the subset of database/sql methods the repositories
// need. Both *sql.DB and *sql.Tx satisfy it, so row-level repos run
// inside or outside a transaction unchanged.
type SQLInterface interface {
	ExecContext(context.Context, string, ...interface{}) (sql.Result, error)
	PrepareContext(context.Context, string) (*sql.Stmt, error)
	QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error)
	QueryRowContext(context.Context, string, ...interface{}) *sql.Row
}
