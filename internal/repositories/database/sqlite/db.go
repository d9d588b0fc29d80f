// Package sqlite is the single-file storage backend. It implements the same
// repository ports as the postgres backend on database/sql and modernc.org/sqlite.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/SscSPs/money_planner/internal/apperrors"
	"github.com/SscSPs/money_planner/internal/core/domain"
	"github.com/SscSPs/money_planner/internal/models"
	sqlitedrv "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Dates and timestamps are stored as TEXT in these layouts.
const (
	dateLayout = "2006-01-02"
	timeLayout = time.RFC3339Nano
)

// Open opens or creates the database at dbPath. The schema is applied separately
// by the migrations package.
func Open(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o750); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}
	// One writer at a time; concurrent regenerations queue on the pool.
	db.SetMaxOpenConns(1)

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// auditColumns receives the four audit columns as text.
type auditColumns struct {
	createdAt, createdBy, updatedAt, updatedBy string
}

func (a *auditColumns) dest() []any {
	return []any{&a.createdAt, &a.createdBy, &a.updatedAt, &a.updatedBy}
}

func (a *auditColumns) model() (models.AuditFields, error) {
	created, err := parseTime(a.createdAt)
	if err != nil {
		return models.AuditFields{}, err
	}
	updated, err := parseTime(a.updatedAt)
	if err != nil {
		return models.AuditFields{}, err
	}
	return models.AuditFields{
		CreatedAt:     created,
		CreatedBy:     a.createdBy,
		LastUpdatedAt: updated,
		LastUpdatedBy: a.updatedBy,
	}, nil
}

func auditArgs(a models.AuditFields) []any {
	return []any{formatTime(a.CreatedAt), a.CreatedBy, formatTime(a.LastUpdatedAt), a.LastUpdatedBy}
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t, nil
}

func formatDate(t time.Time) string {
	return domain.DateOnly(t).Format(dateLayout)
}

func formatDatePtr(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatDate(*t)
}

func parseNullDate(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, ns.String)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", ns.String, err)
	}
	return &t, nil
}

func nullInt64(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	v := int(n.Int64)
	return &v
}

func nullString(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	v := n.String
	return &v
}

// ptrArg binds nil pointers as NULL and dereferences the rest.
func ptrArg[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// inClause returns "(?, ?, ...)" for n values.
func inClause(n int) string {
	return "(" + strings.TrimSuffix(strings.Repeat("?, ", n), ", ") + ")"
}

func intArgs(values []int) []any {
	args := make([]any, len(values))
	for i, v := range values {
		args[i] = v
	}
	return args
}

// writeError turns constraint violations into conflicts and everything else into a 500.
func writeError(msg string, err error) error {
	var sqliteErr *sqlitedrv.Error
	if errors.As(err, &sqliteErr) {
		code := sqliteErr.Code()
		unique := code == sqlite3.SQLITE_CONSTRAINT_UNIQUE || code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
		// without extended result codes only the primary code is set
		if unique || (code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")) {
			return apperrors.NewConflictError(msg, err)
		}
	}
	return apperrors.NewAppError(500, msg, err)
}
