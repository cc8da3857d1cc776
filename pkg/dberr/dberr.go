// Package dberr classifies database constraint failures independently of the
// driver that raised them.
package dberr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
)

// Kind 约束错误类别
type Kind string

const (
	KindUnique     Kind = "unique_violation"
	KindForeignKey Kind = "foreign_key_violation"
	KindNotNull    Kind = "not_null_violation"
	KindTooLong    Kind = "value_too_long"
)

var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
	ErrNotNullViolation    = errors.New("not null violation")
	ErrValueTooLong        = errors.New("value too long")
)

var sentinels = map[Kind]error{
	KindUnique:     ErrUniqueViolation,
	KindForeignKey: ErrForeignKeyViolation,
	KindNotNull:    ErrNotNullViolation,
	KindTooLong:    ErrValueTooLong,
}

// ConstraintError wraps a driver error with the violated constraint.
type ConstraintError struct {
	Kind       Kind
	Table      string
	Column     string
	Constraint string
	Err        error
}

func (e *ConstraintError) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := string(e.Kind)
	switch {
	case e.Table != "" && e.Column != "":
		base += fmt.Sprintf(" (%s.%s)", e.Table, e.Column)
	case e.Constraint != "":
		base += fmt.Sprintf(" (%s)", e.Constraint)
	}
	if e.Err != nil {
		base += ": " + e.Err.Error()
	}
	return base
}

func (e *ConstraintError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is matches the sentinel for the error's kind.
func (e *ConstraintError) Is(target error) bool {
	if e == nil {
		return false
	}
	s, ok := sentinels[e.Kind]
	return ok && s == target
}

// IsKind reports whether err carries a ConstraintError of the given kind.
func IsKind(err error, kind Kind) bool {
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return ce.Kind == kind
	}
	return false
}

// Translate maps sqlite and postgres constraint failures onto
// *ConstraintError. Anything else is returned unchanged.
func Translate(err error) error {
	if err == nil {
		return nil
	}
	var ce *ConstraintError
	if errors.As(err, &ce) {
		return err
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return fromSQLite(sqliteErr, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return fromPostgres(pgErr, err)
	}
	return err
}

func fromSQLite(se sqlite3.Error, err error) error {
	var kind Kind
	switch se.ExtendedCode {
	case sqlite3.ErrConstraintUnique, sqlite3.ErrConstraintPrimaryKey:
		kind = KindUnique
	case sqlite3.ErrConstraintForeignKey:
		kind = KindForeignKey
	case sqlite3.ErrConstraintNotNull:
		kind = KindNotNull
	case sqlite3.ErrConstraintTrigger:
		// ON DELETE RESTRICT 在 sqlite 中以触发器约束报告
		if !strings.Contains(err.Error(), "FOREIGN KEY constraint failed") {
			return err
		}
		kind = KindForeignKey
	default:
		return err
	}
	out := &ConstraintError{Kind: kind, Err: err}
	// "UNIQUE constraint failed: user.username, ..."
	if _, cols, ok := strings.Cut(se.Error(), "constraint failed: "); ok {
		first, _, _ := strings.Cut(cols, ",")
		if table, col, ok := strings.Cut(strings.TrimSpace(first), "."); ok {
			out.Table, out.Column = table, col
		}
	}
	return out
}

func fromPostgres(pe *pgconn.PgError, err error) error {
	var kind Kind
	switch pe.Code {
	case "23505":
		kind = KindUnique
	case "23503":
		kind = KindForeignKey
	case "23502":
		kind = KindNotNull
	case "22001":
		kind = KindTooLong
	default:
		return err
	}
	return &ConstraintError{
		Kind:       kind,
		Table:      pe.TableName,
		Column:     pe.ColumnName,
		Constraint: pe.ConstraintName,
		Err:        err,
	}
}
