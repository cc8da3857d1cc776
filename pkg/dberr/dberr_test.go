package dberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslateSQLiteCodes(t *testing.T) {
	cases := []struct {
		ext  sqlite3.ErrNoExtended
		want error
	}{
		{sqlite3.ErrConstraintUnique, ErrUniqueViolation},
		{sqlite3.ErrConstraintPrimaryKey, ErrUniqueViolation},
		{sqlite3.ErrConstraintForeignKey, ErrForeignKeyViolation},
		{sqlite3.ErrConstraintNotNull, ErrNotNullViolation},
	}
	for _, tc := range cases {
		raw := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: tc.ext}
		err := Translate(fmt.Errorf("insert: %w", raw))
		assert.ErrorIs(t, err, tc.want, "extended code %d", tc.ext)

		var got sqlite3.Error
		assert.True(t, errors.As(err, &got), "driver error stays reachable")
	}
}

func TestTranslateSQLiteRestrictAction(t *testing.T) {
	raw := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintTrigger}

	err := Translate(fmt.Errorf("delete user: FOREIGN KEY constraint failed: %w", raw))
	assert.ErrorIs(t, err, ErrForeignKeyViolation)
	assert.True(t, IsKind(err, KindForeignKey))

	// 非外键的触发器失败保持原样
	err = Translate(fmt.Errorf("trigger aborted: %w", raw))
	assert.False(t, IsKind(err, KindForeignKey))
}

func TestTranslateSQLiteOtherConstraint(t *testing.T) {
	raw := sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintCheck}
	err := Translate(raw)
	var ce *ConstraintError
	assert.False(t, errors.As(err, &ce))
}

func TestTranslatePostgresCodes(t *testing.T) {
	cases := map[string]Kind{
		"23505": KindUnique,
		"23503": KindForeignKey,
		"23502": KindNotNull,
		"22001": KindTooLong,
	}
	for code, kind := range cases {
		err := Translate(&pgconn.PgError{Code: code, TableName: "user", ColumnName: "email", ConstraintName: "idx_user_email"})
		assert.True(t, IsKind(err, kind), code)

		var ce *ConstraintError
		require.ErrorAs(t, err, &ce)
		assert.Equal(t, "user", ce.Table)
		assert.Equal(t, "idx_user_email", ce.Constraint)
	}

	err := Translate(&pgconn.PgError{Code: "40001"})
	assert.False(t, IsKind(err, KindUnique))
}

func TestTranslatePassThrough(t *testing.T) {
	assert.NoError(t, Translate(nil))

	plain := errors.New("boom")
	assert.Same(t, plain, Translate(plain))

	ce := &ConstraintError{Kind: KindTooLong, Table: "media", Column: "url"}
	assert.Same(t, ce, Translate(ce))
}

func TestConstraintErrorMessage(t *testing.T) {
	err := &ConstraintError{Kind: KindUnique, Table: "user", Column: "username", Err: errors.New("driver")}
	assert.Equal(t, "unique_violation (user.username): driver", err.Error())

	err = &ConstraintError{Kind: KindForeignKey, Constraint: "fk_post_user"}
	assert.Equal(t, "foreign_key_violation (fk_post_user)", err.Error())
	assert.False(t, errors.Is(err, ErrUniqueViolation))
	assert.True(t, errors.Is(err, ErrForeignKeyViolation))
}
