package postgres

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestIsUniqueViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: codeUniqueViolation}

	assert.True(t, isUniqueViolation(pgErr))
	assert.True(t, isUniqueViolation(fmt.Errorf("insert component: %w", pgErr)),
		"debe detectar el código aunque el error venga envuelto")
	assert.False(t, isUniqueViolation(errors.New("otra cosa")))
	assert.False(t, isUniqueViolation(&pgconn.PgError{Code: codeForeignKeyViolation}))
}

func TestIsForeignKeyViolation(t *testing.T) {
	pgErr := &pgconn.PgError{Code: codeForeignKeyViolation}

	assert.True(t, isForeignKeyViolation(fmt.Errorf("delete component: %w", pgErr)))
	assert.False(t, isForeignKeyViolation(errors.New("timeout")))
}
