package postgres

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsUniqueConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "gorm duplicated key",
			err:  gorm.ErrDuplicatedKey,
			want: true,
		},
		{
			name: "wrapped pg unique violation",
			err:  errors.Wrap(&pgconn.PgError{Code: pgCodeUniqueViolation}, "create account"),
			want: true,
		},
		{
			name: "pg foreign key violation",
			err:  &pgconn.PgError{Code: pgCodeForeignKeyViolation},
			want: false,
		},
		{
			name: "unrelated error",
			err:  errors.New("connection reset"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isUniqueConstraintViolation(tt.err))
		})
	}
}

func TestIsForeignKeyConstraintViolation(t *testing.T) {
	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(&pgconn.PgError{Code: pgCodeForeignKeyViolation}))
	assert.False(t, isForeignKeyConstraintViolation(errors.New("boom")))
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	assert.True(t, isNotNullConstraintViolation(&pgconn.PgError{Code: pgCodeNotNullViolation}))
	assert.False(t, isNotNullConstraintViolation(gorm.ErrRecordNotFound))
}
