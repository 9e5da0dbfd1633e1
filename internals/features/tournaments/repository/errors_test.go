package repository

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestIsUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"deadline", fmt.Errorf("count: %w", context.DeadlineExceeded), true},
		{"canceled", context.Canceled, true},
		{"pg connection failure", fmt.Errorf("find: %w", &pgconn.PgError{Code: "08006"}), true},
		{"pg unique violation", &pgconn.PgError{Code: "23505"}, false},
		{"mongo disconnected", fmt.Errorf("find: %w", mongo.ErrClientDisconnected), true},
		{"mongo no documents", mongo.ErrNoDocuments, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsUnavailable(tt.err))
		})
	}
}
