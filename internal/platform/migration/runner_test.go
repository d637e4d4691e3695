// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package migration_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/bibble/internal/platform/migration"
)

func TestPgxURL(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"postgres://u:p@db:5432/bibble", "pgx5://u:p@db:5432/bibble"},
		{"postgresql://u:p@db/bibble?sslmode=disable", "pgx5://u:p@db/bibble?sslmode=disable"},
		{"pgx5://db/bibble", "pgx5://db/bibble"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, migration.PgxURL(tt.in))
	}
}

func TestDown_RejectsNonPositiveSteps(t *testing.T) {
	_, err := migration.Down("postgres://localhost/none", "data/migrations", 0, slog.Default())
	assert.ErrorContains(t, err, "steps must be positive")
}

func TestResult_Changed(t *testing.T) {
	assert.True(t, migration.Result{From: 0, To: 1}.Changed())
	assert.False(t, migration.Result{From: 1, To: 1}.Changed())
}
