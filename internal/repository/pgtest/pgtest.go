// Package pgtest поднимает изолированную схему Postgres для тестов репозиториев.
// Без PG_DSN тесты пропускаются
package pgtest

import (
	"context"
	"lockin_backend/internal/repository/schema"
	"os"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

const dsnEnv = "PG_DSN"

// New создаёт отдельную схему, накатывает в неё миграции и возвращает пул,
// у которого search_path указывает на эту схему. Схема удаляется после теста
func New(t *testing.T) *pgxpool.Pool {
	t.Helper()

	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		t.Skip(dsnEnv + " is not set")
	}

	ctx := context.Background()
	name := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	admin, err := pgx.Connect(ctx, dsn)
	require.NoError(t, err)
	_, err = admin.Exec(ctx, "CREATE SCHEMA "+name)
	require.NoError(t, err)

	cfg, err := pgxpool.ParseConfig(dsn)
	require.NoError(t, err)
	cfg.ConnConfig.RuntimeParams["search_path"] = name

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	require.NoError(t, err)

	t.Cleanup(func() {
		pool.Close()
		_, _ = admin.Exec(ctx, "DROP SCHEMA "+name+" CASCADE")
		_ = admin.Close(ctx)
	})

	require.NoError(t, schema.Apply(ctx, pool))

	return pool
}
