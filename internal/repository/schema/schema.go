package schema

import (
	"context"
	"embed"
	"fmt"
	"io/fs"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrations - версионированные миграции, корень ФС совпадает с каталогом migrations
func Migrations() fs.FS {
	fsys, err := fs.Sub(migrations, "migrations")
	if err != nil {
		panic(err)
	}
	return fsys
}

// Apply накатывает недостающие миграции. Вызывается один раз при старте,
// повторный вызов ничего не меняет
func Apply(ctx context.Context, dbc *pgxpool.Pool) error {
	// goose работает через database/sql, соединения берутся из того же пула
	db := stdlib.OpenDBFromPool(dbc)
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, Migrations())
	if err != nil {
		return fmt.Errorf("migrations provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}
