package pg_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gong8/sentinel-site/pkg/pg"
)

func TestMigrateEmptyPath(t *testing.T) {
	t.Parallel()

	cfg := pg.Config{MigrationsPath: ""}
	err := pg.Migrate(context.Background(), nil, cfg, slog.Default())
	require.Error(t, err)
	require.ErrorIs(t, err, pg.ErrFailedToApplyMigrations)
	require.ErrorIs(t, err, pg.ErrMigrationPathNotProvided)
}

func TestMigrateMissingDir(t *testing.T) {
	t.Parallel()

	cfg := pg.Config{MigrationsPath: "testdata/does-not-exist"}
	err := pg.Migrate(context.Background(), nil, cfg, slog.Default())
	require.Error(t, err)
	require.ErrorIs(t, err, pg.ErrMigrationsDirNotFound)
}
