package sqlconfig

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// RunMigrations brings the sqlite database at dbPath up to the latest schema.
// It uses its own connection because closing the migrator closes the database handle.
func RunMigrations(dbPath string) error {
	m, err := newMigrator(dbPath)
	if err != nil {
		return err
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// SchemaVersion reports the applied migration version of the database at dbPath.
func SchemaVersion(dbPath string) (uint, bool, error) {
	m, err := newMigrator(dbPath)
	if err != nil {
		return 0, false, err
	}
	defer m.Close()

	version, dirty, err := m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	return version, dirty, err
}

func newMigrator(dbPath string) (*migrate.Migrate, error) {
	migrateDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open migration database: %w", err)
	}

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		migrateDB.Close()
		return nil, fmt.Errorf("create sqlite driver: %w", err)
	}

	source, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		migrateDB.Close()
		return nil, fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "sqlite", driver)
	if err != nil {
		migrateDB.Close()
		return nil, fmt.Errorf("create migrate instance: %w", err)
	}
	return m, nil
}
