// Package helper applies the schema under migrations/postgres with golang-migrate.
package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"hotel/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const (
	migrationSource = "file://migrations/postgres"

	ActionUp      = "up"
	ActionDown    = "down"
	ActionStepUp  = "step-up"
	ActionDrop    = "drop"
	ActionVersion = "version"
)

var ErrUnknownAction = errors.New("unknown migration action")

var actions = map[string]func(*migrate.Migrate) error{
	ActionUp:     func(m *migrate.Migrate) error { return m.Up() },
	ActionDown:   func(m *migrate.Migrate) error { return m.Steps(-1) },
	ActionStepUp: func(m *migrate.Migrate) error { return m.Steps(1) },
	ActionDrop:   func(m *migrate.Migrate) error { return m.Down() },
	ActionVersion: func(m *migrate.Migrate) error {
		version, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			log.Info().Msg("no migration applied yet")

			return nil
		}

		if err == nil {
			log.Info().Uint("version", version).Bool("dirty", dirty).Msg("schema version")
		}

		return err
	},
}

// Actions lists the accepted action names, sorted.
func Actions() []string {
	names := make([]string, 0, len(actions))
	for name := range actions {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Run applies action against the write database. ErrNoChange is not an error.
func Run(cfg *config.Config, action string) error {
	apply, ok := actions[action]
	if !ok {
		return fmt.Errorf("%w %q, use one of %s", ErrUnknownAction, action, strings.Join(Actions(), ", "))
	}

	pg := cfg.DB.Postgres
	dsn := pg.Write.DSN(pg.Prefix, map[string]string{"x-migrations-table": pg.MigrationTable})

	mig, err := migrate.New(migrationSource, dsn)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}

	defer func() {
		if srcErr, dbErr := mig.Close(); srcErr != nil || dbErr != nil {
			log.Warn().AnErr("source", srcErr).AnErr("database", dbErr).Msg("failed to close migrator")
		}
	}()

	if err := apply(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", action, err)
	}

	log.Info().Str("action", action).Msg("database migration finished")

	return nil
}

func Up(cfg *config.Config) error {
	return Run(cfg, ActionUp)
}
