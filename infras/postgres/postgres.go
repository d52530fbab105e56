package postgres

//nolint:revive
import (
	"fmt"
	"time"

	"hotel/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const driverName = "postgres"

// Connection splits reads and writes; both may point at the same server.
type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

func New(cfg *config.Config) *Connection {
	read, err := Connect(cfg, "read", cfg.DB.Postgres.Read)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open read database")
	}

	write, err := Connect(cfg, "write", cfg.DB.Postgres.Write)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open write database")
	}

	return &Connection{
		Read:  read,
		Write: write,
	}
}

// Connect opens a pool for endpoint, retrying MaxRetry times before giving up.
func Connect(cfg *config.Config, name string, endpoint config.PostgresEndpoint) (*sqlx.DB, error) {
	pg := cfg.DB.Postgres
	attempts := max(pg.MaxRetry, 1)
	dsn := endpoint.DSN(pg.Prefix, nil)

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		var db *sqlx.DB

		db, err = sqlx.Connect(driverName, dsn)
		if err == nil {
			db.SetMaxOpenConns(pg.MaxOpenConns)
			db.SetMaxIdleConns(pg.MaxIdleConns)
			db.SetConnMaxLifetime(time.Duration(pg.ConnMaxLifetime) * time.Second)

			log.Info().
				Str("name", name).
				Str("host", endpoint.Host).
				Str("database", pg.Prefix+endpoint.Name).
				Msg("connected to database")

			return db, nil
		}

		log.Warn().
			Err(err).
			Str("name", name).
			Str("host", endpoint.Host).
			Int("attempt", attempt).
			Msg("failed connecting to database")

		if attempt < attempts {
			time.Sleep(time.Duration(pg.RetryWaitTime) * time.Second)
		}
	}

	return nil, fmt.Errorf("connect %s database after %d attempts: %w", name, attempts, err)
}
