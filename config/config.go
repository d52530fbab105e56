package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"
)

type Config struct {
	Server struct {
		Env      string `envconfig:"ENV"`
		LogLevel string `envconfig:"LOG_LEVEL"`
		Port     string `envconfig:"PORT"`
		Host     string `envconfig:"HOST"`
		Shutdown struct {
			CleanupPeriodSeconds int64 `envconfig:"CLEANUP_PERIOD_SECONDS"`
			GracePeriodSeconds   int64 `envconfig:"GRACE_PERIOD_SECONDS"`
		} `envconfig:"SHUTDOWN"`
	} `envconfig:"SERVER"`

	App struct {
		Name     string `envconfig:"APP_NAME"`
		Version  string `envconfig:"VERSION" default:"dev"`
		Timezone string `envconfig:"TIMEZONE"`
		CORS     struct {
			AllowCredentials bool     `envconfig:"ALLOW_CREDENTIALS"`
			AllowedHeaders   []string `envconfig:"ALLOWED_HEADERS"`
			AllowedMethods   []string `envconfig:"ALLOWED_METHODS"`
			AllowedOrigins   []string `envconfig:"ALLOWED_ORIGINS"`
			Enable           bool     `envconfig:"ENABLE"`
			MaxAgeSeconds    int      `envconfig:"MAX_AGE_SECONDS"`
		} `envconfig:"CORS"`
		RateLimiter struct {
			Enable        bool `envconfig:"ENABLE"`
			MaxRequests   int  `envconfig:"MAX_REQUESTS"`
			WindowSeconds int  `envconfig:"WINDOW_SECONDS"`
		} `envconfig:"RATE_LIMITER"`
		APIKey      string   `envconfig:"API_KEY"`
		AdminEmails []string `envconfig:"ADMIN_EMAILS"`
		PublicURL   string   `envconfig:"PUBLIC_URL"`
	} `envconfig:"APP"`

	Cache struct {
		Redis struct {
			Primary struct {
				Host     string `envconfig:"HOST"`
				Port     string `envconfig:"PORT"`
				Password string `envconfig:"PASSWORD"`
				DB       int    `envconfig:"DB"`
			} `envconfig:"PRIMARY"`
		} `envconfig:"REDIS"`
		TTL int `envconfig:"TTL"`
	} `envconfig:"CACHE"`

	Cart struct {
		TTLSeconds int `envconfig:"TTL_SECONDS" default:"86400"`
	} `envconfig:"CART"`

	Billing struct {
		ServiceTaxPercent float64 `envconfig:"SERVICE_TAX_PERCENT"`
		Currency          string  `envconfig:"CURRENCY" default:"USD"`
	} `envconfig:"BILLING"`

	JWT struct {
		AccessSecret     string `envconfig:"ACCESS_SECRET"`
		RefreshSecret    string `envconfig:"REFRESH_SECRET"`
		AccessExpireMin  int    `envconfig:"ACCESS_EXPIRE_MIN"`
		RefreshExpireMin int    `envconfig:"REFRESH_EXPIRE_MIN"`
	} `envconfig:"JWT"`

	DB struct {
		Postgres struct {
			MaxRetry        int              `envconfig:"MAX_RETRY" default:"5"`
			RetryWaitTime   int              `envconfig:"RETRY_WAIT_TIME" default:"2"`
			MaxOpenConns    int              `envconfig:"MAX_OPEN_CONNS" default:"10"`
			MaxIdleConns    int              `envconfig:"MAX_IDLE_CONNS" default:"10"`
			ConnMaxLifetime int              `envconfig:"CONN_MAX_LIFETIME" default:"300"`
			MigrationTable  string           `envconfig:"MIGRATION_TABLE" default:"schema_migrations"`
			AutoMigrate     bool             `envconfig:"AUTO_MIGRATE"`
			Prefix          string           `envconfig:"PREFIX"`
			Read            PostgresEndpoint `envconfig:"READ"`
			Write           PostgresEndpoint `envconfig:"WRITE"`
		} `envconfig:"POSTGRES"`
	} `envconfig:"DB"`

	External struct {
		Otel struct {
			Endpoint    string  `envconfig:"ENDPOINT"`
			SampleRatio float64 `envconfig:"SAMPLE_RATIO" default:"1"`
		} `envconfig:"OTEL"`
		S3 struct {
			APIEndpoint     string `envconfig:"API_ENDPOINT"`
			AccessKeyID     string `envconfig:"ACCESS_KEY_ID"`
			SecretAccessKey string `envconfig:"SECRET_ACCESS_KEY"`
			BucketName      string `envconfig:"BUCKET_NAME"`
			PublicDomain    string `envconfig:"PUBLIC_DOMAIN"`
		} `envconfig:"S3"`
	} `envconfig:"EXTERNAL"`

	Kafka struct {
		Brokers         []string `envconfig:"BROKERS"`
		ConsumerGroup   string   `envconfig:"CONSUMER_GROUP"`
		HandlerAttempts int      `envconfig:"HANDLER_ATTEMPTS"  default:"3"`
		RetryWaitMillis int      `envconfig:"RETRY_WAIT_MILLIS" default:"500"`
		SASL            struct {
			Username string `envconfig:"USERNAME"`
			Password string `envconfig:"PASSWORD"`
		} `envconfig:"SASL"`
		Topics struct {
			BookingCheckedOut string `envconfig:"BOOKING_CHECKED_OUT" default:"booking.checked_out"`
		} `envconfig:"TOPICS"`
	} `envconfig:"KAFKA"`

	Mail struct {
		Host     string `envconfig:"HOST"`
		Port     string `envconfig:"PORT"`
		Username string `envconfig:"USERNAME"`
		Password string `envconfig:"PASSWORD"`
		From     string `envconfig:"FROM"`
	} `envconfig:"MAIL"`

	Worker struct {
		LockSweepCron string `envconfig:"LOCK_SWEEP_CRON" default:"@every 5m"`
	} `envconfig:"WORKER"`

	Metrics struct {
		Enable    bool   `envconfig:"ENABLE"`
		Namespace string `envconfig:"NAMESPACE" default:"hotel"`
	} `envconfig:"METRICS"`
}

var (
	conf        Config
	once        sync.Once
	initialized bool
)

// Init loads .env when present and then reads the environment. It runs once per process.
func Init() (err error) {
	once.Do(func() {
		if loadErr := godotenv.Load(".env"); loadErr != nil {
			log.Warn().Err(loadErr).Msg("no .env file, reading the process environment only")
		}

		if err = envconfig.Process("", &conf); err != nil {
			err = fmt.Errorf("processing environment: %w", err)

			return
		}

		if err = conf.Validate(); err != nil {
			return
		}

		initialized = true
	})

	return err
}

// Validate rejects settings the hotel cannot run safely without outside development.
func (c *Config) Validate() error {
	if c.Server.Env != "production" {
		return nil
	}

	switch {
	case c.JWT.AccessSecret == "" || c.JWT.RefreshSecret == "":
		return errors.New("JWT_ACCESS_SECRET and JWT_REFRESH_SECRET are required in production")
	case c.JWT.AccessSecret == c.JWT.RefreshSecret:
		return errors.New("JWT access and refresh secrets must differ")
	case c.Billing.ServiceTaxPercent < 0:
		return errors.New("BILLING_SERVICE_TAX_PERCENT cannot be negative")
	}

	return nil
}

func Get() *Config {
	if !initialized {
		if err := Init(); err != nil {
			log.Fatal().Err(err).Msg("failed to load configuration")
		}
	}

	return &conf
}
