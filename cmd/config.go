package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/jobs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Config is the service configuration read from the environment.
type Config struct {
	// Environment selects the log format: production or development.
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	HTTPPort        string        `env:"HTTP_PORT"        env-default:"8082"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s"`

	DBHost     string `env:"DB_HOST"     env-default:"localhost"`
	DBPort     string `env:"DB_PORT"     env-default:"5432"`
	DBUser     string `env:"DB_USER"     env-default:"postgres"`
	DBPassword string `env:"DB_PASSWORD" env-default:"postgres"`
	DBName     string `env:"DB_NAME"     env-default:"dispatch"`
	DBSslMode  string `env:"DB_SSLMODE"  env-default:"disable"`

	// Grid bounds for courier spawn points, order locations and movement.
	GridMinX kernel.Coordinate `env:"GRID_MIN_X" env-default:"1"`
	GridMinY kernel.Coordinate `env:"GRID_MIN_Y" env-default:"1"`
	GridMaxX kernel.Coordinate `env:"GRID_MAX_X" env-default:"10"`
	GridMaxY kernel.Coordinate `env:"GRID_MAX_Y" env-default:"10"`

	AssignmentSchedule string `env:"JOB_ASSIGNMENT_SCHEDULE" env-default:"* * * * * *"`
	MovementSchedule   string `env:"JOB_MOVEMENT_SCHEDULE"   env-default:"* * * * * *"`
}

// LoadConfig reads an optional .env file from the working directory and then
// the process environment. Variables already set win over the file.
func LoadConfig() (Config, error) {
	return LoadConfigFrom(".env")
}

// LoadConfigFrom is LoadConfig with an explicit dotenv path.
func LoadConfigFrom(dotenvPath string) (Config, error) {
	if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("could not load %s: %w", dotenvPath, err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("could not read config: %w", err)
	}

	if _, err := cfg.Bounds(); err != nil {
		return Config{}, fmt.Errorf("invalid grid: %w", err)
	}

	return cfg, nil
}

// DSN returns the postgres connection string.
func (c Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode,
	)
}

// HTTPAddr returns the listen address of the HTTP server.
func (c Config) HTTPAddr() string {
	return net.JoinHostPort("0.0.0.0", c.HTTPPort)
}

// Bounds returns the configured grid.
func (c Config) Bounds() (kernel.Bounds, error) {
	return kernel.NewBounds(c.GridMinX, c.GridMinY, c.GridMaxX, c.GridMaxY)
}

// Schedules returns the cron specs of the background jobs.
func (c Config) Schedules() jobs.Schedules {
	return jobs.Schedules{
		Assignment: c.AssignmentSchedule,
		Movement:   c.MovementSchedule,
	}
}
