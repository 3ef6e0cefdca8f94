package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresAddress  string
	PostgresPort     string
	PostgresDB       string
	PostgresUsername string
	PostgresPassword string

	HTTPPort string
	LogLevel string

	// AMQP transport for ledger mutation events. Empty AMQPURL keeps event
	// delivery in-process. A non-empty AMQPURL forwards every event to the
	// durable AMQPQueue, so cmd/sync-worker must run against the same queue.
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string

	ChartMonths        int
	ExpiringWithinDays int
}

func ProcessEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	// In all cases the default behavior should be for the docker compose setup
	env := Config{
		PostgresAddress:    "localhost",
		PostgresPort:       "5433",
		PostgresDB:         "postgres",
		PostgresUsername:   "postgres",
		PostgresPassword:   "testpassword",
		HTTPPort:           "9446",
		LogLevel:           "info",
		AMQPExchange:       "finance",
		AMQPQueue:          "goal_sync",
		ChartMonths:        6,
		ExpiringWithinDays: 7,
	}

	overrideString(&env.PostgresAddress, "POSTGRES_ADDRESS")
	overrideString(&env.PostgresPort, "POSTGRES_PORT")
	overrideString(&env.PostgresDB, "POSTGRES_DB")
	overrideString(&env.PostgresUsername, "POSTGRES_USERNAME")
	overrideString(&env.PostgresPassword, "POSTGRES_PASSWORD")
	overrideString(&env.HTTPPort, "HTTP_PORT")
	overrideString(&env.LogLevel, "LOG_LEVEL")
	overrideString(&env.AMQPURL, "AMQP_URL")
	overrideString(&env.AMQPExchange, "AMQP_EXCHANGE")
	overrideString(&env.AMQPQueue, "AMQP_QUEUE")

	var errs []error
	if err := overrideInt(&env.ChartMonths, "CHART_MONTHS"); err != nil {
		errs = append(errs, err)
	}
	if err := overrideInt(&env.ExpiringWithinDays, "EXPIRING_WITHIN_DAYS"); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}

	return &env, nil
}

// PostgresURL is the lib/pq connection string for the configured database.
func (c *Config) PostgresURL() string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     c.PostgresAddress + ":" + c.PostgresPort,
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

// Validate checks every setting and reports all problems at once.
func (c *Config) Validate() error {
	var problems []string

	for name, port := range map[string]string{"postgres port": c.PostgresPort, "http port": c.HTTPPort} {
		if p, err := strconv.Atoi(port); err != nil {
			problems = append(problems, fmt.Sprintf("invalid %s '%s': must be a number", name, port))
		} else if p < 1 || p > 65535 {
			problems = append(problems, fmt.Sprintf("invalid %s %d: must be between 1 and 65535", name, p))
		}
	}

	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		problems = append(problems, fmt.Sprintf("invalid log level '%s'", c.LogLevel))
	}

	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			problems = append(problems, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.ChartMonths < 1 {
		problems = append(problems, fmt.Sprintf("invalid chart months %d: must be positive", c.ChartMonths))
	}
	if c.ExpiringWithinDays < 0 {
		problems = append(problems, fmt.Sprintf("invalid expiring window %d: must not be negative", c.ExpiringWithinDays))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed: %s", strings.Join(problems, "; "))
	}
	return nil
}

func overrideString(target *string, key string) {
	if value := os.Getenv(key); len(value) != 0 {
		*target = value
	}
}

func overrideInt(target *int, key string) error {
	value := os.Getenv(key)
	if len(value) == 0 {
		return nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = parsed
	return nil
}
