package config

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"
)

// DefaultConfigFile is read when --config is not given. It may be absent.
const DefaultConfigFile = "studysync.jsonc"

// ErrHelp is returned by Load when --help was requested; usage has already
// been written.
var ErrHelp = pflag.ErrHelp

// Load resolves the configuration from defaults, the JSONC config file,
// the environment and finally the command-line flags in args.
func Load(args []string, getenv func(string) string, usage io.Writer) (Config, error) {
	cfg := Defaults()

	var (
		configPath string
		port       string
		driver     string
		dataDir    string
		dbURL      string
		logMode    string
		origins    []string
	)

	flagSet := pflag.NewFlagSet("studysync-api", pflag.ContinueOnError)
	if usage != nil {
		flagSet.SetOutput(usage)
	} else {
		flagSet.SetOutput(io.Discard)
	}
	flagSet.StringVar(&configPath, "config", DefaultConfigFile, "path to a JSONC config file")
	flagSet.StringVar(&port, "port", "", "HTTP port (env PORT)")
	flagSet.StringVar(&driver, "storage", "", "storage driver: file, sql, redis or memory (env STORAGE_DRIVER)")
	flagSet.StringVar(&dataDir, "data-dir", "", "directory for file storage (env DATA_DIR)")
	flagSet.StringVar(&dbURL, "db-url", "", "sqlite path or postgres:// DSN for sql storage (env DB_URL)")
	flagSet.StringVar(&logMode, "log-mode", "", "development or production (env LOG_MODE)")
	flagSet.StringSliceVar(&origins, "allowed-origins", nil, "CORS origins (env ALLOWED_ORIGINS)")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return cfg, ErrHelp
		}
		return cfg, fmt.Errorf("%w: %w", ErrConfigInvalid, err)
	}
	if rest := flagSet.Args(); len(rest) > 0 {
		return cfg, fmt.Errorf("%w: unexpected argument %q", ErrConfigInvalid, rest[0])
	}

	if err := cfg.LoadFile(configPath, flagSet.Changed("config")); err != nil {
		return cfg, err
	}
	cfg.ApplyEnv(getenv)

	if flagSet.Changed("port") {
		cfg.Port = port
	}
	if flagSet.Changed("storage") {
		cfg.StorageDriver = driver
	}
	if flagSet.Changed("data-dir") {
		cfg.DataDir = dataDir
	}
	if flagSet.Changed("db-url") {
		cfg.DBURL = dbURL
	}
	if flagSet.Changed("log-mode") {
		cfg.LogMode = logMode
	}
	if flagSet.Changed("allowed-origins") {
		cfg.AllowedOrigins = origins
	}

	return cfg, cfg.Validate()
}

// Validate rejects configurations the service cannot start with.
func (c Config) Validate() error {
	switch c.StorageDriver {
	case DriverFile, DriverSQL, DriverRedis, DriverMemory:
	default:
		return fmt.Errorf("%w: storage_driver must be one of file, sql, redis, memory (got %q)", ErrConfigInvalid, c.StorageDriver)
	}
	if strings.TrimSpace(c.Port) == "" {
		return fmt.Errorf("%w: port is required", ErrConfigInvalid)
	}
	if strings.TrimSpace(c.StorageKey) == "" {
		return fmt.Errorf("%w: storage_key is required", ErrConfigInvalid)
	}
	if c.StorageDriver == DriverFile && strings.TrimSpace(c.DataDir) == "" {
		return fmt.Errorf("%w: data_dir is required for file storage", ErrConfigInvalid)
	}
	return nil
}
