// Package config builds the run configuration for an import.
// Values are layered: built-in defaults, then an optional YAML file, then environment variables,
// then command line overrides.
package config

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/relloyd/mtgpipe/constants"
	"github.com/relloyd/mtgpipe/helper"
	"github.com/relloyd/mtgpipe/rdbms/shared"
	"github.com/sirupsen/logrus"
)

// Config holds everything an import run needs.
type Config struct {
	SourceUrl   string                   `yaml:"sourceUrl" mapstructure:"sourceUrl" errorTxt:"source URL" mandatory:"yes"`
	BatchSize   int                      `yaml:"batchSize" mapstructure:"batchSize" errorTxt:"batch size" mandatory:"yes"`
	HttpTimeout time.Duration            `yaml:"httpTimeout" mapstructure:"httpTimeout" errorTxt:"HTTP timeout" mandatory:"yes"`
	S3Region    string                   `yaml:"s3Region" mapstructure:"s3Region"`
	Connection  shared.ConnectionDetails `yaml:"connection" mapstructure:"connection"`
	Schema      string                   `yaml:"schema" mapstructure:"schema"`
	Table       string                   `yaml:"table" mapstructure:"table" errorTxt:"output table" mandatory:"yes"`
	LogLevel    string                   `yaml:"logLevel" mapstructure:"logLevel" errorTxt:"log level" mandatory:"yes"`
	LambdaMode  bool                     `yaml:"lambdaMode" mapstructure:"lambdaMode"`
	ConfigFile  string                   `yaml:"-" mapstructure:"-"` // the file that was loaded, if any.
}

// Overrides are values supplied on the command line. Empty values are ignored.
type Overrides struct {
	ConfigFile string
	LogLevel   string
}

// Defaults returns a Config populated with the built-in defaults.
func Defaults() *Config {
	return &Config{
		SourceUrl:   constants.DefaultSourceURL,
		BatchSize:   constants.DefaultBatchSize,
		HttpTimeout: constants.DefaultHttpTimeout,
		S3Region:    constants.DefaultS3Region,
		Connection: shared.ConnectionDetails{
			Host:     constants.DefaultPgHost,
			Port:     constants.DefaultPgPort,
			DbName:   constants.DefaultPgDatabase,
			User:     constants.DefaultPgUser,
			Password: constants.DefaultPgPassword,
			SslMode:  constants.DefaultPgSslMode,
		},
		Schema:   constants.DefaultOutputSchema,
		Table:    constants.DefaultOutputTable,
		LogLevel: constants.DefaultLogLevel,
	}
}

// Load builds and validates a Config.
func Load(o Overrides) (*Config, error) {
	cfg := Defaults()
	path, mustExist, err := getConfigFilePath(o.ConfigFile)
	if err != nil {
		return nil, err
	}
	if err = readConfigFile(path, mustExist, cfg); err != nil {
		return nil, err
	}
	if err = applyEnv(cfg); err != nil {
		return nil, err
	}
	if o.LogLevel != "" {
		cfg.LogLevel = o.LogLevel
	}
	cfg.splitQualifiedTable()
	cfg.adjustSchemaForTarget()
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// applyEnv overwrites cfg with any environment variables that are set.
func applyEnv(cfg *Config) error {
	cfg.SourceUrl = helper.ReadValueFromEnvWithDefault(constants.EnvVarSourceURL, cfg.SourceUrl)
	cfg.S3Region = helper.ReadValueFromEnvWithDefault(constants.EnvVarS3Region, cfg.S3Region)
	cfg.Connection.Host = helper.ReadValueFromEnvWithDefault(constants.EnvVarPgHost, cfg.Connection.Host)
	cfg.Connection.DbName = helper.ReadValueFromEnvWithDefault(constants.EnvVarPgDatabase, cfg.Connection.DbName)
	cfg.Connection.User = helper.ReadValueFromEnvWithDefault(constants.EnvVarPgUser, cfg.Connection.User)
	cfg.Connection.Password = helper.ReadValueFromEnvWithDefault(constants.EnvVarPgPassword, cfg.Connection.Password)
	cfg.Connection.SslMode = helper.ReadValueFromEnvWithDefault(constants.EnvVarPgSslMode, cfg.Connection.SslMode)
	cfg.Connection.Dsn = helper.ReadValueFromEnvWithDefault(constants.EnvVarDsn, cfg.Connection.Dsn)
	cfg.Schema = helper.ReadValueFromEnvWithDefault(constants.EnvVarSchema, cfg.Schema)
	cfg.Table = helper.ReadValueFromEnvWithDefault(constants.EnvVarTable, cfg.Table)
	cfg.LogLevel = helper.ReadValueFromEnvWithDefault(constants.EnvVarLogLevel, cfg.LogLevel)
	if _, err := helper.ReadIntFromEnv(constants.EnvVarBatchSize, &cfg.BatchSize); err != nil {
		return err
	}
	if _, err := helper.ReadIntFromEnv(constants.EnvVarPgPort, &cfg.Connection.Port); err != nil {
		return err
	}
	if _, err := helper.ReadDurationFromEnv(constants.EnvVarHttpTimeout, &cfg.HttpTimeout); err != nil {
		return err
	}
	if v, err := helper.GetEnvVar(constants.EnvVarLambdaMode, false); err == nil && v != "" {
		cfg.LambdaMode = helper.GetTrueFalseStringAsBool(v)
	}
	return nil
}

// splitQualifiedTable moves the schema out of a table name given as <schema>.<table>.
func (c *Config) splitQualifiedTable() {
	schema, table := shared.SchemaTable{SchemaTable: c.Table}.Split()
	if schema != "" {
		c.Schema, c.Table = schema, table
	}
}

// adjustSchemaForTarget swaps the default Postgres schema for the name SQLite uses for its main database.
func (c *Config) adjustSchemaForTarget() {
	scheme, err := c.Connection.GetScheme()
	if err != nil {
		return // reported by Validate.
	}
	if scheme == constants.ConnectionTypeSqlite && c.Schema == constants.DefaultOutputSchema {
		c.Schema = constants.SqliteMainSchema
	}
}

// Validate checks that mandatory values are set and that a full batch fits in one statement.
func (c *Config) Validate() error {
	if err := helper.ValidateStructIsPopulated(c); err != nil {
		return err
	}
	if c.BatchSize < 1 {
		return fmt.Errorf("batch size must be at least 1, got %v", c.BatchSize)
	}
	if c.BatchSize*constants.NumCardColumns > constants.PostgresMaxBindVariables {
		return fmt.Errorf("batch size %v is too large: %v columns per row would exceed the limit of %v bind variables per statement",
			c.BatchSize, constants.NumCardColumns, constants.PostgresMaxBindVariables)
	}
	if c.HttpTimeout <= 0 {
		return fmt.Errorf("HTTP timeout must be positive, got %v", c.HttpTimeout)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrap(err, "invalid log level")
	}
	if _, err := c.Connection.GetScheme(); err != nil {
		return errors.Wrap(err, "invalid database connection")
	}
	return nil
}

// String pretty-prints the Config with the database password redacted.
func (c *Config) String() string {
	return fmt.Sprintf("sourceUrl=%v batchSize=%v httpTimeout=%v s3Region=%v connection=%v schema=%v table=%v logLevel=%v lambdaMode=%v configFile=%q",
		c.SourceUrl, c.BatchSize, c.HttpTimeout, c.S3Region, c.Connection, c.Schema, c.Table, c.LogLevel, c.LambdaMode, c.ConfigFile)
}
