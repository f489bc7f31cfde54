package constants

import "time"

const (
	ServiceName              = "mtgpipe"
	EnvVarPrefix             = "MTGPIPE" // prefix for environment variables that are not inherited from the original job
	DefaultSourceURL         = "https://mtgjson.com/api/v5/AllPrintings.json.zip"
	DefaultBatchSize         = 2000
	DefaultHttpTimeout       = 600 * time.Second
	DefaultPgHost            = "localhost"
	DefaultPgPort            = 5432
	DefaultPgDatabase        = "mtg"
	DefaultPgUser            = "mtg"
	DefaultPgPassword        = "mtgpass"
	DefaultOutputSchema      = "public"
	DefaultOutputTable       = "cards"
	SqliteMainSchema         = "main"
	DefaultS3Region          = "us-east-1"
	DefaultLogLevel          = "info"
	ConfigDir                = ".mtgpipe"
	ConfigFileName           = "config.yaml"
	ReleaseDateLayout        = "2006-01-02"
	ArchiveDocumentExt       = ".json"
	PostgresMaxBindVariables = 65535
	ConnectionTypePostgres   = "postgres"
	ConnectionTypeSqlite     = "sqlite3"
	SourceSchemeHttp         = "http"
	SourceSchemeHttps        = "https"
	SourceSchemeS3           = "s3"
	SourceSchemeFile         = "file"
	EmojiBang                = "\U0001F4A5"
	EmojiTick                = "\U00002705"
	DefaultPgSslMode         = "disable"
	NumCardColumns           = 18
)

// Environment variables understood by the import job.
// The unprefixed names are kept for compatibility with existing deployments.
const (
	EnvVarSourceURL   = "MTGJSON_URL"
	EnvVarBatchSize   = "BATCH_SIZE"
	EnvVarPgHost      = "PGHOST"
	EnvVarPgPort      = "PGPORT"
	EnvVarPgDatabase  = "PGDATABASE"
	EnvVarPgUser      = "PGUSER"
	EnvVarPgPassword  = "PGPASSWORD"
	EnvVarPgSslMode   = "PGSSLMODE"
	EnvVarDsn         = EnvVarPrefix + "_DSN"
	EnvVarSchema      = EnvVarPrefix + "_SCHEMA"
	EnvVarTable       = EnvVarPrefix + "_TABLE"
	EnvVarHttpTimeout = EnvVarPrefix + "_HTTP_TIMEOUT"
	EnvVarS3Region    = EnvVarPrefix + "_S3_REGION"
	EnvVarLogLevel    = EnvVarPrefix + "_LOG_LEVEL"
	EnvVarConfigFile  = EnvVarPrefix + "_CONFIG_FILE"
	EnvVarLambdaMode  = EnvVarPrefix + "_LAMBDA_MODE"
)
