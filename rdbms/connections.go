package rdbms

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
	"github.com/relloyd/mtgpipe/constants"
	"github.com/relloyd/mtgpipe/logger"
	"github.com/relloyd/mtgpipe/rdbms/shared"
)

// supportedDsnConnectionTypes is a map where keys are the supported connections based on values in module constants.
var supportedDsnConnectionTypes = map[string]struct{}{
	constants.ConnectionTypePostgres: {},
	constants.ConnectionTypeSqlite:   {},
}

// isSupportedConnection returns true if it can look up the supplied connection type in map of supported
// connections supportedDsnConnectionTypes.
func isSupportedConnection(connectionType string) bool {
	_, ok := supportedDsnConnectionTypes[connectionType]
	return ok
}

// OpenDbConnection opens and pings a database connection using the supplied ConnectionDetails.
func OpenDbConnection(ctx context.Context, log logger.Logger, c shared.ConnectionDetails) (shared.Connector, error) {
	u, err := c.Parse()
	if err != nil {
		return nil, err
	}
	if !isSupportedConnection(u.Driver) {
		return nil, fmt.Errorf("unsupported database type, %q", u.Driver)
	}
	log.Debug("Opening database connection: ", c) // String() redacts the password.
	conn := &shared.HpConnection{
		Dml:    &shared.DmlGeneratorTxtBatch{},
		DbType: u.Driver,
	}
	conn.DbSql, err = sql.Open(u.Driver, u.DSN)
	if err != nil {
		return nil, errors.Wrapf(err, "error opening %v connection", u.Driver)
	}
	// Test the connection.
	if err = conn.DbSql.PingContext(ctx); err != nil {
		_ = conn.DbSql.Close()
		return nil, errors.Wrapf(err, "error connecting to %v", c)
	}
	log.Debug("Successful connection to: ", c)
	return conn, nil
}

// NewConnectionOpener returns a ConnectionOpener that opens a fresh connection using c on every call.
func NewConnectionOpener(log logger.Logger, c shared.ConnectionDetails) shared.ConnectionOpener {
	return func(ctx context.Context) (shared.Connector, error) {
		return OpenDbConnection(ctx, log, c)
	}
}
