package components

import (
	"context"

	"github.com/pkg/errors"
	"github.com/relloyd/mtgpipe/logger"
	"github.com/relloyd/mtgpipe/rdbms/shared"
)

type TableUpsertConfig struct {
	Log                                logger.Logger
	Name                               string
	OpenConnection                     shared.ConnectionOpener // opens a fresh target connection per batch.
	shared.SqlStatementGeneratorConfig                         // config for target database table
}

// TableUpsert writes batches of rows to a target table using one INSERT ... ON CONFLICT DO UPDATE
// statement per batch. Each batch uses its own connection and transaction.
type TableUpsert struct {
	log            logger.Logger
	name           string
	openConnection shared.ConnectionOpener
	shared.SqlStatementGeneratorConfig
}

func NewTableUpsert(cfg *TableUpsertConfig) *TableUpsert {
	if cfg.OpenConnection == nil {
		cfg.Log.Panic(cfg.Name, " error - missing connection opener in call to NewTableUpsert.")
	}
	if cfg.TargetKeyCols == nil || cfg.TargetKeyCols.Len() == 0 {
		cfg.Log.Panic(cfg.Name, " error - missing key columns in call to NewTableUpsert.")
	}
	if cfg.SqlStatementGeneratorConfig.Log == nil {
		cfg.SqlStatementGeneratorConfig.Log = cfg.Log
	}
	return &TableUpsert{
		log:                         cfg.Log,
		name:                        cfg.Name,
		openConnection:              cfg.OpenConnection,
		SqlStatementGeneratorConfig: cfg.SqlStatementGeneratorConfig,
	}
}

// Load upserts rows in a single transaction and returns the number of distinct rows written.
// Rows sharing a key are collapsed so numRows may be less than len(rows). An empty batch is a no-op.
// Values in each row must be ordered key columns first, then other columns.
// Any failure rolls the batch back.
func (s *TableUpsert) Load(ctx context.Context, rows [][]interface{}) (numRows int, err error) {
	if len(rows) == 0 {
		return 0, nil
	}
	conn, err := s.openConnection(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "%v - unable to open connection", s.name)
	}
	defer func() {
		if cerr := conn.Close(); cerr != nil && err == nil {
			err = errors.Wrapf(cerr, "%v - error closing connection", s.name)
		}
	}()
	cfg := s.SqlStatementGeneratorConfig // copy since the generator adjusts it.
	gen, ok := conn.GetDmlGenerator().NewUpsertGenerator(&cfg).(shared.SqlStmtTxtBatcher)
	if !ok {
		return 0, errors.Errorf("%v - SQL upsert is not supported for connection type %v", s.name, conn.GetType())
	}
	gen.InitBatch(len(rows))
	for _, r := range rows {
		if _, err = gen.AddValuesToBatch(r); err != nil {
			return 0, errors.Wrapf(err, "%v - error adding row to batch", s.name)
		}
	}
	if gen.GetRowCount() < len(rows) {
		s.log.Debug(s.name, " - collapsed ", len(rows)-gen.GetRowCount(), " rows with duplicate keys")
	}
	tx, err := conn.Begin(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "%v - unable to start new transaction", s.name)
	}
	if err = execSqlTransaction(ctx, s.log, tx, gen.GetStatement(), gen.GetValues()...); err != nil {
		rollback(s.log, tx)
		return 0, errors.Wrapf(err, "%v - error executing upsert", s.name)
	}
	if err = tx.Commit(); err != nil {
		rollback(s.log, tx)
		return 0, errors.Wrapf(err, "%v - error committing transaction", s.name)
	}
	s.log.Debug(s.name, " - upsert committed ", gen.GetRowCount(), " rows")
	return gen.GetRowCount(), nil
}

func execSqlTransaction(ctx context.Context, log logger.Logger, tx shared.Transacter, sqltext string, values ...interface{}) error {
	log.Debug("Exec trying...")
	if _, err := tx.ExecContext(ctx, sqltext, values...); err != nil {
		return err
	}
	log.Debug("Exec complete")
	return nil
}

func rollback(log logger.Logger, tx shared.Transacter) {
	if err := tx.Rollback(); err != nil {
		log.Warn("Error rolling back transaction: ", err)
	}
}
