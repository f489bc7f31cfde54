package actions

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/relloyd/mtgpipe/components"
	"github.com/relloyd/mtgpipe/config"
	"github.com/relloyd/mtgpipe/fetch"
	"github.com/relloyd/mtgpipe/logger"
	"github.com/relloyd/mtgpipe/rdbms"
	"github.com/relloyd/mtgpipe/rdbms/shared"
	"github.com/relloyd/mtgpipe/stats"
	"github.com/relloyd/mtgpipe/transform"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// ImportConfig holds the run configuration plus the collaborators used by RunImport.
// Nil collaborators are built from Config.
type ImportConfig struct {
	*config.Config
	Fetcher        fetch.Fetcher
	OpenConnection shared.ConnectionOpener
	Out            io.Writer // receives the run summary; defaults to stdout.
}

// RunImport fetches the document, transforms every card and upserts the rows in batches.
// Batches committed before an error stay committed.
func RunImport(ctx context.Context, log logger.Logger, cfg *ImportConfig) (stats.Stats, error) {
	s := stats.NewImportStats(log, "import")
	if err := setupImport(log, cfg); err != nil {
		return s.RenderStats(), err
	}
	log.Debug("Import configuration: ", cfg.Config)
	// Extract.
	doc, err := cfg.Fetcher.Fetch(ctx)
	if err != nil {
		return s.RenderStats(), err
	}
	log.Info("MTGJSON version ", doc.Meta.Version, " dated ", doc.Meta.Date, " holds ", len(doc.Data), " sets and ", doc.NumCards(), " cards")
	// Load.
	upsert := components.NewTableUpsert(&components.TableUpsertConfig{
		Log:            log,
		Name:           "cardUpsert",
		OpenConnection: cfg.OpenConnection,
		SqlStatementGeneratorConfig: shared.SqlStatementGeneratorConfig{
			Log:             log,
			OutputSchema:    cfg.Schema,
			OutputTable:     cfg.Table,
			TargetKeyCols:   transform.GetKeyColumns(),
			TargetOtherCols: transform.GetOtherColumns(),
		},
	})
	log.Info("Upserting into ", shared.NewSchemaTable(cfg.Schema, cfg.Table), " in batches of ", cfg.BatchSize)
	// Transform.
	b := transform.NewBatcher(log, cfg.BatchSize, upsert.Load, s)
	total, err := transform.Transform(ctx, log, doc, b, s)
	s.Stop()
	if err != nil {
		return s.RenderStats(), err
	}
	printSummary(cfg.Out, total)
	log.Info(s.RenderStats())
	return s.RenderStats(), nil
}

func setupImport(log logger.Logger, cfg *ImportConfig) (err error) {
	if cfg.Config == nil {
		return fmt.Errorf("missing configuration in call to RunImport")
	}
	if cfg.Fetcher == nil {
		cfg.Fetcher, err = fetch.NewFetcher(log, fetch.Options{
			SourceUrl:   cfg.SourceUrl,
			HttpTimeout: cfg.HttpTimeout,
			S3Region:    cfg.S3Region,
		})
		if err != nil {
			return err
		}
	}
	if cfg.OpenConnection == nil {
		cfg.OpenConnection = rdbms.NewConnectionOpener(log, cfg.Connection)
	}
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	return nil
}

// printSummary writes the final card count with thousands separators.
func printSummary(w io.Writer, total int64) {
	p := message.NewPrinter(language.English)
	_, _ = p.Fprintf(w, "Imported/updated %d cards.\n", total)
}
