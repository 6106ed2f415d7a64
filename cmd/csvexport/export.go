package main

import (
	"context"
	"database/sql"
	"io"

	_ "github.com/go-sql-driver/mysql"
	"github.com/gravitational/trace"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/zoobzio/tabular"
	"github.com/zoobzio/tabular/metrics"
	"github.com/zoobzio/tabular/sink"
	"github.com/zoobzio/tabular/sqlrows"
	_ "modernc.org/sqlite"
)

// exportConfig is one export run.
type exportConfig struct {
	Driver      string
	DSN         string
	Query       string
	Out         string
	MetricsFile string
}

// drivers lists the database/sql drivers linked into the binary.
func drivers() []string {
	return []string{"sqlite", "postgres", "mysql"}
}

// writerOnly hides the sink's Close from the encoder.
type writerOnly struct {
	io.Writer
}

func export(ctx context.Context, cfg exportConfig) error {
	if cfg.DSN == "" {
		return trace.BadParameter("missing data source name")
	}

	db, err := sql.Open(cfg.Driver, cfg.DSN)
	if err != nil {
		return trace.Wrap(err)
	}
	defer db.Close()

	rows, err := db.QueryContext(ctx, cfg.Query)
	if err != nil {
		return trace.Wrap(err, "query")
	}

	out, err := sink.Open(ctx, cfg.Out)
	if err != nil {
		rows.Close()
		return trace.Wrap(err, "opening %s", cfg.Out)
	}

	registry := prometheus.NewRegistry()
	collector := metrics.NewCollector(metrics.Config{Namespace: "csvexport"}, registry)

	// The encoder must not close out: a failed export aborts it instead.
	if err := sqlrows.Encode(ctx, writerOnly{out}, rows, tabular.WithObserver(collector)); err != nil {
		return trace.NewAggregate(trace.Wrap(err, "exporting to %s", out.Key()), out.Abort(err))
	}
	if err := out.Close(); err != nil {
		return trace.Wrap(err, "closing %s", out.Key())
	}

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, registry); err != nil {
			return trace.Wrap(err, "writing metrics")
		}
	}
	return nil
}
