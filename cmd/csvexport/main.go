// Command csvexport runs one SQL query and writes the result set as CSV.
//
//	csvexport --driver sqlite --dsn ./app.db --out s3://exports/people.csv \
//	    'SELECT name, age FROM people'
//
// Flags default to the CSVEXPORT_* environment variables.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	kingpin "github.com/alecthomas/kingpin/v2"
	"github.com/caarlos0/env/v9"
	"github.com/gravitational/trace"
)

// envConfig holds the environment defaults for the command line flags.
type envConfig struct {
	Driver      string        `env:"CSVEXPORT_DRIVER" envDefault:"sqlite"`
	DSN         string        `env:"CSVEXPORT_DSN"`
	Out         string        `env:"CSVEXPORT_OUT" envDefault:"-"`
	Timeout     time.Duration `env:"CSVEXPORT_TIMEOUT" envDefault:"0s"`
	MetricsFile string        `env:"CSVEXPORT_METRICS_FILE"`
}

func run() error {
	var defaults envConfig
	if err := env.Parse(&defaults); err != nil {
		return trace.Wrap(err, "reading CSVEXPORT_* environment")
	}

	app := kingpin.New("csvexport", "Export a SQL query result as CSV")
	app.HelpFlag.Short('h')
	driver := app.Flag("driver", "Database driver").Default(defaults.Driver).Enum(drivers()...)
	dsn := app.Flag("dsn", "Data source name").Default(defaults.DSN).String()
	out := app.Flag("out", "Output ('-' for stdout, /dev/null, a file or s3://bucket/key)").Short('o').Default(defaults.Out).String()
	timeout := app.Flag("timeout", "Maximum execution time (e.g. 30s, 2m); 0 means no timeout").Default(defaults.Timeout.String()).Duration()
	metricsFile := app.Flag("metrics-file", "Write Prometheus text metrics to this file").Default(defaults.MetricsFile).String()
	query := app.Arg("query", "SQL query to export").Required().String()

	if _, err := app.Parse(os.Args[1:]); err != nil {
		return trace.Wrap(err, "failed to parse command line arguments")
	}

	ctx := context.Background()
	var cancel context.CancelFunc
	if *timeout > 0 {
		ctx, cancel = context.WithTimeout(ctx, *timeout)
	} else {
		ctx, cancel = context.WithCancel(ctx)
	}
	defer cancel()

	return export(ctx, exportConfig{
		Driver:      *driver,
		DSN:         *dsn,
		Query:       *query,
		Out:         *out,
		MetricsFile: *metricsFile,
	})
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
