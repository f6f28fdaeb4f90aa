// Command quotectl plans events and prices quotation files from the shell.
//
// Usage:
//
//	quotectl recommend --event wedding --guests 300 --venue "Function Hall" --target 500000
//	quotectl tips --date 2026-12-12
//	quotectl multiplier --city Vijayawada
//	quotectl catalog --category decoration --city Hyderabad
//	quotectl totals --file a.json --file b.json --city Guntur
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/jsamuelsen/event-quote-service/internal/app"
	"github.com/jsamuelsen/event-quote-service/internal/catalog"
	"github.com/jsamuelsen/event-quote-service/internal/platform/logging"
	"github.com/jsamuelsen/event-quote-service/internal/recommend"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	_ = godotenv.Load()

	if err := newApp(os.Stdout, os.Stderr, time.Now).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// env holds what every command shares, built once in Before.
type env struct {
	out     io.Writer
	format  string
	now     func() time.Time
	logger  *slog.Logger
	catalog *catalog.Catalog
	planner *app.PlannerService
}

func newApp(out, errOut io.Writer, clock func() time.Time) *cli.App {
	e := &env{out: out, now: clock}

	return &cli.App{
		Name:      "quotectl",
		Usage:     "Event service recommendations and quotation pricing",
		Version:   fmt.Sprintf("%s (commit: %s)", version, commit),
		Writer:    out,
		ErrWriter: errOut,

		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   formatTable,
				Usage:   "Output format (table, json)",
				EnvVars: []string{"QUOTECTL_FORMAT"},
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"QUOTECTL_LOG_LEVEL"},
			},
		},

		Before: func(c *cli.Context) error {
			format := c.String("format")
			if format != formatTable && format != formatJSON {
				return fmt.Errorf("unknown format %q (want table or json)", format)
			}

			e.format = format
			e.logger = logging.NewWithWriter(&logging.Config{
				Level:   c.String("log-level"),
				Format:  "text",
				Service: "quotectl",
				Version: version,
			}, errOut)
			e.catalog = catalog.New()
			e.planner = app.NewPlannerService(app.PlannerServiceConfig{
				Engine: recommend.NewEngine(recommend.EngineConfig{Catalog: e.catalog, Logger: e.logger}),
				Clock:  e.now,
				Logger: e.logger,
			})

			return nil
		},

		Commands: []*cli.Command{
			recommendCommand(e),
			tipsCommand(e),
			multiplierCommand(e),
			catalogCommand(e),
			totalsCommand(e),
		},
	}
}
