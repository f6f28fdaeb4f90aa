package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/urfave/cli/v2"

	"github.com/jsamuelsen/event-quote-service/internal/app"
	"github.com/jsamuelsen/event-quote-service/internal/domain"
	"github.com/jsamuelsen/event-quote-service/internal/pricing"
)

const dateLayout = "2006-01-02"

// =============================================================================
// RECOMMEND
// =============================================================================

func recommendCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "recommend",
		Usage: "Recommend services for an event",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "event",
				Aliases:  []string{"e"},
				Usage:    "Event type, e.g. wedding, haldi, \"Naming Ceremony\"",
				Required: true,
			},
			&cli.IntFlag{
				Name:    "guests",
				Aliases: []string{"g"},
				Value:   domain.DefaultGuestCount,
				Usage:   "Expected guest count",
			},
			&cli.StringFlag{Name: "budget", Usage: "Client budget in rupees"},
			&cli.StringFlag{Name: "venue", Usage: "Venue description, e.g. \"Temple\" or \"Outdoor garden\""},
			&cli.StringFlag{Name: "date", Usage: "Event date (YYYY-MM-DD), defaults to today"},
			&cli.StringFlag{Name: "target", Usage: "Trim the recommendations to this total"},
		},
		Action: func(c *cli.Context) error {
			eventType, err := domain.ParseEventType(c.String("event"))
			if err != nil {
				return err
			}

			if c.Int("guests") < 0 {
				return fmt.Errorf("guests must not be negative")
			}

			req := app.PlanRequest{
				EventType:  eventType,
				GuestCount: c.Int("guests"),
				Venue:      c.String("venue"),
			}

			if req.Budget, err = optionalDecimal(c, "budget"); err != nil {
				return err
			}

			if req.TargetBudget, err = optionalDecimal(c, "target"); err != nil {
				return err
			}

			if s := c.String("date"); s != "" {
				date, err := parseDate(s)
				if err != nil {
					return err
				}

				req.EventDate = &date
			}

			plan, err := e.planner.Plan(c.Context, req)
			if err != nil {
				return err
			}

			if e.format == formatJSON {
				return writeJSON(e.out, plan)
			}

			return writePlan(e.out, eventType, plan)
		},
	}
}

func optionalDecimal(c *cli.Context, flag string) (*decimal.Decimal, error) {
	s := c.String(flag)
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, fmt.Errorf("--%s: %q is not a number", flag, s)
	}

	if d.IsNegative() {
		return nil, fmt.Errorf("--%s must not be negative", flag)
	}

	return &d, nil
}

func parseDate(s string) (time.Time, error) {
	date, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("date %q: want YYYY-MM-DD", s)
	}

	return date, nil
}

// =============================================================================
// TIPS
// =============================================================================

type tipsOutput struct {
	Date   string        `json:"date"`
	Season domain.Season `json:"season"`
	Tips   []string      `json:"tips"`
}

func tipsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "tips",
		Usage: "Seasonal planning tips for a date",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "date", Usage: "Date (YYYY-MM-DD), defaults to today"},
		},
		Action: func(c *cli.Context) error {
			date := e.now()

			if s := c.String("date"); s != "" {
				parsed, err := parseDate(s)
				if err != nil {
					return err
				}

				date = parsed
			}

			tips, season := e.planner.Tips(date)
			out := tipsOutput{Date: date.Format(dateLayout), Season: season, Tips: tips}

			if e.format == formatJSON {
				return writeJSON(e.out, out)
			}

			fmt.Fprintf(e.out, "%s (%s season)\n", out.Date, out.Season)

			for _, tip := range out.Tips {
				fmt.Fprintf(e.out, "  - %s\n", tip)
			}

			return nil
		},
	}
}

// =============================================================================
// MULTIPLIER
// =============================================================================

type multiplierOutput struct {
	City       string          `json:"city"`
	Tier       pricing.Tier    `json:"tier"`
	Multiplier decimal.Decimal `json:"multiplier"`
}

func multiplierCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "multiplier",
		Usage: "Regional price multiplier for a city",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "city", Aliases: []string{"c"}, Usage: "City name", Required: true},
		},
		Action: func(c *cli.Context) error {
			city := c.String("city")
			out := multiplierOutput{City: city, Tier: pricing.TierOf(city), Multiplier: pricing.Multiplier(city)}

			if e.format == formatJSON {
				return writeJSON(e.out, out)
			}

			fmt.Fprintf(e.out, "%s: %s x%s\n", out.City, out.Tier, out.Multiplier.StringFixed(1))

			return nil
		},
	}
}

// =============================================================================
// CATALOG
// =============================================================================

func catalogCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "catalog",
		Usage: "List catalog services",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "category", Usage: "Only this category"},
			&cli.StringFlag{Name: "city", Usage: "Include the city's regional services"},
		},
		Action: func(c *cli.Context) error {
			services := e.catalog.ForCity(c.String("city"))

			if s := c.String("category"); s != "" {
				category, err := domain.ParseCategory(s)
				if err != nil {
					return err
				}

				filtered := services[:0]

				for _, svc := range services {
					if svc.Category == category {
						filtered = append(filtered, svc)
					}
				}

				services = filtered
			}

			if e.format == formatJSON {
				return writeJSON(e.out, services)
			}

			return writeServices(e.out, services)
		},
	}
}

// =============================================================================
// TOTALS
// =============================================================================

type totalsRow struct {
	File       string          `json:"file"`
	Client     string          `json:"client"`
	Items      int             `json:"items"`
	Multiplier decimal.Decimal `json:"multiplier,omitzero"`
	Totals     domain.Totals   `json:"totals"`
}

type totalsOutput struct {
	Quotations []totalsRow     `json:"quotations"`
	GrandTotal decimal.Decimal `json:"grandTotal"`
}

func totalsCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "totals",
		Usage: "Compute the totals of quotation JSON files",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:     "file",
				Aliases:  []string{"i"},
				Usage:    "Quotation JSON file; repeat for several",
				Required: true,
			},
			&cli.StringFlag{Name: "city", Usage: "Re-price every line for this city first"},
			&cli.IntFlag{Name: "workers", Value: 4, Usage: "Files read in parallel"},
		},
		Action: func(c *cli.Context) error {
			out, err := computeTotals(c.Context, c.StringSlice("file"), c.String("city"), c.Int("workers"))
			if err != nil {
				return err
			}

			if e.format == formatJSON {
				return writeJSON(e.out, out)
			}

			return writeTotals(e.out, out)
		},
	}
}

// computeTotals loads the files concurrently and reports them in argument
// order.
func computeTotals(ctx context.Context, paths []string, city string, workers int) (totalsOutput, error) {
	rows := make([]totalsRow, len(paths))
	index := make(map[string][]int, len(paths))

	for i, p := range paths {
		index[p] = append(index[p], i)
	}

	var mu sync.Mutex

	err := app.FanOut(ctx, workers, uniq(paths), func(_ context.Context, path string) error {
		row, err := loadTotals(path, city)
		if err != nil {
			return err
		}

		mu.Lock()
		defer mu.Unlock()

		for _, i := range index[path] {
			rows[i] = row
		}

		return nil
	})
	if err != nil {
		return totalsOutput{}, err
	}

	out := totalsOutput{Quotations: rows, GrandTotal: decimal.Zero}
	for _, r := range rows {
		out.GrandTotal = out.GrandTotal.Add(r.Totals.GrandTotal)
	}

	return out, nil
}

func loadTotals(path, city string) (totalsRow, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return totalsRow{}, fmt.Errorf("reading %s: %w", path, err)
	}

	var q domain.Quotation

	if err := json.Unmarshal(raw, &q); err != nil {
		return totalsRow{}, fmt.Errorf("decoding %s: %w", path, err)
	}

	row := totalsRow{File: path, Client: q.ClientName, Items: len(q.Items)}

	if strings.TrimSpace(city) != "" {
		row.Multiplier = pricing.Apply(&q, city)
	}

	row.Totals = q.Totals()

	return row, nil
}

func uniq(paths []string) []string {
	seen := make(map[string]bool, len(paths))
	out := make([]string, 0, len(paths))

	for _, p := range paths {
		if !seen[p] {
			seen[p] = true
			out = append(out, p)
		}
	}

	return out
}
