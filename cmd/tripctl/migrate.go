package main

import (
	"database/sql"
	"fmt"
	"text/tabwriter"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/travelplan-backend/internal/config"
	"github.com/heartmarshall/travelplan-backend/migrations"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply or inspect database migrations",
}

var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withProvider(cmd, func(p *goose.Provider) error {
			results, err := p.Up(cmd.Context())
			if err != nil {
				return fmt.Errorf("goose up: %w", err)
			}
			if len(results) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no pending migrations")
				return nil
			}
			for _, r := range results {
				fmt.Fprintf(cmd.OutOrStdout(), "applied %05d %s (%s)\n",
					r.Source.Version, r.Source.Path, r.Duration.Round(time.Millisecond))
			}
			return nil
		})
	},
}

var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the state of every migration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return withProvider(cmd, func(p *goose.Provider) error {
			statuses, err := p.Status(cmd.Context())
			if err != nil {
				return fmt.Errorf("goose status: %w", err)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "VERSION\tSTATE\tAPPLIED AT\tSOURCE")
			for _, s := range statuses {
				applied := "-"
				if !s.AppliedAt.IsZero() {
					applied = s.AppliedAt.Format(time.RFC3339)
				}
				fmt.Fprintf(tw, "%05d\t%s\t%s\t%s\n", s.Source.Version, s.State, applied, s.Source.Path)
			}
			return tw.Flush()
		})
	},
}

func init() {
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

// withProvider opens database/sql on the configured DSN, since goose does
// not work on a pgx pool.
func withProvider(cmd *cobra.Command, fn func(*goose.Provider) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(cmd.Context()); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	p, err := migrations.NewProvider(db)
	if err != nil {
		return err
	}
	return fn(p)
}
