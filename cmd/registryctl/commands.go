package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"profiling-server/cmd/config"
	"profiling-server/internal/infra/sql"
	"profiling-server/internal/logger"

	"github.com/spf13/cobra"
)

type globalOptions struct {
	server   string
	token    string
	logLevel string
	timeout  time.Duration
}

func newRootCommand() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:           "registryctl",
		Short:         "Administer a profiling server",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.SetDefault(logger.NewLogger(opts.logLevel))
		},
	}

	root.PersistentFlags().StringVar(&opts.server, "server", envOr("PROFILING_SERVER_URL", "http://localhost:3000"), "profiling server base url")
	root.PersistentFlags().StringVar(&opts.token, "token", os.Getenv("PROFILING_SERVER_TOKEN"), "session token")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "debug, info, warn or error")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 30*time.Second, "request timeout")

	root.AddCommand(
		newLookupsCommand(opts),
		newExportCommand(opts),
		newFeedCommand(opts),
		newMigrateCommand(),
	)
	return root
}

func (o *globalOptions) client() *Client {
	return NewClient(o.server, o.token, o.timeout)
}

func newLookupsCommand(opts *globalOptions) *cobra.Command {
	var query string

	cmd := &cobra.Command{
		Use:   "lookups <category>",
		Short: "Search a reference list",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := opts.client().Lookup(cmd.Context(), args[0], query)
			if err != nil {
				return err
			}
			return printLookups(cmd.OutOrStdout(), items)
		},
	}
	cmd.Flags().StringVarP(&query, "query", "q", "", "filter by code or label")
	return cmd
}

func printLookups(out io.Writer, items []LookupItem) error {
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "CODE\tLABEL")
	for _, item := range items {
		fmt.Fprintf(w, "%s\t%s\n", item.Code, item.Label)
	}
	return w.Flush()
}

func newExportCommand(opts *globalOptions) *cobra.Command {
	var (
		purok  string
		output string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Download the household masterlist workbook",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.client().ExportHouseholds(cmd.Context(), purok, output); err != nil {
				return err
			}
			logger.Info("masterlist exported", "path", output, "purok", purok)
			return nil
		},
	}
	cmd.Flags().StringVar(&purok, "purok", "", "only households in this purok")
	cmd.Flags().StringVarP(&output, "output", "o", "masterlist.xlsx", "destination file")
	return cmd
}

func newFeedCommand(opts *globalOptions) *cobra.Command {
	var entities []string

	cmd := &cobra.Command{
		Use:   "feed",
		Short: "Print record changes as they happen",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			return opts.client().TailRecords(ctx, entities, func(change RecordChanged) {
				fmt.Fprintf(out, "%s %-8s %-18s %s\n",
					change.OccurredAt.Format(time.RFC3339), change.Action, change.Entity, change.ID)
			})
		},
	}
	cmd.Flags().StringSliceVarP(&entities, "entity", "e", nil, "entities to follow, all when empty")
	return cmd
}

func newMigrateCommand() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig()
			if cfg.Database.Engine != "postgres" {
				return fmt.Errorf("migrations need the postgres engine, configured %q", cfg.Database.Engine)
			}
			if path == "" {
				path = cfg.Database.MigrationsPath
			}

			db := sql.NewPosgreDatabase(cfg.Database.URL)
			if err := db.Open(); err != nil {
				return err
			}
			defer db.Close()

			if err := db.Up(path); err != nil {
				return err
			}
			logger.Info("migrations applied", "path", path)
			return nil
		},
	}
	cmd.Flags().StringVar(&path, "path", "", "migrations directory, defaults to the configured one")
	return cmd
}

func envOr(name, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(name)); value != "" {
		return value
	}
	return fallback
}
