package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/goran-ethernal/ReputationIndexor/internal/app"
	"github.com/goran-ethernal/ReputationIndexor/internal/config"
	"github.com/goran-ethernal/ReputationIndexor/internal/migrations"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/spf13/cobra"
)

const (
	version = "1.0.0"
	banner  = `
╔═══════════════════════════════════════════╗
║        ReputationIndexor v%s           ║
║   Reputation Contract Event Indexing      ║
╚═══════════════════════════════════════════╝
`
)

var (
	configPath string
	blockLimit uint64
	requeue    bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "indexer",
	Short: "ReputationIndexor - reputation protocol event indexer",
	Long: `ReputationIndexor polls the reputation protocol contracts, stores every log as a
raw event and applies the events to the relational model through durable job queues.
Running without a subcommand starts the worker.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runWorker,
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the worker: pollers, consumers, periodic jobs and the admin API",
	RunE:  runWorker,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := migrations.RunMigrations(cfg.DB); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		fmt.Println("Migrations applied")
		return nil
	},
}

var pollCmd = &cobra.Command{
	Use:   "poll <contract>",
	Short: "Poll one contract once and store its new logs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		contract, err := itypes.ParseContract(args[0])
		if err != nil {
			return err
		}

		return withApp(func(ctx context.Context, a *app.App) error {
			var limit *uint64
			if cmd.Flags().Changed("to-block") {
				limit = &blockLimit
			}

			result, err := a.Poller().Poll(ctx, contract, limit)
			if err != nil {
				return err
			}
			fmt.Printf("%s: blocks %d-%d, %d logs, %d new, %d duplicates, cursor %d\n",
				result.Contract, result.From, result.To, result.Logs, result.Created, result.Duplicates, result.Cursor)
			return nil
		})
	},
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Enqueue processing jobs for stored events that have none",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			run := a.Sweeper().Run
			if requeue {
				run = a.Sweeper().RequeueUnprocessed
			}

			result, err := run(ctx)
			if err != nil {
				return err
			}
			fmt.Printf("Enqueued %d event(s) in %d batch(es)\n", result.Enqueued, result.Batches)
			return nil
		})
	},
}

var processCmd = &cobra.Command{
	Use:   "process <raw-event-id>",
	Short: "Process a raw event and every unprocessed event of its contract before it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid raw event id %q", args[0])
		}

		return withApp(func(ctx context.Context, a *app.App) error {
			outcome, err := a.Service().ProcessEvent(ctx, id)
			if err != nil {
				return err
			}
			return printJSON(outcome)
		})
	},
}

var jobCmd = &cobra.Command{
	Use:   "job <type>",
	Short: "Enqueue a periodic job now (db-maintenance, requeue-unprocessed, backfill-sweep)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withApp(func(ctx context.Context, a *app.App) error {
			if err := a.Jobs().Enqueue(ctx, itypes.JobType(args[0])); err != nil {
				return err
			}
			fmt.Printf("Enqueued %s\n", args[0])
			return nil
		})
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the contracts that can be configured",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("Supported contracts:")
		for _, c := range itypes.AllContracts {
			if _, ok := app.Factories[c]; ok {
				fmt.Printf("  - %s\n", c)
			}
		}
	},
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration helpers",
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := config.Schema()
		if err != nil {
			return err
		}
		fmt.Println(string(schema))
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Load and validate the configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadFromFile(configPath)
		if err != nil {
			return err
		}
		fmt.Printf("Configuration is valid: %d contract(s), %s queue driver\n", len(cfg.Contracts), cfg.Queue.Driver)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "path to configuration file")
	pollCmd.Flags().Uint64Var(&blockLimit, "to-block", 0, "last block to poll (default: bounded by poller.max_window)")
	sweepCmd.Flags().BoolVar(&requeue, "requeue", false, "requeue stale enqueued but unprocessed events instead")

	configCmd.AddCommand(configSchemaCmd, configValidateCmd)
	rootCmd.AddCommand(runCmd, migrateCmd, pollCmd, sweepCmd, processCmd, jobCmd, listCmd, configCmd)
}

func runWorker(cmd *cobra.Command, args []string) error {
	fmt.Printf(banner, version)

	return withApp(func(ctx context.Context, a *app.App) error {
		return a.Run(ctx)
	})
}

// withApp loads the configuration, builds the App and runs fn until SIGINT or SIGTERM.
func withApp(fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := config.LoadFromFile(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	return fn(ctx, a)
}

func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
