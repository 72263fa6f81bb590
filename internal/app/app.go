package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	icommon "github.com/goran-ethernal/ReputationIndexor/internal/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/db"
	"github.com/goran-ethernal/ReputationIndexor/internal/jobs"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/internal/metrics"
	"github.com/goran-ethernal/ReputationIndexor/internal/migrations"
	"github.com/goran-ethernal/ReputationIndexor/internal/poller"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor/attestation"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor/discussion"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor/market"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor/review"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor/vote"
	"github.com/goran-ethernal/ReputationIndexor/internal/processor/vouch"
	redisqueue "github.com/goran-ethernal/ReputationIndexor/internal/queue/redis"
	sqlitequeue "github.com/goran-ethernal/ReputationIndexor/internal/queue/sqlite"
	"github.com/goran-ethernal/ReputationIndexor/internal/rpc"
	"github.com/goran-ethernal/ReputationIndexor/internal/scheduler"
	"github.com/goran-ethernal/ReputationIndexor/internal/score"
	"github.com/goran-ethernal/ReputationIndexor/internal/store"
	"github.com/goran-ethernal/ReputationIndexor/internal/sweep"
	itypes "github.com/goran-ethernal/ReputationIndexor/internal/types"
	"github.com/goran-ethernal/ReputationIndexor/pkg/api"
	"github.com/goran-ethernal/ReputationIndexor/pkg/config"
	"github.com/goran-ethernal/ReputationIndexor/pkg/queue"
	pkgrpc "github.com/goran-ethernal/ReputationIndexor/pkg/rpc"
	"golang.org/x/sync/errgroup"
)

const metricsStopTimeout = 5 * time.Second

// Factory builds the processor of one contract deployed at address.
type Factory func(address common.Address, deps processor.Deps) processor.EventProcessor

// Factories maps every supported contract to its processor constructor.
var Factories = map[itypes.Contract]Factory{
	itypes.ContractAttestation: attestation.New,
	itypes.ContractReview:      review.New,
	itypes.ContractVouch:       vouch.New,
	itypes.ContractVote:        vote.New,
	itypes.ContractDiscussion:  discussion.New,
	itypes.ContractMarket:      market.New,
}

// App wires the components of one worker process.
type App struct {
	cfg *config.Config
	log *logger.Logger

	db          *sql.DB
	client      pkgrpc.ChainClient
	broker      queue.Broker
	maintenance db.Maintenance

	events   *store.RawEventStore
	registry *processor.Registry
	service  *processor.Service
	poller   *poller.Poller
	sweeper  *sweep.Sweeper
	jobs     *jobs.Producer
}

// New opens the database, applies migrations, connects to the chain provider and the broker,
// declares the queues and builds every processor. The returned App must be closed.
func New(ctx context.Context, cfg *config.Config) (_ *App, err error) {
	log := componentLogger(cfg, icommon.ComponentApp)

	if err := migrations.RunMigrations(cfg.DB); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	a := &App{cfg: cfg, log: log}
	defer func() {
		if err != nil {
			a.Close()
		}
	}()

	a.db, err = db.NewSQLiteDB(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	client, err := rpc.NewClient(ctx, cfg.Chain, componentLogger(cfg, icommon.ComponentRPC))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to chain provider: %w", err)
	}
	a.client = client

	a.broker, err = NewBroker(cfg.Queue, a.db, componentLogger(cfg, icommon.ComponentQueue))
	if err != nil {
		return nil, err
	}
	if err := queue.DeclareAll(ctx, a.broker, cfg.Queue); err != nil {
		return nil, err
	}

	a.maintenance = newMaintenance(cfg, a.db)
	if cfg.Maintenance != nil && cfg.Maintenance.VacuumOnStartup {
		if err := a.maintenance.RunMaintenance(ctx); err != nil {
			return nil, fmt.Errorf("startup maintenance failed: %w", err)
		}
	}
	a.events = store.NewRawEventStore(a.db, componentLogger(cfg, icommon.ComponentRawEvents))
	cursors := store.NewCursorStore(a.db, componentLogger(cfg, icommon.ComponentCursors))

	a.registry, err = NewRegistry(cfg.Contracts, processor.Deps{
		DB:          a.db,
		Client:      a.client,
		Events:      a.events,
		Invalidator: score.NewTrigger(a.broker, componentLogger(cfg, icommon.ComponentScore)),
		Log:         componentLogger(cfg, icommon.ComponentProcessor),
	})
	if err != nil {
		return nil, err
	}

	a.service = processor.NewService(cfg.Processor, a.events, a.registry,
		componentLogger(cfg, icommon.ComponentProcessor)).
		WithOperationLock(a.maintenance.AcquireOperationLock)
	a.poller = poller.New(cfg.Poller, cfg.Contracts, a.client, a.events, cursors,
		componentLogger(cfg, icommon.ComponentPoller)).
		WithOperationLock(a.maintenance.AcquireOperationLock)
	a.sweeper = sweep.New(cfg.Sweep, a.registry.Contracts(), a.events, a.broker,
		componentLogger(cfg, icommon.ComponentSweep))
	a.jobs = jobs.NewProducer(a.broker, cfg.Jobs, componentLogger(cfg, icommon.ComponentJobs))

	log.Infof("indexing %d contract(s) with the %s queue driver", len(cfg.Contracts), cfg.Queue.Driver)

	return a, nil
}

// NewBroker creates the broker selected by cfg.Driver.
func NewBroker(cfg config.QueueConfig, sqlDB *sql.DB, log *logger.Logger) (queue.Broker, error) {
	switch cfg.Driver {
	case config.QueueDriverSQLite:
		return sqlitequeue.NewBroker(sqlDB, cfg, log), nil
	case config.QueueDriverRedis:
		broker, err := redisqueue.NewBroker(cfg, log)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to redis broker: %w", err)
		}
		return broker, nil
	default:
		return nil, fmt.Errorf("unknown queue driver '%s'", cfg.Driver)
	}
}

// NewRegistry registers the processor of every configured contract.
func NewRegistry(contracts []config.ContractConfig, deps processor.Deps) (*processor.Registry, error) {
	registry := processor.NewRegistry()

	for _, c := range contracts {
		contract, err := itypes.ParseContract(c.Name)
		if err != nil {
			return nil, err
		}

		factory, ok := Factories[contract]
		if !ok {
			return nil, fmt.Errorf("no processor for contract '%s'", contract)
		}

		if err := registry.Register(factory(common.HexToAddress(c.Address), deps)); err != nil {
			return nil, err
		}
	}

	return registry, nil
}

func newMaintenance(cfg *config.Config, sqlDB *sql.DB) db.Maintenance {
	if cfg.Maintenance == nil {
		return db.NoOpMaintenance{}
	}
	return db.NewMaintenanceCoordinator(cfg.DB.Path, sqlDB, *cfg.Maintenance,
		componentLogger(cfg, icommon.ComponentMaintenance))
}

func componentLogger(cfg *config.Config, component string) *logger.Logger {
	return logger.NewComponentLoggerFromConfig(component, cfg.Logging)
}

func (a *App) Service() *processor.Service { return a.service }

func (a *App) Poller() *poller.Poller { return a.poller }

func (a *App) Sweeper() *sweep.Sweeper { return a.sweeper }

func (a *App) Jobs() *jobs.Producer { return a.jobs }

func (a *App) Broker() queue.Broker { return a.broker }

// Run starts every loop of the worker and blocks until ctx is cancelled or one loop fails.
// In-flight handlers finish before Run returns.
func (a *App) Run(ctx context.Context) error {
	pollScheduler, err := scheduler.NewPollScheduler(a.cfg.Chain, a.cfg.Poller, a.client, a.poller, a.sweeper,
		componentLogger(a.cfg, icommon.ComponentScheduler))
	if err != nil {
		return err
	}

	engine := score.NewEngine(a.cfg.Score, componentLogger(a.cfg, icommon.ComponentScore))
	loops := map[string]func(ctx context.Context) error{
		"event consumer": processor.NewConsumer(a.broker, a.service, a.events,
			componentLogger(a.cfg, icommon.ComponentProcessor)).Run,
		"score consumer": score.NewConsumer(a.broker, engine,
			componentLogger(a.cfg, icommon.ComponentScore)).Run,
		"job consumer": jobs.NewConsumer(a.broker, a.maintenance, a.sweeper,
			componentLogger(a.cfg, icommon.ComponentJobs)).Run,
		"job producer":   a.jobs.Run,
		"poll scheduler": pollScheduler.Run,
	}

	if a.cfg.Metrics != nil && a.cfg.Metrics.Enabled {
		server := metrics.NewServer(a.cfg.Metrics, componentLogger(a.cfg, icommon.ComponentApp)).
			WithQueueDepth(a.broker.Depth, queue.Names...)
		loops["metrics server"] = func(ctx context.Context) error {
			if err := server.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()

			stopCtx, cancel := context.WithTimeout(context.Background(), metricsStopTimeout)
			defer cancel()
			return server.Stop(stopCtx)
		}
	}

	if a.cfg.API != nil && a.cfg.API.Enabled {
		loops["api server"] = api.NewServer(a.cfg.API, a.events, a.service, a.broker,
			componentLogger(a.cfg, icommon.ComponentAPI)).Start
	}

	g, gCtx := errgroup.WithContext(ctx)
	for name, run := range loops {
		g.Go(func() error {
			if err := run(gCtx); err != nil {
				metrics.ComponentHealthSet(name, false)
				return fmt.Errorf("%s: %w", name, err)
			}
			a.log.Debugf("%s stopped", name)
			return nil
		})
	}

	a.log.Infof("started %d loops", len(loops))
	err = g.Wait()
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close releases the broker, the chain provider and the database.
func (a *App) Close() {
	if a.broker != nil {
		if err := a.broker.Close(); err != nil {
			a.log.Warnf("failed to close broker: %v", err)
		}
	}
	if a.client != nil {
		a.client.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Warnf("failed to close database: %v", err)
		}
	}
}
