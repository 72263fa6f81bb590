package config

import (
	"fmt"
	"slices"
	"time"

	"github.com/ethereum/go-ethereum/common"
	icommon "github.com/goran-ethernal/ReputationIndexor/internal/common"
	"github.com/goran-ethernal/ReputationIndexor/internal/logger"
	"github.com/goran-ethernal/ReputationIndexor/internal/types"
)

const (
	QueueDriverSQLite = "sqlite"
	QueueDriverRedis  = "redis"

	// DefaultPollWindow is the block range of the first eth_getLogs request of a poll.
	DefaultPollWindow = 20_000_000
)

// Config represents the complete configuration for the ReputationIndexor.
type Config struct {
	// Chain contains the blockchain provider configuration
	Chain ChainConfig `yaml:"chain" json:"chain" toml:"chain"`

	// Contracts lists the deployed contracts to poll and process
	Contracts []ContractConfig `yaml:"contracts" json:"contracts" toml:"contracts"`

	// Poller contains the log poller settings
	Poller PollerConfig `yaml:"poller" json:"poller" toml:"poller"`

	// Processor contains the event processing settings
	Processor ProcessorConfig `yaml:"processor" json:"processor" toml:"processor"`

	// Queue contains the job queue broker settings
	Queue QueueConfig `yaml:"queue" json:"queue" toml:"queue"`

	// Sweep contains the backfill sweep settings
	Sweep SweepConfig `yaml:"sweep" json:"sweep" toml:"sweep"`

	// Jobs lists the periodic jobs and their schedule
	Jobs []PeriodicJobConfig `yaml:"jobs,omitempty" json:"jobs,omitempty" toml:"jobs,omitempty"`

	// Score contains the score engine client settings
	Score ScoreConfig `yaml:"score" json:"score" toml:"score"`

	// DB contains the database configuration
	DB DatabaseConfig `yaml:"db" json:"db" toml:"db"`

	// Maintenance contains optional database maintenance settings
	Maintenance *MaintenanceConfig `yaml:"maintenance,omitempty" json:"maintenance,omitempty" toml:"maintenance,omitempty"`

	// API contains the admin API configuration
	API *APIConfig `yaml:"api,omitempty" json:"api,omitempty" toml:"api,omitempty"`

	// Logging contains logging configuration
	Logging *LoggingConfig `yaml:"logging,omitempty" json:"logging,omitempty" toml:"logging,omitempty"`

	// Metrics contains Prometheus metrics configuration
	Metrics *MetricsConfig `yaml:"metrics,omitempty" json:"metrics,omitempty" toml:"metrics,omitempty"`
}

// ChainConfig represents the configuration of the blockchain data provider.
type ChainConfig struct {
	// RPCURL is the Ethereum RPC endpoint URL
	RPCURL string `yaml:"rpc_url" json:"rpc_url" toml:"rpc_url"`

	// Finality specifies the finality mode: "finalized", "safe", or "latest"
	Finality string `yaml:"finality" json:"finality" toml:"finality"`

	// FinalizedLag is the number of blocks behind head to consider confirmed
	// Only used when Finality is set to "latest"
	FinalizedLag uint64 `yaml:"finalized_lag" json:"finalized_lag" toml:"finalized_lag"`

	// RequestTimeout bounds every provider request
	RequestTimeout icommon.Duration `yaml:"request_timeout" json:"request_timeout" toml:"request_timeout"`

	// RequestsPerSecond paces provider requests (0 = unlimited)
	RequestsPerSecond int `yaml:"requests_per_second" json:"requests_per_second" toml:"requests_per_second"`

	// Retry contains RPC retry configuration with exponential backoff
	Retry *RetryConfig `yaml:"retry,omitempty" json:"retry,omitempty" toml:"retry,omitempty"`
}

// ApplyDefaults sets default values for optional chain configuration fields.
func (c *ChainConfig) ApplyDefaults() {
	if c.Finality == "" {
		c.Finality = types.FinalityFinalized.String()
	}
	if c.RequestTimeout.Duration == 0 {
		c.RequestTimeout = icommon.NewDuration(30 * time.Second) //nolint:mnd
	}
	if c.Retry != nil {
		c.Retry.ApplyDefaults()
	}
}

// Validate checks if the chain configuration is valid.
func (c *ChainConfig) Validate() error {
	if c.RPCURL == "" {
		return fmt.Errorf("chain.rpc_url is required")
	}
	if _, err := types.ParseBlockFinality(c.Finality); err != nil {
		return fmt.Errorf("chain.finality: %w", err)
	}
	if c.RequestsPerSecond < 0 {
		return fmt.Errorf("chain.requests_per_second must not be negative")
	}
	return nil
}

// RetryConfig represents RPC retry configuration with exponential backoff.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including initial request)
	MaxAttempts int `yaml:"max_attempts" json:"max_attempts" toml:"max_attempts"`

	// InitialBackoff is the initial backoff duration before first retry
	InitialBackoff icommon.Duration `yaml:"initial_backoff" json:"initial_backoff" toml:"initial_backoff"`

	// MaxBackoff is the maximum backoff duration
	MaxBackoff icommon.Duration `yaml:"max_backoff" json:"max_backoff" toml:"max_backoff"`

	// BackoffMultiplier is the multiplier for exponential backoff
	BackoffMultiplier float64 `yaml:"backoff_multiplier" json:"backoff_multiplier" toml:"backoff_multiplier"`
}

// ApplyDefaults sets default values for retry configuration.
func (r *RetryConfig) ApplyDefaults() {
	if r.MaxAttempts == 0 {
		r.MaxAttempts = 5
	}
	if r.InitialBackoff.Duration == 0 {
		r.InitialBackoff = icommon.NewDuration(1 * time.Second)
	}
	if r.MaxBackoff.Duration == 0 {
		r.MaxBackoff = icommon.NewDuration(30 * time.Second) //nolint:mnd
	}
	if r.BackoffMultiplier == 0 {
		r.BackoffMultiplier = 2.0
	}
}

// ContractConfig represents one deployed contract.
type ContractConfig struct {
	// Name is the contract type: attestation, review, vouch, vote, discussion or market
	Name string `yaml:"name" json:"name" toml:"name"`

	// Address is the contract address to poll
	Address string `yaml:"address" json:"address" toml:"address"`

	// StartBlock is the deployment block, polling never starts below it
	StartBlock uint64 `yaml:"start_block" json:"start_block" toml:"start_block"`
}

// Contract returns the parsed contract type.
func (c ContractConfig) Contract() types.Contract {
	return types.Contract(icommon.ToLowerWithTrim(c.Name))
}

// PollerConfig configures the log poller.
type PollerConfig struct {
	// Interval is how often every contract is polled
	Interval icommon.Duration `yaml:"interval" json:"interval" toml:"interval"`

	// InitialWindow is the block range of the first request of a poll
	InitialWindow uint64 `yaml:"initial_window" json:"initial_window" toml:"initial_window"`

	// MaxWindow caps the adaptive window and bounds a single poll without a block limit
	MaxWindow uint64 `yaml:"max_window" json:"max_window" toml:"max_window"`

	// RateLimitBackoff is the pause after the provider rate limited a request
	RateLimitBackoff icommon.Duration `yaml:"rate_limit_backoff" json:"rate_limit_backoff" toml:"rate_limit_backoff"`

	// MaxRateLimitRetries is how many rate limited requests a poll tolerates before stopping
	MaxRateLimitRetries int `yaml:"max_rate_limit_retries" json:"max_rate_limit_retries" toml:"max_rate_limit_retries"`
}

// ApplyDefaults sets default values for optional poller configuration fields.
func (p *PollerConfig) ApplyDefaults() {
	if p.Interval.Duration == 0 {
		p.Interval = icommon.NewDuration(time.Minute)
	}
	if p.InitialWindow == 0 {
		p.InitialWindow = DefaultPollWindow
	}
	if p.MaxWindow == 0 {
		p.MaxWindow = DefaultPollWindow
	}
	if p.RateLimitBackoff.Duration == 0 {
		p.RateLimitBackoff = icommon.NewDuration(2 * time.Second) //nolint:mnd
	}
	if p.MaxRateLimitRetries == 0 {
		p.MaxRateLimitRetries = 3
	}
}

// Validate checks if the poller configuration is valid.
func (p *PollerConfig) Validate() error {
	if p.InitialWindow > p.MaxWindow {
		return fmt.Errorf("poller.initial_window must not exceed poller.max_window")
	}
	return nil
}

// ProcessorConfig configures event processing.
type ProcessorConfig struct {
	// BatchSize is the maximum number of raw events prepared and submitted together
	BatchSize int `yaml:"batch_size" json:"batch_size" toml:"batch_size"`

	// RateLimitBackoff is the sleep before a rate limited job is handed back to the broker
	RateLimitBackoff icommon.Duration `yaml:"rate_limit_backoff" json:"rate_limit_backoff" toml:"rate_limit_backoff"`
}

// ApplyDefaults sets default values for optional processor configuration fields.
func (p *ProcessorConfig) ApplyDefaults() {
	if p.BatchSize == 0 {
		p.BatchSize = 100
	}
	if p.RateLimitBackoff.Duration == 0 {
		p.RateLimitBackoff = icommon.NewDuration(1500 * time.Millisecond) //nolint:mnd
	}
}

// QueueConfig configures the job queue broker.
type QueueConfig struct {
	// Driver selects the broker: "sqlite" (default) or "redis"
	Driver string `yaml:"driver" json:"driver" toml:"driver"`

	// Redis contains the connection settings for the redis driver
	Redis *RedisConfig `yaml:"redis,omitempty" json:"redis,omitempty" toml:"redis,omitempty"`

	// PollInterval is how often an idle sqlite consumer looks for new messages
	PollInterval icommon.Duration `yaml:"poll_interval" json:"poll_interval" toml:"poll_interval"`

	// LeaseTTL is how long a claimed message (and a single active consumer lease) stays owned
	LeaseTTL icommon.Duration `yaml:"lease_ttl" json:"lease_ttl" toml:"lease_ttl"`

	// RetryDelay is the delay before a negatively acknowledged message is redelivered
	RetryDelay icommon.Duration `yaml:"retry_delay" json:"retry_delay" toml:"retry_delay"`

	// EventDeliveryLimit is the number of delivery attempts of an event processing job
	EventDeliveryLimit int `yaml:"event_delivery_limit" json:"event_delivery_limit" toml:"event_delivery_limit"`

	// PeriodicDeliveryLimit is the number of delivery attempts of a periodic job
	PeriodicDeliveryLimit int `yaml:"periodic_delivery_limit" json:"periodic_delivery_limit" toml:"periodic_delivery_limit"`

	// ShutdownTimeout bounds how long in-flight handlers may run after shutdown was requested
	ShutdownTimeout icommon.Duration `yaml:"shutdown_timeout" json:"shutdown_timeout" toml:"shutdown_timeout"`
}

// ApplyDefaults sets default values for optional queue configuration fields.
func (q *QueueConfig) ApplyDefaults() {
	if q.Driver == "" {
		q.Driver = QueueDriverSQLite
	}
	if q.PollInterval.Duration == 0 {
		q.PollInterval = icommon.NewDuration(500 * time.Millisecond) //nolint:mnd
	}
	if q.LeaseTTL.Duration == 0 {
		q.LeaseTTL = icommon.NewDuration(30 * time.Second) //nolint:mnd
	}
	if q.RetryDelay.Duration == 0 {
		q.RetryDelay = icommon.NewDuration(time.Second)
	}
	if q.EventDeliveryLimit == 0 {
		q.EventDeliveryLimit = 5
	}
	if q.PeriodicDeliveryLimit == 0 {
		q.PeriodicDeliveryLimit = 3
	}
	if q.ShutdownTimeout.Duration == 0 {
		q.ShutdownTimeout = icommon.NewDuration(30 * time.Second) //nolint:mnd
	}
	if q.Redis != nil && q.Redis.Addr == "" {
		q.Redis.Addr = "localhost:6379"
	}
}

// Validate checks if the queue configuration is valid.
func (q *QueueConfig) Validate() error {
	switch q.Driver {
	case QueueDriverSQLite:
	case QueueDriverRedis:
		if q.Redis == nil {
			return fmt.Errorf("queue.redis is required when queue.driver is 'redis'")
		}
	default:
		return fmt.Errorf("queue.driver must be one of: 'sqlite', 'redis'")
	}
	if q.EventDeliveryLimit < 0 || q.PeriodicDeliveryLimit < 0 {
		return fmt.Errorf("queue delivery limits must not be negative")
	}
	return nil
}

// RedisConfig contains the connection settings of the redis queue driver.
type RedisConfig struct {
	Addr     string `yaml:"addr" json:"addr" toml:"addr"`
	Password string `yaml:"password" json:"password" toml:"password"`
	DB       int    `yaml:"db" json:"db" toml:"db"`
}

// SweepConfig configures the backfill sweep and the stale event requeue.
type SweepConfig struct {
	// BatchSize is the number of raw events enqueued per sweep query
	BatchSize int `yaml:"batch_size" json:"batch_size" toml:"batch_size"`

	// StaleAfter is how old an enqueued but unprocessed event must be before it is requeued
	StaleAfter icommon.Duration `yaml:"stale_after" json:"stale_after" toml:"stale_after"`
}

// ApplyDefaults sets default values for optional sweep configuration fields.
func (s *SweepConfig) ApplyDefaults() {
	if s.BatchSize == 0 {
		s.BatchSize = 500
	}
	if s.StaleAfter.Duration == 0 {
		s.StaleAfter = icommon.NewDuration(time.Hour)
	}
}

// PeriodicJobConfig schedules one periodic job type.
type PeriodicJobConfig struct {
	// Type is the job type: db-maintenance, requeue-unprocessed or backfill-sweep
	Type string `yaml:"type" json:"type" toml:"type"`

	// Interval is how often the job is enqueued (e.g. "1h", "24h")
	Interval icommon.Duration `yaml:"interval" json:"interval" toml:"interval"`
}

// DefaultJobs returns the schedule used when no jobs are configured.
func DefaultJobs() []PeriodicJobConfig {
	return []PeriodicJobConfig{
		{Type: string(types.JobRequeueUnprocessed), Interval: icommon.NewDuration(time.Hour)},
		{Type: string(types.JobDBMaintenance), Interval: icommon.NewDuration(24 * time.Hour)}, //nolint:mnd
	}
}

// ScoreConfig configures the score engine client.
type ScoreConfig struct {
	// EngineURL is the recompute endpoint; when empty recompute requests are only logged
	EngineURL string `yaml:"engine_url" json:"engine_url" toml:"engine_url"`

	// Timeout bounds a single recompute request
	Timeout icommon.Duration `yaml:"timeout" json:"timeout" toml:"timeout"`
}

// ApplyDefaults sets default values for optional score configuration fields.
func (s *ScoreConfig) ApplyDefaults() {
	if s.Timeout.Duration == 0 {
		s.Timeout = icommon.NewDuration(10 * time.Second) //nolint:mnd
	}
}

// DatabaseConfig represents database configuration.
type DatabaseConfig struct {
	// Path is the file path to the SQLite database
	Path string `yaml:"path" json:"path" toml:"path"`

	// JournalMode sets the SQLite journal mode (e.g., "WAL", "DELETE")
	// WAL mode is recommended for better concurrency
	JournalMode string `yaml:"journal_mode" json:"journal_mode" toml:"journal_mode"`

	// Synchronous sets the synchronization level ("FULL", "NORMAL", "OFF")
	Synchronous string `yaml:"synchronous" json:"synchronous" toml:"synchronous"`

	// BusyTimeout is the time in milliseconds to wait when the database is locked
	BusyTimeout int `yaml:"busy_timeout" json:"busy_timeout" toml:"busy_timeout"`

	// CacheSize is the size of the page cache (negative = KB, positive = pages)
	CacheSize int `yaml:"cache_size" json:"cache_size" toml:"cache_size"`

	// MaxOpenConnections is the maximum number of open database connections
	MaxOpenConnections int `yaml:"max_open_connections" json:"max_open_connections" toml:"max_open_connections"`

	// MaxIdleConnections is the maximum number of idle connections in the pool
	MaxIdleConnections int `yaml:"max_idle_connections" json:"max_idle_connections" toml:"max_idle_connections"`

	// EnableForeignKeys enables foreign key constraint enforcement
	EnableForeignKeys bool `yaml:"enable_foreign_keys" json:"enable_foreign_keys" toml:"enable_foreign_keys"`
}

// ApplyDefaults sets default values for optional database configuration fields.
func (d *DatabaseConfig) ApplyDefaults() {
	if d.JournalMode == "" {
		d.JournalMode = "WAL"
	}
	if d.Synchronous == "" {
		d.Synchronous = "NORMAL"
	}
	if d.BusyTimeout == 0 {
		d.BusyTimeout = 5000
	}
	if d.CacheSize == 0 {
		d.CacheSize = 10000
	}
	if d.MaxOpenConnections == 0 {
		d.MaxOpenConnections = 25
	}
	if d.MaxIdleConnections == 0 {
		d.MaxIdleConnections = 5
	}
}

// Validate checks if the database configuration is valid.
func (d *DatabaseConfig) Validate() error {
	if d.Path == "" {
		return fmt.Errorf("db.path is required")
	}
	if !slices.Contains([]string{"WAL", "DELETE", "TRUNCATE", "PERSIST", "MEMORY"}, d.JournalMode) {
		return fmt.Errorf("db.journal_mode must be one of: WAL, DELETE, TRUNCATE, PERSIST, MEMORY")
	}
	if !slices.Contains([]string{"FULL", "NORMAL", "OFF"}, d.Synchronous) {
		return fmt.Errorf("db.synchronous must be one of: FULL, NORMAL, OFF")
	}
	return nil
}

// MaintenanceConfig configures database maintenance behavior.
type MaintenanceConfig struct {
	// VacuumOnStartup runs maintenance immediately on startup
	VacuumOnStartup bool `yaml:"vacuum_on_startup" json:"vacuum_on_startup" toml:"vacuum_on_startup"`

	// WALCheckpointMode controls the WAL checkpoint aggressiveness
	// Options: PASSIVE, FULL, RESTART, TRUNCATE
	WALCheckpointMode string `yaml:"wal_checkpoint_mode" json:"wal_checkpoint_mode" toml:"wal_checkpoint_mode"`
}

// ApplyDefaults sets default values for optional maintenance configuration fields.
func (m *MaintenanceConfig) ApplyDefaults() {
	if m.WALCheckpointMode == "" {
		m.WALCheckpointMode = "TRUNCATE"
	}
}

// Validate checks if the maintenance configuration is valid.
func (m *MaintenanceConfig) Validate() error {
	if !slices.Contains([]string{"PASSIVE", "FULL", "RESTART", "TRUNCATE"}, m.WALCheckpointMode) {
		return fmt.Errorf("maintenance.wal_checkpoint_mode: must be one of: PASSIVE, FULL, RESTART, TRUNCATE")
	}
	return nil
}

// APIConfig configures the admin HTTP API.
type APIConfig struct {
	Enabled       bool             `yaml:"enabled" json:"enabled" toml:"enabled"`
	ListenAddress string           `yaml:"listen_address" json:"listen_address" toml:"listen_address"`
	ReadTimeout   icommon.Duration `yaml:"read_timeout" json:"read_timeout" toml:"read_timeout"`
	WriteTimeout  icommon.Duration `yaml:"write_timeout" json:"write_timeout" toml:"write_timeout"`
	IdleTimeout   icommon.Duration `yaml:"idle_timeout" json:"idle_timeout" toml:"idle_timeout"`
	CORS          CORSConfig       `yaml:"cors" json:"cors" toml:"cors"`
}

// CORSConfig configures cross origin requests to the admin API.
type CORSConfig struct {
	Enabled        bool     `yaml:"enabled" json:"enabled" toml:"enabled"`
	AllowedOrigins []string `yaml:"allowed_origins" json:"allowed_origins" toml:"allowed_origins"`
}

// ApplyDefaults sets default values for optional API configuration fields.
func (a *APIConfig) ApplyDefaults() {
	if a.ListenAddress == "" {
		a.ListenAddress = ":8080"
	}
	if a.ReadTimeout.Duration == 0 {
		a.ReadTimeout = icommon.NewDuration(15 * time.Second) //nolint:mnd
	}
	// Replays run a full processing batch, allow for slow providers
	if a.WriteTimeout.Duration == 0 {
		a.WriteTimeout = icommon.NewDuration(2 * time.Minute) //nolint:mnd
	}
	if a.IdleTimeout.Duration == 0 {
		a.IdleTimeout = icommon.NewDuration(60 * time.Second) //nolint:mnd
	}
}

// LoggingConfig configures logging behavior with per-component log levels.
type LoggingConfig struct {
	// DefaultLevel is the default log level for all components
	// Options: "debug", "info", "warn", "error"
	DefaultLevel string `yaml:"default_level" json:"default_level" toml:"default_level"`

	// Development enables development mode (stack traces, console encoder)
	Development bool `yaml:"development" json:"development" toml:"development"`

	// ComponentLevels sets log levels for specific components, see internal/common for names
	ComponentLevels map[string]string `yaml:"component_levels,omitempty" json:"component_levels,omitempty" toml:"component_levels,omitempty"` //nolint:lll
}

// ApplyDefaults sets default values for optional logging configuration fields.
func (l *LoggingConfig) ApplyDefaults() {
	if l.DefaultLevel == "" {
		l.DefaultLevel = "info"
	}
	if l.ComponentLevels == nil {
		l.ComponentLevels = make(map[string]string)
	}
}

// Validate checks if the logging configuration is valid.
func (l *LoggingConfig) Validate() error {
	if l.DefaultLevel != "" {
		if _, valid := logger.ValidLogLevels[icommon.ToLowerWithTrim(l.DefaultLevel)]; !valid {
			return fmt.Errorf("logging.default_level: must be one of: debug, info, warn, error")
		}
	}

	for component, level := range l.ComponentLevels {
		if _, validComponent := icommon.AllComponents[icommon.ToLowerWithTrim(component)]; !validComponent {
			return fmt.Errorf("logging.component_levels: unknown component '%s'", component)
		}

		if _, valid := logger.ValidLogLevels[icommon.ToLowerWithTrim(level)]; !valid {
			return fmt.Errorf("logging.component_levels[%s]: must be one of: debug, info, warn, error", component)
		}
	}

	return nil
}

// GetComponentLevel returns the log level for a specific component.
// Falls back to DefaultLevel if no component-specific level is set.
func (l *LoggingConfig) GetComponentLevel(component string) string {
	if l == nil {
		return ""
	}
	if level, ok := l.ComponentLevels[component]; ok {
		return icommon.ToLowerWithTrim(level)
	}
	return icommon.ToLowerWithTrim(l.DefaultLevel)
}

// GetDefaultLevel returns the default log level.
func (l *LoggingConfig) GetDefaultLevel() string {
	if l == nil {
		return ""
	}
	return icommon.ToLowerWithTrim(l.DefaultLevel)
}

// IsDevelopment returns whether development mode is enabled.
func (l *LoggingConfig) IsDevelopment() bool {
	return l != nil && l.Development
}

// MetricsConfig configures Prometheus metrics exposition.
type MetricsConfig struct {
	// Enabled controls whether metrics collection and HTTP endpoint are active
	Enabled bool `yaml:"enabled" json:"enabled" toml:"enabled"`

	// ListenAddress is the address to bind the metrics HTTP server to
	ListenAddress string `yaml:"listen_address" json:"listen_address" toml:"listen_address"`

	// Path is the HTTP path where metrics are exposed
	Path string `yaml:"path" json:"path" toml:"path"`
}

// ApplyDefaults sets default values for optional metrics configuration fields.
func (m *MetricsConfig) ApplyDefaults() {
	if m.ListenAddress == "" {
		m.ListenAddress = ":9090"
	}
	if m.Path == "" {
		m.Path = "/metrics"
	}
}

// Validate checks if the metrics configuration is valid.
func (m *MetricsConfig) Validate() error {
	if m.Enabled {
		if m.Path == "" || m.Path[0] != '/' {
			return fmt.Errorf("path must start with '/'")
		}
	}
	return nil
}

// ApplyDefaults sets default values for optional configuration fields.
func (c *Config) ApplyDefaults() {
	c.Chain.ApplyDefaults()
	c.Poller.ApplyDefaults()
	c.Processor.ApplyDefaults()
	c.Queue.ApplyDefaults()
	c.Sweep.ApplyDefaults()
	c.Score.ApplyDefaults()
	c.DB.ApplyDefaults()

	if len(c.Jobs) == 0 {
		c.Jobs = DefaultJobs()
	}
	if c.Maintenance == nil {
		c.Maintenance = &MaintenanceConfig{}
	}
	c.Maintenance.ApplyDefaults()
	if c.API != nil {
		c.API.ApplyDefaults()
	}
	if c.Logging != nil {
		c.Logging.ApplyDefaults()
	}
	if c.Metrics != nil {
		c.Metrics.ApplyDefaults()
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if err := c.Chain.Validate(); err != nil {
		return err
	}
	if err := c.Poller.Validate(); err != nil {
		return err
	}
	if err := c.Queue.Validate(); err != nil {
		return err
	}
	if err := c.DB.Validate(); err != nil {
		return err
	}

	if c.Maintenance != nil {
		if err := c.Maintenance.Validate(); err != nil {
			return err
		}
	}

	if c.Logging != nil {
		if err := c.Logging.Validate(); err != nil {
			return err
		}
	}

	if c.Metrics != nil {
		if err := c.Metrics.Validate(); err != nil {
			return fmt.Errorf("metrics: %w", err)
		}
	}

	for i, job := range c.Jobs {
		if !types.JobType(job.Type).IsValid() {
			return fmt.Errorf("jobs[%d]: unknown job type '%s'", i, job.Type)
		}
		if job.Interval.Duration <= 0 {
			return fmt.Errorf("jobs[%d] (%s): interval must be positive", i, job.Type)
		}
	}

	if len(c.Contracts) == 0 {
		return fmt.Errorf("at least one contract must be configured")
	}

	seen := make(map[types.Contract]bool)
	for i, contract := range c.Contracts {
		parsed, err := types.ParseContract(contract.Name)
		if err != nil {
			return fmt.Errorf("contracts[%d]: %w", i, err)
		}
		if seen[parsed] {
			return fmt.Errorf("contracts[%d]: duplicate contract '%s'", i, parsed)
		}
		seen[parsed] = true

		if !common.IsHexAddress(contract.Address) {
			return fmt.Errorf("contracts[%d] (%s): invalid address '%s'", i, parsed, contract.Address)
		}
	}

	return nil
}
