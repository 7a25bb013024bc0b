package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/iudanet/gridsync/internal/client/api"
	"github.com/iudanet/gridsync/internal/client/config"
	"github.com/iudanet/gridsync/internal/client/iocli"
	"github.com/iudanet/gridsync/internal/client/storage/boltdb"
	"github.com/iudanet/gridsync/internal/client/sync"
	"github.com/iudanet/gridsync/internal/clock"
	"github.com/iudanet/gridsync/internal/models"
)

// DefaultDBPath путь к локальной базе, если db_path не задан
const DefaultDBPath = "gridsync-client.db"

// annotationNoEngine помечает команды, которым не нужен движок
const annotationNoEngine = "no-engine"

// EngineFactory создает движок по готовой конфигурации.
// Возвращаемый Closer освобождает ресурсы движка (локальную базу).
type EngineFactory func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Engine, io.Closer, error)

// NewEngine создает sync.Engine с BoltDB хранилищем и HTTP транспортом
func NewEngine(ctx context.Context, cfg *config.Config, logger *slog.Logger) (Engine, io.Closer, error) {
	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = DefaultDBPath
	}

	store, err := boltdb.New(ctx, dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	client := api.NewClient(cfg.APIBaseURL, cfg.AuthToken, cfg.RequestTimeout)

	engine, err := sync.New(cfg, client,
		sync.WithStore(store),
		sync.WithLogger(logger),
		sync.WithEditClock(clock.New(time.Now)),
	)
	if err != nil {
		if closeErr := store.Close(); closeErr != nil {
			logger.Error("failed to close database", "error", closeErr)
		}
		return nil, nil, err
	}

	return engine, store, nil
}

type rootOptions struct {
	configPath  string
	serverURL   string
	realtimeURL string
	token       string
	dbPath      string
	verbose     bool
}

// App связывает cobra команды, конфигурацию и движок
type App struct {
	cli     *Cli
	factory EngineFactory
	closer  io.Closer
	logger  *slog.Logger
	opts    rootOptions
}

// NewApp создает приложение. factory вызывается один раз перед командой,
// которой нужен движок.
func NewApp(io iocli.IO, factory EngineFactory) *App {
	return &App{
		cli:     &Cli{io: io},
		factory: factory,
		logger:  slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})),
	}
}

// Execute выполняет команду и освобождает движок
func (a *App) Execute(ctx context.Context, args []string, version string) error {
	root := a.Command(version)
	root.SetArgs(args)
	defer a.shutdown()
	return root.ExecuteContext(ctx)
}

// Command строит дерево команд
func (a *App) Command(version string) *cobra.Command {
	root := &cobra.Command{
		Use:               "gridsync",
		Short:             "Offline-first sync client for maintenance schedule grids",
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.prepare,
	}
	root.SetOut(a.cli.io)

	pf := root.PersistentFlags()
	pf.StringVarP(&a.opts.configPath, "config", "c", config.DefaultFileName, "Path to YAML config")
	pf.StringVar(&a.opts.serverURL, "server", "", "Server URL (overrides api_base_url)")
	pf.StringVar(&a.opts.realtimeURL, "realtime-url", "", "Realtime WebSocket URL (overrides realtime_url)")
	pf.StringVar(&a.opts.token, "token", "", "Auth token (overrides auth_token)")
	pf.StringVar(&a.opts.dbPath, "db", "", "Path to local database (overrides db_path)")
	pf.BoolVarP(&a.opts.verbose, "verbose", "v", false, "Verbose logging")

	root.AddCommand(
		a.editCellCmd(),
		a.editSpecCmd(),
		a.syncCmd(),
		a.statusCmd(),
		a.conflictsCmd(),
		a.resolveCmd(),
		a.clearQueueCmd(),
		a.clearConflictsCmd(),
		a.watchCmd(),
		a.configCmd(),
	)
	return root
}

// prepare загружает конфигурацию и создает движок
func (a *App) prepare(cmd *cobra.Command, _ []string) error {
	if a.opts.verbose {
		a.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	if cmd.Annotations[annotationNoEngine] != "" {
		return nil
	}

	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}

	if cfg.AuthToken == "" {
		token, err := a.cli.io.ReadPassword("Auth token: ")
		if err != nil {
			return fmt.Errorf("failed to read auth token: %w", err)
		}
		cfg.AuthToken = token
	}

	engine, closer, err := a.factory(cmd.Context(), cfg, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create sync engine: %w", err)
	}
	a.cli.engine = engine
	a.closer = closer
	return nil
}

// loadConfig читает файл и применяет явно заданные флаги
func (a *App) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(a.opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("server") {
		cfg.APIBaseURL = a.opts.serverURL
	}
	if flags.Changed("realtime-url") {
		cfg.RealtimeURL = a.opts.realtimeURL
	}
	if flags.Changed("token") {
		cfg.AuthToken = a.opts.token
	}
	if flags.Changed("db") {
		cfg.DBPath = a.opts.dbPath
	}
	return cfg, nil
}

func (a *App) shutdown() {
	if a.cli.engine != nil {
		a.cli.engine.Destroy()
	}
	if a.closer != nil {
		if err := a.closer.Close(); err != nil {
			a.logger.Error("failed to close database", "error", err)
		}
	}
}

func (a *App) editFlags(cmd *cobra.Command, priority *string, syncNow *bool) {
	cmd.Flags().StringVarP(priority, "priority", "p", string(models.PriorityNormal), "Priority: high, normal or low")
	cmd.Flags().BoolVar(syncNow, "sync", false, "Send the queue right after enqueueing")
}

func (a *App) editCellCmd() *cobra.Command {
	var priority string
	var syncNow bool
	cmd := &cobra.Command{
		Use:   "edit-cell <row-id> <column-id> <value>",
		Short: "Queue a cell edit",
		Long: `Queue a cell edit for delivery to the server.

Period columns (time_*) accept planned, actual, planned+actual or -.
Other columns accept numbers, true/false or free text.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ParsePriority(priority)
			if err != nil {
				return err
			}
			return a.cli.runEditCell(cmd.Context(), args, EditOptions{Priority: p, Sync: syncNow})
		},
	}
	a.editFlags(cmd, &priority, &syncNow)
	return cmd
}

func (a *App) editSpecCmd() *cobra.Command {
	var priority string
	var syncNow bool
	cmd := &cobra.Command{
		Use:   "edit-spec <row-id> <spec-index> <key> <value>",
		Short: "Queue a specification edit",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := ParsePriority(priority)
			if err != nil {
				return err
			}
			return a.cli.runEditSpec(cmd.Context(), args, EditOptions{Priority: p, Sync: syncNow})
		},
	}
	a.editFlags(cmd, &priority, &syncNow)
	return cmd
}

func (a *App) syncCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sync",
		Short: "Send queued operations to the server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runSync(cmd.Context())
		},
	}
}

func (a *App) statusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show sync status and queued operations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.cli.runStatus()
		},
	}
}

func (a *App) conflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List unresolved conflicts",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.cli.runConflicts()
		},
	}
}

func (a *App) resolveCmd() *cobra.Command {
	var opts ResolveOptions
	cmd := &cobra.Command{
		Use:   "resolve <conflict-id>",
		Short: "Resolve a conflict and submit the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.cli.runResolve(cmd.Context(), args[0], opts)
		},
	}
	cmd.Flags().StringVarP(&opts.Strategy, "strategy", "s", string(models.StrategyUseLocal), "use_local, use_remote, merge or manual")
	cmd.Flags().StringVar(&opts.Data, "data", "", "JSON object with the resolved data (manual strategy)")
	cmd.Flags().StringVar(&opts.Reason, "reason", "", "Reason recorded with the resolution")
	return cmd
}

func (a *App) clearQueueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-queue",
		Short: "Drop all queued operations",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.cli.runClearQueue()
		},
	}
}

func (a *App) clearConflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear-conflicts",
		Short: "Drop all conflicts and the operations they hold",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.cli.runClearConflicts()
		},
	}
}

func (a *App) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Run the engine and print events until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.cli.runWatch(cmd.Context())
		},
	}
}

func (a *App) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the config file",
	}

	var force bool
	initCmd := &cobra.Command{
		Use:         "init",
		Short:       "Write a config file with default values",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationNoEngine: "true"},
		RunE: func(_ *cobra.Command, _ []string) error {
			return a.runConfigInit(force)
		},
	}
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")

	cmd.AddCommand(initCmd)
	return cmd
}

func (a *App) runConfigInit(force bool) error {
	path := a.opts.configPath
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config %s already exists, use --force to overwrite", path)
		} else if !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to check config: %w", err)
		}
	}

	if err := config.Save(path, config.Default()); err != nil {
		return err
	}
	a.cli.io.Printf("✓ Config written to %s\n", path)
	return nil
}
