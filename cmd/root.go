package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"shopfront/internal/assets"
	"shopfront/internal/catalog"
	"shopfront/internal/config"
	"shopfront/internal/eventbus"
	"shopfront/internal/reveal"
	"shopfront/internal/ui"
)

const logFileName = "shopfront.log"

var (
	flagDir     string
	flagVerbose bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "shopfront [dir]",
	Short: "Browse a product catalog in the terminal",
	Long: `shopfront is a terminal storefront browser. It scans a directory for
product records, lays them out as category-grouped tiles and loads
media lazily as tiles scroll into view.`,
	Args: cobra.MaximumNArgs(1),
	// SilenceUsage keeps run failures from being drowned in help text
	SilenceUsage: true,
	RunE:         runBrowser,
}

// SetVersion sets the version for the root command
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "shopfront version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newVersionCmd())

	rootCmd.Flags().StringVarP(&flagDir, "dir", "d", "", "catalog directory to browse (defaults to the working directory)")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "write debug output to the log file")
}

func runBrowser(cmd *cobra.Command, args []string) error {
	dir := flagDir
	if dir == "" && len(args) > 0 {
		dir = args[0]
	}
	if dir == "" {
		var err error
		dir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to resolve working directory: %w", err)
		}
	}
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", dir, err)
	}
	if info, err := os.Stat(absDir); err != nil || !info.IsDir() {
		return fmt.Errorf("not a directory: %s", absDir)
	}

	logger, err := newLogger(flagVerbose)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	bus := eventbus.New(logger)

	configPath := filepath.Join(absDir, config.FileName)
	configSvc := config.NewServiceWithBus(bus)
	cfg := loadOrCreateConfig(configSvc, configPath, absDir, logger)

	// Persist preference changes as they happen
	bus.Subscribe(eventbus.EventConfigChanged, func(e eventbus.DomainEvent) {
		event, ok := e.(eventbus.ConfigChangedEvent)
		if !ok {
			return
		}
		cfg.UISettings.ShowPrices = event.ShowPrices
		cfg.UISettings.SortMode = event.SortMode
		if err := configSvc.SaveToPath(cfg, configPath); err != nil {
			logger.Warn("failed to save config", zap.Error(err))
		} else {
			logger.Info("config saved", zap.String("path", configPath))
		}
	})

	loader := catalog.NewLoader(bus, logger)
	_ = assets.NewService(bus, logger, cfg.CatalogDir)

	watcher, err := catalog.NewWatcher(bus, logger, cfg.CatalogDir)
	if err != nil {
		logger.Warn("file watching unavailable", zap.Error(err))
	} else {
		defer watcher.Close()
		productsDir := filepath.Join(cfg.CatalogDir, "products")
		if fi, err := os.Stat(productsDir); err == nil && fi.IsDir() {
			if err := watcher.AddDir(productsDir); err != nil {
				logger.Warn("cannot watch products directory", zap.Error(err))
			}
		}
	}

	// Tiles reveal on scroll only when a real terminal reports a sized
	// viewport; anything else gets everything activated up front
	strategy := reveal.Observed
	if fi, err := os.Stdout.Stat(); err == nil && fi.Mode()&os.ModeCharDevice == 0 {
		strategy = reveal.Eager
	}

	model := ui.NewModel(bus, cfg, logger, strategy)
	p := tea.NewProgram(model, tea.WithAltScreen())
	model.SetProgram(p)

	// Domain events cross into Bubble Tea through a buffered channel.
	// A full channel drops rather than blocks a publisher.
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			logger.Warn("event channel full, dropping event",
				zap.String("type", string(e.Type())))
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventProductFound,
		eventbus.EventCatalogLoadStarted,
		eventbus.EventCatalogLoadCompleted,
		eventbus.EventCatalogChanged,
		eventbus.EventAssetLoaded,
		eventbus.EventShortlistChanged,
		eventbus.EventConfigSaved,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, forward)
	}

	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	go func() {
		if err := loader.StartLoad(ctx, cfg.CatalogDir); err != nil {
			logger.Error("catalog load failed", zap.Error(err))
		}
	}()

	// Automation drivers wait for this marker before sending keys
	if os.Getenv("SHOPFRONT_E2E") != "" {
		fmt.Println("__READY__")
	}

	logger.Info("starting UI", zap.String("dir", cfg.CatalogDir))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run UI: %w", err)
	}
	logger.Info("UI exited")

	loader.StopLoad()
	bus.Close()
	close(eventChan)
	return nil
}

// loadOrCreateConfig loads the catalog's config file or writes a fresh
// default one. The browsed directory always wins over whatever CatalogDir
// the file carries, since the file lives inside the catalog itself.
func loadOrCreateConfig(configSvc config.Service, configPath, dir string, logger *zap.Logger) *config.Config {
	if _, err := os.Stat(configPath); err == nil {
		cfg, err := configSvc.LoadFromPath(configPath)
		if err == nil {
			logger.Info("loaded config", zap.String("path", configPath))
			cfg.CatalogDir = dir
			cfg.Normalize()
			return cfg
		}
		logger.Warn("failed to load config, using defaults", zap.Error(err))
	}

	cfg := config.Default()
	cfg.CatalogDir = dir
	if err := configSvc.SaveToPath(cfg, configPath); err != nil {
		logger.Warn("failed to save config", zap.Error(err))
	}
	return cfg
}

// newLogger writes structured logs to a file so they don't corrupt the
// alternate screen
func newLogger(verbose bool) (*zap.Logger, error) {
	logCfg := zap.NewProductionConfig()
	logCfg.OutputPaths = []string{logFileName}
	logCfg.ErrorOutputPaths = []string{logFileName}
	if verbose {
		logCfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	return logCfg.Build()
}
