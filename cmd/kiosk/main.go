// Command kiosk runs the clinic information kiosk: an interactive terminal
// page with searchable services, FAQ, visitor info tabs, and a contact
// form. Interaction events are appended to an analytics log that external
// tooling can read from the data directory.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"carekiosk/cmd/kiosk/page"
	"carekiosk/internal/analytics"
	"carekiosk/internal/config"
	"carekiosk/internal/content"
	"carekiosk/internal/kvstore"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	verbose     bool
	configPath  string
	dataDir     string
	contentPath string

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kiosk",
	Short: "Interactive clinic information kiosk",
	Long: `carekiosk renders a clinic's information page as an interactive
terminal application: search and filter the service catalog, browse the
FAQ, read visitor information, and send a contact message.

Run without arguments to start the kiosk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runKiosk()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "kiosk.yaml", "configuration file")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "override the data directory")
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "override the content manifest path")

	rootCmd.AddCommand(eventsCmd)
	rootCmd.AddCommand(checkCmd)
}

// loadConfig folds CLI flag overrides into the file/env configuration.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if contentPath != "" {
		cfg.Content = contentPath
	}
	return cfg, nil
}

// initLogger builds a file-directed zap logger. The TUI owns the terminal,
// so nothing may log to stderr while the program runs.
func initLogger(cfg *config.Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}
	zcfg := zap.NewProductionConfig()
	zcfg.OutputPaths = []string{filepath.Join(cfg.DataDir, cfg.Logging.File)}
	zcfg.ErrorOutputPaths = zcfg.OutputPaths
	if verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	} else if lvl, err := zapcore.ParseLevel(cfg.Logging.Level); err == nil {
		zcfg.Level = zap.NewAtomicLevelAt(lvl)
	}
	var err error
	logger, err = zcfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

func runKiosk() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := initLogger(cfg); err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	// A broken or missing manifest must not kill the page; the kiosk
	// comes up with whatever sections have content.
	manifest, err := content.Load(cfg.Content)
	if err != nil {
		logger.Warn("content manifest unavailable, starting with empty page",
			zap.String("path", cfg.Content), zap.Error(err))
		manifest = &content.Manifest{}
	}

	store := kvstore.Open(cfg.StorePath(), logger)
	defer store.Close()

	events := analytics.New(cfg.AnalyticsSinkPath(), logger)
	defer events.Close()
	logger.Info("session started", zap.String("session", events.Session()))

	model := page.New(cfg, manifest, store, events, logger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	watcher, werr := content.NewWatcher(cfg.Content, logger, func(m *content.Manifest) {
		p.Send(page.ContentReloadedMsg{Manifest: m})
	})
	if werr != nil {
		logger.Warn("content watcher unavailable", zap.Error(werr))
	} else {
		if err := watcher.Start(ctx); err != nil {
			logger.Warn("content watcher failed to start", zap.Error(err))
		} else {
			defer watcher.Stop()
		}
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("kiosk exited with error: %w", err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
