package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsupreme/bgkit/internal/adapters/repository"
	"github.com/jsupreme/bgkit/internal/adapters/source"
	"github.com/jsupreme/bgkit/internal/core/ports"
	"github.com/jsupreme/bgkit/internal/core/services"
	"github.com/jsupreme/bgkit/pkg/config"
	"github.com/jsupreme/bgkit/pkg/logger"
	"github.com/jsupreme/bgkit/pkg/ui"
	"github.com/jsupreme/bgkit/pkg/workspace"
)

var (
	// Global workspace and configuration
	appWorkspace *workspace.Workspace
	appConfig    *config.Config
	appLog       *zap.Logger

	// Services
	resolverService ports.Resolver
	fetchService    *services.FetchService

	// Repositories
	imageStore *repository.DirImageStore

	// Root context, cancelled on SIGINT/SIGTERM
	rootCtx    context.Context
	rootCancel context.CancelFunc = func() {}
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "bgkit",
	Short: "bgkit - Background image slots for the website",
	Long: ui.StyleTitle.Render("bgkit") + " - Background Image Manager\n\n" +
		"Resolves page background images from static/img/ (preferred) or images/ (fallback)\n" +
		"and downloads 1920x1080 placeholders until real assets are supplied.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: initializeApp,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	err := rootCmd.Execute()

	rootCancel()
	if appLog != nil {
		appLog.Sync()
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, ui.FormatError(err.Error()))
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(urlCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

// initializeApp initializes the application components
func initializeApp(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	ws, err := workspace.New("")
	if err != nil {
		return fmt.Errorf("failed to initialize workspace: %w", err)
	}

	cfg, err := config.Load(ws.ConfigPath)
	if err != nil {
		return err
	}
	ws.Apply(cfg)
	ui.SetTheme(cfg.ColorTheme)

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	appWorkspace = ws
	appConfig = cfg
	appLog = log

	// Placeholders always land in the fallback directory
	imageStore = repository.NewDirImageStore(ws.FallbackPath)
	imageSource := source.NewHTTPSource(
		cfg.SourceURL,
		cfg.UserAgent+"/"+Version,
		time.Duration(cfg.TimeoutSeconds)*time.Second,
	)

	resolverService = services.NewResolverService(ws.PreferredPath, ws.FallbackPath, cfg.MountPoint)
	fetchService = services.NewFetchService(imageSource, imageStore, log, cfg.MinBytes)

	appLog.Debug("Workspace ready",
		zap.String("root", ws.RootPath),
		zap.String("preferred", ws.PreferredPath),
		zap.String("fallback", ws.FallbackPath))

	return nil
}

// getContext returns a context for operations, cancelled by Ctrl+C
func getContext() context.Context {
	if rootCtx == nil {
		rootCtx, rootCancel = signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	}
	return rootCtx
}
