package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsupreme/bgkit/internal/core/domain"
	"github.com/jsupreme/bgkit/pkg/config"
	"github.com/jsupreme/bgkit/pkg/ui"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the image directories and a default config",
	Long: `Create static/img/ and images/ in the current project and write a
default .bgkit.yaml if one does not exist yet.

Running init again is safe: existing directories and config are kept.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	if err := appWorkspace.Initialize(); err != nil {
		fmt.Println(ui.FormatError("Failed to create image directories"))
		return err
	}
	fmt.Println(ui.FormatSuccess("Preferred directory " + appWorkspace.Rel(appWorkspace.PreferredPath) + "/"))
	fmt.Println(ui.FormatSuccess("Fallback directory  " + appWorkspace.Rel(appWorkspace.FallbackPath) + "/"))

	created, err := writeDefaultConfig(appWorkspace.ConfigPath, appConfig)
	switch {
	case err != nil:
		// Config is optional
		fmt.Println(ui.FormatWarning("Failed to create " + config.FileName + ": " + err.Error()))
	case created:
		fmt.Println(ui.FormatSuccess("Config " + config.FileName + " created"))
	default:
		fmt.Println(ui.FormatMuted("Config " + config.FileName + " already exists"))
	}

	appLog.Debug("Workspace initialized", zap.String("root", appWorkspace.RootPath))

	fmt.Println()
	fmt.Println(ui.FormatInfo("Expected files:"))
	for _, name := range domain.Filenames() {
		fmt.Println(ui.FormatMuted("  " + name))
	}
	fmt.Println()
	fmt.Println(ui.FormatInfo("Next steps:"))
	fmt.Println(ui.FormatMuted("  1. Download placeholders: bgkit fetch"))
	fmt.Println(ui.FormatMuted("  2. Drop real images into " + appWorkspace.Rel(appWorkspace.PreferredPath) + "/"))
	fmt.Println(ui.FormatMuted("  3. Check resolution: bgkit status"))

	return nil
}

// writeDefaultConfig saves cfg to path unless a file already exists there
func writeDefaultConfig(path string, cfg *config.Config) (bool, error) {
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return false, err
	}

	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	if err := cfg.Save(path); err != nil {
		return false, err
	}
	return true, nil
}
