package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsupreme/bgkit/internal/core/domain"
	"github.com/jsupreme/bgkit/internal/core/services"
	"github.com/jsupreme/bgkit/pkg/ui"
	"github.com/jsupreme/bgkit/pkg/workspace"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the image directories and every background file",
	Long: `Diagnose issues with the background setup.

Checks for:
  - Image directories and configuration file
  - Slot files that are empty, truncated or not images
  - Files whose content is not JPEG or not 1920x1080`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

// errWarning marks a check that passed with a remark
var errWarning = errors.New("warning")

func runDoctor(cmd *cobra.Command, args []string) error {
	fmt.Println(ui.FormatTitle("bgkit doctor"))
	fmt.Println()

	failed := 0
	check := func(name string, fn func() error) {
		if !checkStep(name, fn) {
			failed++
		}
	}

	check("Preferred directory", func() error {
		if !workspace.DirExists(appWorkspace.PreferredPath) {
			return fmt.Errorf("%w: missing at %s", errWarning, appWorkspace.PreferredPath)
		}
		return nil
	})

	check("Fallback directory", func() error {
		if !workspace.DirExists(appWorkspace.FallbackPath) {
			return fmt.Errorf("%w: missing at %s (created by 'bgkit fetch')", errWarning, appWorkspace.FallbackPath)
		}
		return nil
	})

	check("Configuration file", func() error {
		if _, err := os.Stat(appWorkspace.ConfigPath); os.IsNotExist(err) {
			return fmt.Errorf("%w: not found, using defaults", errWarning)
		}
		return nil
	})

	fmt.Println()
	fmt.Println(ui.FormatInfo("Checking background files..."))

	for _, st := range resolverService.Report(getContext()) {
		check(st.Filename, func() error {
			return checkSlotFile(st)
		})
	}

	fmt.Println()
	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	fmt.Println(ui.FormatSuccess("Everything looks good"))
	return nil
}

// checkSlotFile validates the file a slot resolves to
func checkSlotFile(st domain.SlotStatus) error {
	if !st.Present() {
		return fmt.Errorf("%w: absent, page renders without a background", errWarning)
	}

	path, _, err := resolverService.Locate(st.Filename)
	if err != nil {
		return err
	}

	info, err := services.InspectFile(path, appConfig.MinBytes)
	if err != nil {
		return err
	}

	appLog.Debug("Inspected slot file",
		zap.String("path", path),
		zap.String("mime", info.MIME),
		zap.Int("width", info.Width),
		zap.Int("height", info.Height))

	switch {
	case !info.IsJPEG():
		return fmt.Errorf("%w: content is %s, not JPEG", errWarning, info.MIME)
	case info.Width > 0 && !info.FullSize():
		return fmt.Errorf("%w: %dx%d, expected %dx%d", errWarning, info.Width, info.Height, domain.Width, domain.Height)
	}
	return nil
}

// checkStep runs a check function and prints the result nicely.
// Warnings are printed but do not count as failures.
func checkStep(name string, check func() error) bool {
	err := check()
	switch {
	case err == nil:
		fmt.Printf("%s %s\n", ui.FormatSuccess("✔"), name)
		return true
	case errors.Is(err, errWarning):
		fmt.Printf("%s %s\n", ui.FormatWarning("!"), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
		return true
	default:
		fmt.Printf("%s %s\n", ui.FormatError("✘"), name)
		fmt.Printf("    %s\n", ui.StyleMuted.Render(err.Error()))
		return false
	}
}
