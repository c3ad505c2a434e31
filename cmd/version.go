package cmd

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/jsupreme/bgkit/pkg/ui"
)

// Version information - these can be set during build with ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:     "version",
	Short:   "Display version information",
	Aliases: []string{"v"},
	Long:    `Display the current version of bgkit along with build information. (alias: v)`,
	Run:     runVersion,
}

func runVersion(cmd *cobra.Command, args []string) {
	fmt.Println(ui.StyleTitle.Render("bgkit") + " - Background Image Manager")
	fmt.Println()
	fmt.Println(ui.RenderKeyValue("Version", Version))
	fmt.Println(ui.RenderKeyValue("Commit", GitCommit))
	fmt.Println(ui.RenderKeyValue("Build Date", BuildDate))
	fmt.Println(ui.RenderKeyValue("Go", runtime.Version()))
}
