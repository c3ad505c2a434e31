package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/jsupreme/bgkit/pkg/config"
	"github.com/jsupreme/bgkit/pkg/ui"
)

var configEdit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or edit the bgkit configuration",
	Long: `Print the effective configuration, defaults included.

With --edit, open .bgkit.yaml in $EDITOR instead (run 'bgkit init' to create it).`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVarP(&configEdit, "edit", "e", false, "open the config file in $EDITOR")
}

func runConfig(cmd *cobra.Command, args []string) error {
	path := appWorkspace.ConfigPath

	if !configEdit {
		out, err := yaml.Marshal(appConfig)
		if err != nil {
			return fmt.Errorf("failed to encode config: %w", err)
		}

		source := appWorkspace.Rel(path)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			source = "defaults (no " + config.FileName + ")"
		}
		fmt.Println(ui.FormatMuted("# " + source))
		fmt.Print(string(out))
		return nil
	}

	// Ensure it exists
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return fmt.Errorf("config file not found at %s; run 'bgkit init' first", path)
	}

	fmt.Println(ui.FormatInfo("Opening config: " + path))

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	c := exec.Command(editor, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
