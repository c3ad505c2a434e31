package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jsupreme/bgkit/internal/core/domain"
	"github.com/jsupreme/bgkit/pkg/ui"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which background slots resolve and from where",
	Long: `List the six background slots with their presence in the preferred
(static/img/) and fallback (images/) directories, and the URL each resolves to.

Slots without a file are not an error: pages render their default appearance.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	report := resolverService.Report(getContext())
	printStatus(os.Stdout, report)
	return nil
}

// printStatus renders a slot report as a table followed by a summary line
func printStatus(w io.Writer, report []domain.SlotStatus) {
	preferred := appWorkspace.Rel(appWorkspace.PreferredPath) + "/"
	fallback := appWorkspace.Rel(appWorkspace.FallbackPath) + "/"

	table := ui.NewTable([]ui.TableColumn{
		{Header: "SLOT"},
		{Header: "FILE"},
		{Header: preferred, Align: "center"},
		{Header: fallback, Align: "center"},
		{Header: "SIZE", Align: "right"},
		{Header: "URL"},
	})

	present := 0
	for _, st := range report {
		size, url := "", ui.IconAbsent
		if st.Present() {
			present++
			size = formatBytes(st.Size)
			url = st.URL
		}
		table.AddRow(
			st.Slot.String(),
			st.Filename,
			ui.FormatBool(st.InPreferred),
			ui.FormatBool(st.InFallback),
			size,
			url,
		)
	}

	fmt.Fprint(w, table.Render())
	fmt.Fprintln(w)

	switch {
	case present == len(report):
		fmt.Fprintln(w, ui.FormatSuccess(fmt.Sprintf("All %d backgrounds resolve", present)))
	case present == 0:
		fmt.Fprintln(w, ui.FormatWarning("No backgrounds found"))
		fmt.Fprintln(w, ui.FormatInfo("Run 'bgkit fetch' to download placeholders"))
	default:
		fmt.Fprintln(w, ui.FormatWarning(fmt.Sprintf("%d of %d backgrounds resolve", present, len(report))))
	}
}
