package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	fuzzyfinder "github.com/ktr0731/go-fuzzyfinder"
	"github.com/spf13/cobra"

	"github.com/jsupreme/bgkit/internal/core/domain"
	"github.com/jsupreme/bgkit/internal/core/services"
	"github.com/jsupreme/bgkit/pkg/ui"
)

var urlCmd = &cobra.Command{
	Use:   "url [page]",
	Short: "Print the background URL for a page",
	Long: `Resolve a page key (home, insights, blog, start, privacy, terms, thank_you)
to the URL of its background image.

If no page is given, opens an interactive fuzzy finder and copies the
selected URL to the clipboard. A missing image is reported but is not an error.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runURL,
}

func runURL(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	if len(args) == 0 {
		return runInteractiveURL()
	}

	bg, err := resolverService.Resolve(ctx, args[0])
	if err != nil {
		if services.IsAbsence(err) {
			fmt.Println(ui.FormatWarning(err.Error()))
			fmt.Println(ui.FormatMuted("The page will render without a background image."))
			return nil
		}
		return err
	}

	fmt.Println(bg.URL)
	return nil
}

// runInteractiveURL launches the fuzzy finder over every slot
func runInteractiveURL() error {
	report := resolverService.Report(getContext())

	idx, err := fuzzyfinder.Find(
		report,
		func(i int) string {
			st := report[i]
			return fmt.Sprintf("%s  %s", st.Slot, st.Filename)
		},
		fuzzyfinder.WithPreviewWindow(func(i, w, h int) string {
			if i == -1 {
				return ""
			}
			return slotPreview(report[i])
		}),
	)
	if err != nil {
		fmt.Println(ui.FormatInfo("Selection cancelled."))
		return nil
	}

	selected := report[idx]
	if !selected.Present() {
		fmt.Println(ui.FormatWarning("No image for " + selected.Slot.String()))
		fmt.Println(ui.FormatInfo("Run 'bgkit fetch' or add " + selected.Filename + " to " +
			appWorkspace.Rel(appWorkspace.PreferredPath) + "/"))
		return nil
	}

	fmt.Println(ui.FormatSuccess("Selected: " + selected.Slot.String()))
	fmt.Println(ui.StyleBold.Render(selected.URL))

	if err := clipboard.WriteAll(selected.URL); err != nil {
		fmt.Println(ui.FormatMuted("(Clipboard access failed)"))
	} else {
		fmt.Println(ui.FormatMuted("(Copied to clipboard)"))
	}

	return nil
}

func slotPreview(st domain.SlotStatus) string {
	where := "missing"
	if st.Present() {
		where = string(st.ResolvedFrom)
	}

	url := st.URL
	if url == "" {
		url = "-"
	}

	return fmt.Sprintf("Slot: %s\nFile: %s\n\n%s/: %s\n%s/: %s\n\nResolved: %s\nURL: %s\n",
		st.Slot,
		st.Filename,
		appWorkspace.Rel(appWorkspace.PreferredPath),
		ui.FormatBool(st.InPreferred),
		appWorkspace.Rel(appWorkspace.FallbackPath),
		ui.FormatBool(st.InFallback),
		where,
		url,
	)
}
