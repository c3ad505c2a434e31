package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsupreme/bgkit/internal/core/domain"
	"github.com/jsupreme/bgkit/internal/core/services"
	"github.com/jsupreme/bgkit/pkg/ui"
)

// fetchCmd downloads placeholder images for every slot
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download placeholder backgrounds into images/",
	Long: `Download a 1920x1080 placeholder image for each of the six background slots
and save it into the fallback directory (images/), overwriting existing files.

Each file is downloaded independently: a failed download is reported and the
remaining files are still fetched. The command exits non-zero if any file failed.`,
	Args: cobra.NoArgs,
	RunE: runFetch,
}

func runFetch(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	fmt.Println(ui.FormatDownload("Fetching placeholders into " + appWorkspace.Rel(imageStore.Dir()) + "/"))
	fmt.Println()

	resp, err := fetchService.Execute(ctx, services.FetchRequest{})
	if resp == nil {
		return err
	}

	for _, res := range resp.Results {
		if res.OK() {
			fmt.Printf("%s %s\n",
				ui.FormatSuccess(res.Filename),
				ui.FormatMuted(fmt.Sprintf("(%s, %s)", formatBytes(res.Bytes), res.Duration.Round(time.Millisecond))))
			continue
		}
		fmt.Println(ui.FormatError(res.Filename))
		fmt.Printf("    %s\n", ui.StyleMuted.Render(res.Err.Error()))
	}

	fmt.Println()
	if err != nil {
		return fetchError(ctx, resp, err)
	}

	fmt.Println(ui.FormatSuccess(fmt.Sprintf("Saved %d placeholders", resp.Succeeded)))
	return nil
}

// fetchError turns a failed run into the command's error.
// An interrupted run names the slots that were never attempted.
func fetchError(ctx context.Context, resp *services.FetchResponse, err error) error {
	total := len(domain.Slots())
	if ctxErr := ctx.Err(); ctxErr != nil {
		skipped := total - len(resp.Results)
		return fmt.Errorf("fetch interrupted: %d saved, %d failed, %d not attempted: %w",
			resp.Succeeded, resp.Failed, skipped, ctxErr)
	}
	if resp.Failed == 0 {
		return err
	}
	return fmt.Errorf("%d of %d downloads failed; re-run 'bgkit fetch' to retry", resp.Failed, total)
}

// formatBytes renders a byte count for humans
func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %cB", float64(n)/float64(div), "KMGT"[exp])
}
