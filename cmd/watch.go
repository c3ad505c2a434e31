package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jsupreme/bgkit/internal/core/domain"
	"github.com/jsupreme/bgkit/pkg/ui"
	"github.com/jsupreme/bgkit/pkg/workspace"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the image directories and report slot changes",
	Long: `Watch static/img/ and images/ for background files being added,
replaced or removed, and print which slots changed how they resolve.

Press Ctrl+C to stop.`,
	Args: cobra.NoArgs,
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	ctx := getContext()

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, dir := range []string{appWorkspace.PreferredPath, appWorkspace.FallbackPath} {
		if !workspace.DirExists(dir) {
			fmt.Println(ui.FormatWarning("Not watching missing directory " + appWorkspace.Rel(dir) + "/"))
			continue
		}
		if err := watcher.Add(dir); err != nil {
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		watched++
	}
	if watched == 0 {
		return fmt.Errorf("no image directories to watch; run 'bgkit init' first")
	}

	fmt.Println(ui.FormatInfo("Watching for background changes..."))
	fmt.Println(ui.FormatMuted("Press Ctrl+C to stop"))
	fmt.Println()

	last := resolverService.Report(ctx)
	printStatus(os.Stdout, last)

	// Debounce timer to collapse bursts such as temp-file + rename
	var (
		mu            sync.Mutex
		debounceTimer *time.Timer
	)
	debounceDuration := 300 * time.Millisecond

	recheck := func() {
		mu.Lock()
		defer mu.Unlock()

		current := resolverService.Report(ctx)
		changes := diffReports(last, current)
		if len(changes) == 0 {
			return
		}
		last = current

		fmt.Println()
		fmt.Println(ui.FormatInfo(time.Now().Format("15:04:05") + " changes detected"))
		for _, c := range changes {
			fmt.Println("  " + c)
		}
	}

	known := make(map[string]bool)
	for _, name := range domain.Filenames() {
		known[name] = true
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}

			// Only slot files matter; temp files from fetch are ignored
			if !known[filepath.Base(event.Name)] {
				continue
			}

			if event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Write) ||
				event.Has(fsnotify.Remove) ||
				event.Has(fsnotify.Rename) {

				appLog.Debug("Slot file event", zap.String("event", event.String()))

				mu.Lock()
				if debounceTimer != nil {
					debounceTimer.Stop()
				}
				debounceTimer = time.AfterFunc(debounceDuration, recheck)
				mu.Unlock()
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			appLog.Error("Watcher error", zap.Error(err))
			fmt.Println(ui.FormatError("Watcher error: " + err.Error()))

		case <-ctx.Done():
			mu.Lock()
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			mu.Unlock()
			fmt.Println()
			fmt.Println(ui.FormatMuted("Watcher stopped"))
			return nil
		}
	}
}

// diffReports describes how each slot's resolution changed between two reports
func diffReports(before, after []domain.SlotStatus) []string {
	prev := make(map[domain.Slot]domain.SlotStatus, len(before))
	for _, st := range before {
		prev[st.Slot] = st
	}

	var changes []string
	for _, cur := range after {
		old, ok := prev[cur.Slot]
		if !ok {
			old = domain.SlotStatus{Slot: cur.Slot}
		}

		switch {
		case !old.Present() && cur.Present():
			changes = append(changes, ui.FormatSuccess(fmt.Sprintf("%s now resolves from %s", cur.Slot, cur.ResolvedFrom)))
		case old.Present() && !cur.Present():
			changes = append(changes, ui.FormatWarning(fmt.Sprintf("%s no longer resolves", cur.Slot)))
		case old.ResolvedFrom != cur.ResolvedFrom:
			changes = append(changes, ui.FormatInfo(fmt.Sprintf("%s switched from %s to %s", cur.Slot, old.ResolvedFrom, cur.ResolvedFrom)))
		case old.Size != cur.Size:
			changes = append(changes, ui.FormatInfo(fmt.Sprintf("%s replaced (%s -> %s)", cur.Slot, formatBytes(old.Size), formatBytes(cur.Size))))
		case old.InPreferred != cur.InPreferred || old.InFallback != cur.InFallback:
			changes = append(changes, ui.FormatMuted(fmt.Sprintf("%s shadow copy %s", cur.Slot, shadowVerb(cur))))
		}
	}
	return changes
}

func shadowVerb(st domain.SlotStatus) string {
	if st.InPreferred && st.InFallback {
		return "added"
	}
	return "removed"
}
