package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/verity/packages/snapshot"
)

// WatchDebounceDelay coalesces rapid file events before re-scanning.
const WatchDebounceDelay = 300 * time.Millisecond

var (
	watchFlag   bool
	noColorFlag bool
	dryRunFlag  bool
)

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots",
	Short: "Manage snapshot files created by snapshot assertions",
}

var snapshotsListCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List snapshot files and flag orphans",
	Long: `Walk the given directory (default ".") and list every snapshot
file, flagging orphans whose source test file no longer exists.`,
	Args: cobra.MaximumNArgs(1),
	RunE: snapshotsList,
}

var snapshotsCleanCmd = &cobra.Command{
	Use:   "clean [dir]",
	Short: "Delete orphaned snapshot files",
	Long: `Delete snapshot files whose source test file no longer exists.
Deleted files are first copied to a backup directory under the system
temp dir. With --watch, the scan re-runs whenever test files change.`,
	Args: cobra.MaximumNArgs(1),
	RunE: snapshotsClean,
}

func init() {
	snapshotsCmd.PersistentFlags().BoolVar(&noColorFlag, "no-color", false, "Disable colored output")
	snapshotsCleanCmd.Flags().BoolVarP(&watchFlag, "watch", "w", false, "Re-scan when test files change")
	snapshotsCleanCmd.Flags().BoolVar(&dryRunFlag, "dry-run", false, "Report orphans without deleting them")
	snapshotsCmd.AddCommand(snapshotsListCmd)
	snapshotsCmd.AddCommand(snapshotsCleanCmd)
}

// snapshotFile pairs a snapshot file with the test source it belongs to.
type snapshotFile struct {
	path   string
	source string
	orphan bool
}

// findSnapshots walks root collecting every snapshot file.
func findSnapshots(root string) ([]snapshotFile, error) {
	var found []snapshotFile

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || filepath.Base(filepath.Dir(path)) != snapshot.Dir {
			return nil
		}
		if !strings.HasSuffix(path, snapshot.Ext) {
			return nil
		}

		// foo_test.snap.json belongs to foo_test.go one level up.
		base := strings.TrimSuffix(filepath.Base(path), snapshot.Ext)
		source := filepath.Join(filepath.Dir(filepath.Dir(path)), base+".go")

		sf := snapshotFile{path: path, source: source}
		if _, err := os.Stat(source); err != nil {
			sf.orphan = true
		}
		found = append(found, sf)
		return nil
	})

	return found, err
}

func snapshotsList(cmd *cobra.Command, args []string) error {
	if noColorFlag {
		color.NoColor = true
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	found, err := findSnapshots(root)
	if err != nil {
		return err
	}

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	orphans := 0
	for _, sf := range found {
		if sf.orphan {
			orphans++
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s (missing %s)\n", red("✗"), sf.path, sf.source)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s %s\n", green("✓"), sf.path)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d snapshot file(s), %d orphaned\n", len(found), orphans)
	return nil
}

func snapshotsClean(cmd *cobra.Command, args []string) error {
	if noColorFlag {
		color.NoColor = true
	}

	root := "."
	if len(args) > 0 {
		root = args[0]
	}

	if err := cleanOrphans(cmd, root); err != nil {
		return err
	}
	if !watchFlag {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	// Watch every directory under root so new and removed test files
	// trigger a re-scan.
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to watch %s: %w", root, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\nWatching for changes... (press Ctrl+C to stop)\n")

	var debounceTimer *time.Timer
	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
				continue
			}

			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(WatchDebounceDelay, func() {
				fmt.Fprintf(cmd.OutOrStdout(), "\nChange detected: %s\n", event.Name)
				if err := cleanOrphans(cmd, root); err != nil {
					fmt.Fprintf(os.Stderr, "warning: %v\n", err)
				}
			})

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "warning: watcher error: %v\n", err)
		}
	}
}

func cleanOrphans(cmd *cobra.Command, root string) error {
	found, err := findSnapshots(root)
	if err != nil {
		return err
	}

	var orphans []snapshotFile
	for _, sf := range found {
		if sf.orphan {
			orphans = append(orphans, sf)
		}
	}

	if len(orphans) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No orphaned snapshots.\n")
		return nil
	}

	yellow := color.New(color.FgYellow).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()

	if dryRunFlag {
		for _, sf := range orphans {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s would delete %s\n", yellow("-"), sf.path)
		}
		return nil
	}

	backupDir := filepath.Join(os.TempDir(), "verity-backup-"+uuid.NewString()[:8])
	if err := os.MkdirAll(backupDir, 0o755); err != nil {
		return fmt.Errorf("failed to create backup directory: %w", err)
	}

	for _, sf := range orphans {
		data, err := os.ReadFile(sf.path)
		if err != nil {
			return fmt.Errorf("failed to back up %s: %w", sf.path, err)
		}
		backup := filepath.Join(backupDir, filepath.Base(sf.path))
		if err := os.WriteFile(backup, data, 0o644); err != nil {
			return fmt.Errorf("failed to write backup for %s: %w", sf.path, err)
		}
		if err := os.Remove(sf.path); err != nil {
			return fmt.Errorf("failed to delete %s: %w", sf.path, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "  %s deleted %s\n", red("x"), sf.path)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "\n%d orphan(s) deleted, backups in %s\n", len(orphans), backupDir)
	return nil
}
