package cmd

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/company-manager/pkg/codec"
	"github.com/pigeonworks-llc/company-manager/pkg/company"
	"github.com/pigeonworks-llc/company-manager/pkg/db"
	"github.com/pigeonworks-llc/company-manager/pkg/pathutil"
	"github.com/pigeonworks-llc/company-manager/pkg/profile"
)

// updateAllCmd represents the update-all command.
var updateAllCmd = &cobra.Command{
	Use:   "update-all",
	Short: "Rewrite every profile file format",
	Long: `Rewrite all company profile files from the current record.

This command:
1. Loads the stored profile (or the built-in company data)
2. Encodes it as JSON, INI, CSV, YAML and the plain-text summary
3. Overwrites the files in the profile directory
4. Records the run in the export history

Example:
  company-manager update-all`,
	Run: runUpdateAll,
}

func runUpdateAll(cmd *cobra.Command, args []string) {
	pathResolver := loadPathResolver()
	repo := profile.NewFileSystemRepository(pathResolver)
	rec := loadRecord(repo)

	updateAllFormats(repo, pathResolver, rec)
}

// formatLabels maps formats to their display names in command output.
var formatLabels = map[codec.Format]string{
	codec.FormatJSON: "JSON",
	codec.FormatINI:  "INI",
	codec.FormatCSV:  "CSV",
	codec.FormatYAML: "YAML",
	codec.FormatText: "Text",
}

// updateAllFormats rewrites every profile file from the record and then
// records the run in the export history. It is shared by update-all and
// the editor's save path.
func updateAllFormats(repo profile.Repository, pathResolver *pathutil.PathResolver, rec *company.Record) {
	fmt.Println("Updating all file formats...")

	results, err := repo.WriteAll(rec)
	exitOnError(err, "failed to update profile files")

	for _, result := range results {
		fmt.Printf("✓ %s file updated\n", formatLabels[result.Format])
	}
	fmt.Println("All formats updated successfully!")

	recordRun(pathResolver, results)
}

// recordRun stores the written files in the export history under one
// run ID. History failures are logged, not fatal.
func recordRun(pathResolver *pathutil.PathResolver, results []profile.WriteResult) {
	dbPath := pathResolver.GetDatabasePath()
	slog.Debug("Opening database", "path", dbPath)

	conn, err := db.Open(dbPath)
	if err != nil {
		slog.Error("Failed to open export history database", "path", dbPath, "error", err)
		return
	}
	defer conn.Close()

	history := db.NewHistory(conn)

	runID := uuid.NewString()
	records := make([]db.ExportRecord, 0, len(results))
	for _, result := range results {
		records = append(records, db.ExportRecord{
			RunID:    runID,
			Format:   string(result.Format),
			FilePath: result.Path,
			Bytes:    int64(result.Bytes),
		})
	}

	if err := history.RecordRun(runID, records); err != nil {
		slog.Error("Failed to record export run", "run_id", runID, "error", err)
		return
	}

	// Display final statistics
	stats, err := history.GetStats()
	if err == nil {
		printStats(stats)
	}

	slog.Info("Update completed", "run_id", runID, "files_written", len(results))
}
