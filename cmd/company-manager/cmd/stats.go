package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/company-manager/pkg/codec"
	"github.com/pigeonworks-llc/company-manager/pkg/db"
)

var statsRecent int

// statsCmd represents the stats command.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Display export statistics",
	Long: `Display statistics about recorded profile exports.

Shows:
- Total number of exported files
- Total number of update runs
- Per-format export counts
- Last export timestamp

Example:
  company-manager stats
  company-manager stats --recent 10`,
	Run: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsRecent, "recent", 0, "also list the N most recent exports")
}

func runStats(cmd *cobra.Command, args []string) {
	pathResolver := loadPathResolver()

	// Open database connection
	dbPath := pathResolver.GetDatabasePath()
	slog.Debug("Opening database", "path", dbPath)

	conn, err := db.Open(dbPath)
	exitOnError(err, "failed to open export history database")
	defer conn.Close()

	history := db.NewHistory(conn)

	// Get statistics
	stats, err := history.GetStats()
	exitOnError(err, "failed to get statistics")

	printStats(stats)

	if statsRecent > 0 {
		records, err := history.Recent(statsRecent)
		exitOnError(err, "failed to get recent exports")

		fmt.Println("Recent exports:")
		for _, record := range records {
			fmt.Printf("  %s  %-4s  %6d bytes  %s\n",
				record.ExportedAt.Format("2006-01-02 15:04:05"),
				record.Format,
				record.Bytes,
				record.FilePath,
			)
		}
		fmt.Println()
	}

	slog.Info("Statistics displayed successfully")
}

// printStats displays the export statistics block.
func printStats(stats *db.Stats) {
	fmt.Println("\n=== Export Statistics ===")
	fmt.Printf("Total exports:     %d\n", stats.TotalExports)
	fmt.Printf("Total update runs: %d\n", stats.TotalRuns)

	for _, format := range codec.Formats() {
		if count := stats.ByFormat[string(format)]; count > 0 {
			fmt.Printf("  %-4s exports:    %d\n", format, count)
		}
	}

	if stats.LastExport.Valid {
		fmt.Printf("Last export:       %s\n", stats.LastExport.String)
	} else {
		fmt.Printf("Last export:       (never)\n")
	}

	fmt.Println()
}
