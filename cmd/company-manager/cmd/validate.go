package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/company-manager/pkg/profile"
)

// validateCmd represents the validate command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check that every profile file exists",
	Long: `Check the profile directory for every expected file.

Each format's fixed-name file is listed with a marker showing whether
it is present. Missing files can be recreated with update-all.

Example:
  company-manager validate`,
	Run: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) {
	repo := profile.NewFileSystemRepository(loadPathResolver())

	fmt.Println("Validating files...")

	missing := 0
	for _, status := range repo.Check() {
		if status.Exists {
			fmt.Printf("✓ %s\n", status.Name)
		} else {
			fmt.Printf("✗ %s - Missing\n", status.Name)
			missing++
		}
	}

	slog.Info("Validation completed", "missing", missing)
}
