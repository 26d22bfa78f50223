package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/company-manager/pkg/codec"
	"github.com/pigeonworks-llc/company-manager/pkg/profile"
)

var readRaw bool

// readCmd represents the read command.
var readCmd = &cobra.Command{
	Use:   "read <format>",
	Short: "Read the company profile back from one format",
	Long: `Read the company profile from its file in the given format and
display it.

Only decodable formats can be read back: json, ini and yaml. The csv and
text files are export-only projections and cannot be read.

Example:
  company-manager read json
  company-manager read json --raw
  company-manager read ini`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"json", "ini", "yaml", "csv", "text"},
	Run:       runRead,
}

func init() {
	readCmd.Flags().BoolVar(&readRaw, "raw", false, "print the profile re-encoded as pretty JSON")
}

func runRead(cmd *cobra.Command, args []string) {
	format := codec.Format(args[0])
	slog.Debug("Reading profile", "format", format)

	repo := profile.NewFileSystemRepository(loadPathResolver())

	rec, err := repo.Read(format)
	exitOnError(err, fmt.Sprintf("failed to read %s profile", format))

	if readRaw {
		data, err := (&codec.JSONCodec{}).Encode(rec)
		exitOnError(err, "failed to render profile")
		fmt.Println(string(data))
		return
	}

	printProfile(rec)
}
