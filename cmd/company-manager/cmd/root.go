// Package cmd provides CLI commands for company-manager.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/company-manager/pkg/codec"
	"github.com/pigeonworks-llc/company-manager/pkg/company"
	"github.com/pigeonworks-llc/company-manager/pkg/config"
	"github.com/pigeonworks-llc/company-manager/pkg/pathutil"
	"github.com/pigeonworks-llc/company-manager/pkg/profile"
)

var (
	cfgFile string
	baseDir string
	debug   bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "company-manager",
	Short: "Manage company details across multiple formats",
	Long: `company-manager keeps the company profile synchronized across its
flat-file representations (JSON, INI, CSV, YAML and a plain-text summary)
and exposes the brand logo catalog.

It supports:
- Reading the profile back from any decodable format
- Interactive editing with a group menu
- Rewriting every file format in one run
- Export history tracking in SQLite
- Logo catalog lookup, search, JSON export and HTML gallery

Example:
  company-manager read json
  company-manager edit
  company-manager update-all
  company-manager logos search white`,
	Run: runRoot,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .env)")
	rootCmd.PersistentFlags().StringVar(&baseDir, "dir", "", "base directory for profile files (overrides COMPANY_DETAILS_DIR)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		setupLogging(debug)
	}

	// Add subcommands
	rootCmd.AddCommand(readCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(updateAllCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(logosCmd)
}

func runRoot(cmd *cobra.Command, args []string) {
	repo := profile.NewFileSystemRepository(loadPathResolver())
	rec := loadRecord(repo)

	fmt.Println("Company Details Manager")
	fmt.Println("==============================")
	printProfile(rec)
	fmt.Println("\nUse --help to see available commands")
	fmt.Println("Quick commands:")
	fmt.Println("  company-manager edit        : Interactive editing")
	fmt.Println("  company-manager update-all  : Update all file formats")
	fmt.Println("  company-manager validate    : Check if all files exist")
}

// Helper functions

func setupLogging(debugEnabled bool) {
	logLevel := slog.LevelInfo
	if debugEnabled {
		logLevel = slog.LevelDebug
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)
}

// Helper function to get config file path.
func getConfigFile() string {
	if cfgFile != "" {
		return cfgFile
	}
	return "" // Will use default .env loading
}

// loadPathResolver loads the configuration and builds the path resolver.
// The --dir flag takes precedence over the environment.
func loadPathResolver() *pathutil.PathResolver {
	cfg, err := config.Load(getConfigFile())
	exitOnError(err, "failed to load configuration")

	if baseDir != "" {
		cfg.Profile.Dir = baseDir
	}
	if err := cfg.Validate(); err != nil {
		exitOnError(err, "invalid configuration")
	}

	// DEBUG in the environment raises the log level like --debug does
	if cfg.Debug && !debug {
		setupLogging(true)
	}

	return pathutil.New(pathutil.Config{
		ProfileDir:   cfg.Profile.Dir,
		DatabasePath: cfg.Profile.DBPath,
		ExportsDir:   cfg.Profile.ExportsDir,
	})
}

// loadRecord reads the stored JSON profile, falling back to the built-in
// company data when no profile has been written yet.
func loadRecord(repo profile.Repository) *company.Record {
	rec, err := repo.Read(codec.FormatJSON)
	if errors.Is(err, fs.ErrNotExist) {
		return company.NewRecord()
	}
	exitOnError(err, "failed to load company profile")
	return rec
}

// printProfile displays the company profile in a readable format.
func printProfile(rec *company.Record) {
	fmt.Printf("Company: %s\n", rec.Name)
	fmt.Printf("Registration: %s\n", rec.RegistrationNumber)
	fmt.Printf("Address: %s\n", rec.FullAddress())
	fmt.Printf("Contact: %s | %s | WhatsApp: %s\n", rec.Email, rec.Phone, rec.WhatsApp)
	fmt.Printf("Bank: %s - %s\n", rec.Bank, rec.AccountNumber)
}

// Helper function to handle errors and exit.
func exitOnError(err error, msg string) {
	if err != nil {
		slog.Error(msg, "error", err)
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
		os.Exit(1)
	}
}
