// Package pathutil provides centralized path management for profile files and directories.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pigeonworks-llc/company-manager/pkg/codec"
)

// PathResolver manages paths for profile files, the export-history
// database, and generated exports.
type PathResolver struct {
	profileDir   string
	databasePath string
	exportsDir   string
}

// Config represents the configuration for PathResolver.
type Config struct {
	// ProfileDir is the directory holding the company profile files
	// (e.g., ~/jkwi/company-details)
	ProfileDir string
	// DatabasePath is the path to the SQLite database file for export history
	DatabasePath string
	// ExportsDir is the directory for generated files such as the logo
	// catalog and gallery
	ExportsDir string
}

// New creates a new PathResolver with the given configuration.
// If DatabasePath is empty, it defaults to {ProfileDir}/.history/exports.db
// If ExportsDir is empty, it defaults to {ProfileDir}/exports
func New(config Config) *PathResolver {
	dbPath := config.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(config.ProfileDir, ".history", "exports.db")
	}

	exportsDir := config.ExportsDir
	if exportsDir == "" {
		exportsDir = filepath.Join(config.ProfileDir, "exports")
	}

	return &PathResolver{
		profileDir:   config.ProfileDir,
		databasePath: dbPath,
		exportsDir:   exportsDir,
	}
}

// profileFileNames maps each format to its fixed file name. The plain
// text summary keeps its historical extension-less name.
var profileFileNames = map[codec.Format]string{
	codec.FormatJSON: "company_details.json",
	codec.FormatINI:  "company_details.ini",
	codec.FormatCSV:  "company_details.csv",
	codec.FormatYAML: "company_details.yaml",
	codec.FormatText: "COMPANY DETAILS",
}

// ProfileFileName returns the fixed file name for a format.
func ProfileFileName(format codec.Format) (string, error) {
	name, ok := profileFileNames[format]
	if !ok {
		return "", fmt.Errorf("no profile file name for format %q", format)
	}
	return name, nil
}

// GetProfileDir returns the profile directory.
func (p *PathResolver) GetProfileDir() string {
	return p.profileDir
}

// GetDatabasePath returns the database file path.
func (p *PathResolver) GetDatabasePath() string {
	return p.databasePath
}

// GetExportsDir returns the exports directory.
func (p *PathResolver) GetExportsDir() string {
	return p.exportsDir
}

// GetProfilePath returns the file path for a format.
// Example: ~/jkwi/company-details/company_details.json
func (p *PathResolver) GetProfilePath(format codec.Format) (string, error) {
	name, err := ProfileFileName(format)
	if err != nil {
		return "", err
	}
	return filepath.Join(p.profileDir, name), nil
}

// GetExportPath returns the path for a generated export file.
// Example: ~/jkwi/company-details/exports/logos.json
func (p *PathResolver) GetExportPath(filename string) string {
	return filepath.Join(p.exportsDir, filename)
}

// EnsureDir creates a directory if it doesn't exist.
// It creates all parent directories as needed (like mkdir -p).
func (p *PathResolver) EnsureDir(dirPath string) error {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dirPath, err)
	}
	return nil
}

// EnsureParentDir ensures the parent directory of a file exists.
func (p *PathResolver) EnsureParentDir(filePath string) error {
	dir := filepath.Dir(filePath)
	return p.EnsureDir(dir)
}

// FileExists checks if a file exists.
func (p *PathResolver) FileExists(filePath string) bool {
	_, err := os.Stat(filePath)
	return err == nil
}

// IsDir checks if a path is a directory.
func (p *PathResolver) IsDir(dirPath string) bool {
	info, err := os.Stat(dirPath)
	if err != nil {
		return false
	}
	return info.IsDir()
}
