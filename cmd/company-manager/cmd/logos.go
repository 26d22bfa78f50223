package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/pigeonworks-llc/company-manager/pkg/logos"
)

var (
	logosCategory string
	logosCompact  bool
	logosOutput   string
)

// logosCmd groups the logo catalog subcommands.
var logosCmd = &cobra.Command{
	Use:   "logos",
	Short: "Look up and export the brand logo catalog",
	Long: `Work with the static catalog of JKWI brand logos.

The catalog lists every logo with its category, description and GitHub
download URL. It can be filtered, searched, exported as JSON for web
integrations, or rendered as an HTML gallery.

Example:
  company-manager logos list --category division
  company-manager logos get jk_winners_investment_main
  company-manager logos search white
  company-manager logos export --output logos.json
  company-manager logos gallery`,
}

// logosListCmd represents the logos list command.
var logosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List logos, optionally filtered by category",
	Run:   runLogosList,
}

// logosGetCmd represents the logos get command.
var logosGetCmd = &cobra.Command{
	Use:   "get <name>",
	Short: "Show one logo by its catalog name",
	Args:  cobra.ExactArgs(1),
	Run:   runLogosGet,
}

// logosSearchCmd represents the logos search command.
var logosSearchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search logos by name, description or filename",
	Args:  cobra.ExactArgs(1),
	Run:   runLogosSearch,
}

// logosCategoriesCmd represents the logos categories command.
var logosCategoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "List the logo categories",
	Run:   runLogosCategories,
}

// logosExportCmd represents the logos export command.
var logosExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the catalog as JSON",
	Long: `Export the logo catalog as a JSON document with a metadata
header and the flat logo list.

By default the document is written to the exports directory; --output
overrides the destination and "-" writes to standard output.

Example:
  company-manager logos export
  company-manager logos export --compact --output -`,
	Run: runLogosExport,
}

// logosGalleryCmd represents the logos gallery command.
var logosGalleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Render the catalog as an HTML gallery",
	Long: `Render a static HTML gallery of every logo grouped by
category, loading the images from their GitHub URLs.

By default the page is written to the exports directory; --output
overrides the destination and "-" writes to standard output.

Example:
  company-manager logos gallery
  company-manager logos gallery --output /srv/www/logos.html`,
	Run: runLogosGallery,
}

func init() {
	logosListCmd.Flags().StringVar(&logosCategory, "category", "", "only list logos in this category")
	logosExportCmd.Flags().BoolVar(&logosCompact, "compact", false, "emit compact JSON instead of indented")
	logosExportCmd.Flags().StringVar(&logosOutput, "output", "", "destination path (\"-\" for stdout)")
	logosGalleryCmd.Flags().StringVar(&logosOutput, "output", "", "destination path (\"-\" for stdout)")

	logosCmd.AddCommand(logosListCmd)
	logosCmd.AddCommand(logosGetCmd)
	logosCmd.AddCommand(logosSearchCmd)
	logosCmd.AddCommand(logosCategoriesCmd)
	logosCmd.AddCommand(logosExportCmd)
	logosCmd.AddCommand(logosGalleryCmd)
}

func runLogosList(cmd *cobra.Command, args []string) {
	registry := logos.NewRegistry()

	list := registry.All()
	if logosCategory != "" {
		list = registry.ByCategory(logos.Category(logosCategory))
		if len(list) == 0 {
			fmt.Printf("No logos in category %q\n", logosCategory)
			return
		}
	}

	printLogoTable(list)
	fmt.Printf("\n%d logo(s)\n", len(list))
}

func runLogosGet(cmd *cobra.Command, args []string) {
	registry := logos.NewRegistry()

	logo, ok := registry.ByName(args[0])
	if !ok {
		exitOnError(fmt.Errorf("no logo named %q in the catalog", args[0]), "failed to look up logo")
	}

	fmt.Printf("Name:         %s\n", logo.Name)
	fmt.Printf("Category:     %s\n", logo.Category)
	fmt.Printf("Filename:     %s\n", logo.Filename)
	fmt.Printf("Format:       %s\n", logo.Format())
	fmt.Printf("URL:          %s\n", logo.URL)
	fmt.Printf("Description:  %s\n", logo.Description)
	if logo.SizeHint != "" {
		fmt.Printf("Size hint:    %s\n", logo.SizeHint)
	}
	if logo.ColorVariant != "" {
		fmt.Printf("Variant:      %s\n", logo.ColorVariant)
	}
}

func runLogosSearch(cmd *cobra.Command, args []string) {
	registry := logos.NewRegistry()

	results := registry.Search(args[0])
	if len(results) == 0 {
		fmt.Printf("No logos matching %q\n", args[0])
		return
	}

	printLogoTable(results)
	fmt.Printf("\n%d logo(s) matching %q\n", len(results), args[0])
}

func runLogosCategories(cmd *cobra.Command, args []string) {
	registry := logos.NewRegistry()

	for _, category := range logos.Categories() {
		fmt.Printf("%-10s %2d logo(s)\n", category, len(registry.ByCategory(category)))
	}
	fmt.Printf("\n%d logo(s) in total\n", registry.Len())
}

func runLogosExport(cmd *cobra.Command, args []string) {
	registry := logos.NewRegistry()

	data, err := registry.ExportJSON(!logosCompact)
	exitOnError(err, "failed to export logo catalog")

	writeExport(data, "jkwi_logos.json", "Logo catalog")
}

func runLogosGallery(cmd *cobra.Command, args []string) {
	registry := logos.NewRegistry()

	data, err := registry.Gallery()
	exitOnError(err, "failed to render logo gallery")

	writeExport(data, "jkwi_logo_gallery.html", "Logo gallery")
}

// Helper functions

// printLogoTable lists logos one per line with their catalog attributes.
func printLogoTable(list []logos.Logo) {
	fmt.Printf("%-42s %-10s %-12s %s\n", "NAME", "CATEGORY", "VARIANT", "FILENAME")
	for _, logo := range list {
		variant := logo.ColorVariant
		if variant == "" {
			variant = "-"
		}
		fmt.Printf("%-42s %-10s %-12s %s\n", logo.Name, logo.Category, variant, logo.Filename)
	}
}

// writeExport writes generated catalog output to the --output path,
// defaulting to the exports directory. "-" prints to stdout.
func writeExport(data []byte, defaultName, label string) {
	if logosOutput == "-" {
		os.Stdout.Write(data)
		return
	}

	pathResolver := loadPathResolver()
	path := logosOutput
	if path == "" {
		path = pathResolver.GetExportPath(defaultName)
	}

	err := pathResolver.EnsureParentDir(path)
	exitOnError(err, "failed to create exports directory")

	err = os.WriteFile(path, data, 0644)
	exitOnError(err, fmt.Sprintf("failed to write %s", path))

	slog.Debug("Export written", "path", path, "bytes", len(data))
	fmt.Printf("✓ %s written to %s\n", label, path)
}
