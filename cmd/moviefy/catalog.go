package main

import (
	"fmt"

	"github.com/jonathan/moviefy/internal/catalog"
	"github.com/jonathan/moviefy/internal/db"
	"github.com/jonathan/moviefy/internal/observability"
	"github.com/jonathan/moviefy/internal/recommend"
	"github.com/jonathan/moviefy/internal/schemas"
	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the movie and series catalog",
}

var catalogImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import catalog items from a JSON file into PostgreSQL",
	Long:  "Validates a catalog JSON file, creates the movies table if needed and upserts every item by title.",
	RunE:  runCatalogImport,
}

var catalogStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Build the TF-IDF index and print catalog statistics",
	RunE:  runCatalogStats,
}

var (
	catalogFile        string
	catalogDatabaseURL string
)

func init() {
	catalogCmd.PersistentFlags().StringVarP(&catalogFile, "file", "f", "", "Path to catalog JSON file")
	catalogCmd.PersistentFlags().StringVar(&catalogDatabaseURL, "database-url", "", "PostgreSQL URL (default from config or DATABASE_URL)")

	catalogCmd.AddCommand(catalogImportCmd)
	catalogCmd.AddCommand(catalogStatsCmd)
	rootCmd.AddCommand(catalogCmd)
}

func runCatalogImport(cmd *cobra.Command, _ []string) error {
	ctx := contextOf(cmd)

	if catalogFile == "" {
		return fmt.Errorf("--file is required")
	}
	databaseURL := catalogDatabaseURL
	if databaseURL == "" {
		databaseURL = cfg.Database.URL
	}
	if databaseURL == "" {
		return fmt.Errorf("a database URL is required: set --database-url or DATABASE_URL")
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.CatalogSchema); schemaPath != "" {
		if err := schemas.ValidateJSON(schemaPath, catalogFile); err != nil {
			return fmt.Errorf("catalog file failed schema validation: %w", err)
		}
	}

	items, err := catalog.NewFileStore(catalogFile).LoadCatalog(ctx)
	if err != nil {
		return err
	}

	database, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	if err := database.EnsureSchema(ctx); err != nil {
		return err
	}
	n, err := database.UpsertCatalogItems(ctx, items)
	if err != nil {
		return err
	}
	total, err := database.CountCatalogItems(ctx)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d items (%d in catalog)\n", n, total)
	return nil
}

func runCatalogStats(cmd *cobra.Command, _ []string) error {
	ctx := contextOf(cmd)

	store, closeStore, err := openStore(ctx, resolveSource(catalogFile, catalogDatabaseURL))
	if err != nil {
		return err
	}
	defer closeStore()

	opts, err := engineOptions("")
	if err != nil {
		return err
	}
	engine := recommend.NewEngine(store, opts...)
	engine.Warm(ctx)

	stats := engine.Stats()
	observability.NewPrinter(cmd.OutOrStdout()).PrintIndexStats(stats)
	if !stats.Ready && stats.LastError != "" {
		return fmt.Errorf("failed to build index: %s", stats.LastError)
	}
	return nil
}
