package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/moviefy/internal/logging"
	"github.com/jonathan/moviefy/internal/observability"
	"github.com/jonathan/moviefy/internal/profile"
	"github.com/jonathan/moviefy/internal/recommend"
	"github.com/jonathan/moviefy/internal/schemas"
	"github.com/jonathan/moviefy/internal/types"
	"github.com/spf13/cobra"
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend movies and series for a career profile",
	Long:  "Ranks the catalog against a CareerProfile JSON file and writes explained recommendations as JSON.",
	RunE:  runRecommend,
}

var (
	recommendProfile     string
	recommendCatalog     string
	recommendDatabaseURL string
	recommendTopN        int
	recommendWeights     string
	recommendOutput      string
	recommendVerbose     bool
)

func init() {
	recommendCmd.Flags().StringVarP(&recommendProfile, "profile", "p", "", "Path to input CareerProfile JSON file (required)")
	recommendCmd.Flags().StringVarP(&recommendCatalog, "catalog", "c", "", "Path to catalog JSON file (default from config)")
	recommendCmd.Flags().StringVar(&recommendDatabaseURL, "database-url", "", "PostgreSQL URL to load the catalog from")
	recommendCmd.Flags().IntVarP(&recommendTopN, "top-n", "n", 0, "Number of recommendations (default from config, max 15)")
	recommendCmd.Flags().StringVar(&recommendWeights, "weights", "", "Signal weights: canonical or reduced (default from config)")
	recommendCmd.Flags().StringVarP(&recommendOutput, "out", "o", "", "Path to output JSON file (default: stdout)")
	recommendCmd.Flags().BoolVarP(&recommendVerbose, "verbose", "v", false, "Print profile, signal and recommendation summaries")

	if err := recommendCmd.MarkFlagRequired("profile"); err != nil {
		panic(fmt.Sprintf("failed to mark profile flag as required: %v", err))
	}

	rootCmd.AddCommand(recommendCmd)
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	ctx := contextOf(cmd)
	logger := logging.Component("cli")

	// 1. Load and check the profile
	content, err := os.ReadFile(recommendProfile)
	if err != nil {
		return fmt.Errorf("failed to read profile file %s: %w", recommendProfile, err)
	}
	if schemaPath := schemas.ResolveSchemaPath(schemas.CareerProfileSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, content); err != nil {
			logger.Warn().Err(err).Msg("profile does not match schema; continuing with normalized values")
		}
	} else {
		logger.Warn().Str("schema", schemas.CareerProfileSchema).Msg("schema not found, skipping profile validation")
	}

	p, err := profile.FromJSON(content)
	if err != nil {
		return err
	}

	// 2. Build the engine
	store, closeStore, err := openStore(ctx, resolveSource(recommendCatalog, recommendDatabaseURL))
	if err != nil {
		return err
	}
	defer closeStore()

	opts, err := engineOptions(recommendWeights)
	if err != nil {
		return err
	}
	engine := recommend.NewEngine(store, opts...)

	topN := recommendTopN
	if topN == 0 {
		topN = cfg.Engine.TopN
	}

	// 3. Rank
	recs := engine.GenerateRecommendations(ctx, p, topN)
	if stats := engine.Stats(); !stats.Ready {
		logger.Warn().Str("error", stats.LastError).Msg("no catalog index available")
	}

	if recommendVerbose {
		printer := observability.NewPrinter(cmd.ErrOrStderr())
		printer.PrintCareerProfile(&p)
		printer.PrintScores(recommend.Rank(engine.Score(ctx, p), recommend.ClampTopN(topN)))
		printer.PrintRecommendations(recs)
	}

	// 4. Write output
	jsonOutput, err := json.MarshalIndent(types.RecommendResponse{Recommendations: recs}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal recommendations to JSON: %w", err)
	}

	if schemaPath := schemas.ResolveSchemaPath(schemas.RecommendationsSchema); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, jsonOutput); err != nil {
			return fmt.Errorf("recommendations failed schema validation: %w", err)
		}
	}

	if recommendOutput == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), string(jsonOutput))
		return err
	}

	if outputDir := filepath.Dir(recommendOutput); outputDir != "" && outputDir != "." {
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", outputDir, err)
		}
	}
	if err := os.WriteFile(recommendOutput, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write output file %s: %w", recommendOutput, err)
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d recommendations to %s\n", len(recs), recommendOutput)
	return nil
}
