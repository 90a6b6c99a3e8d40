package main

import (
	"context"
	"fmt"

	"github.com/jonathan/moviefy/internal/catalog"
	"github.com/jonathan/moviefy/internal/db"
	"github.com/jonathan/moviefy/internal/recommend"
	"github.com/jonathan/moviefy/internal/textvec"
)

// catalogSource names where the catalog comes from. A database URL wins over a file.
type catalogSource struct {
	File        string
	DatabaseURL string
}

// resolveSource applies flag overrides on top of the loaded config.
func resolveSource(file, databaseURL string) catalogSource {
	src := catalogSource{File: cfg.Catalog.File, DatabaseURL: cfg.Database.URL}
	if file != "" {
		src = catalogSource{File: file}
	}
	if databaseURL != "" {
		src.DatabaseURL = databaseURL
	}
	return src
}

// openStore returns the catalog store for src and a function releasing it.
func openStore(ctx context.Context, src catalogSource) (catalog.Store, func(), error) {
	if src.DatabaseURL != "" {
		database, err := db.Connect(ctx, src.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
		}
		return database, database.Close, nil
	}
	if src.File == "" {
		return nil, nil, fmt.Errorf("no catalog configured: set --catalog or a database URL")
	}
	return catalog.NewFileStore(src.File), func() {}, nil
}

// engineOptions builds engine options from config and an optional weights override.
func engineOptions(weightsName string) ([]recommend.Option, error) {
	if weightsName == "" {
		weightsName = cfg.Engine.Weights
	}
	weights, err := recommend.WeightsByName(weightsName)
	if err != nil {
		return nil, err
	}

	vecOpts, err := textvec.OptionsByName(cfg.Engine.Vectorizer)
	if err != nil {
		return nil, err
	}
	if cfg.Engine.MinDF > 0 {
		vecOpts.MinDF = cfg.Engine.MinDF
	}
	vecOpts.MaxFeatures = cfg.Engine.MaxFeatures

	return []recommend.Option{
		recommend.WithWeights(weights),
		recommend.WithVectorizerOptions(vecOpts),
	}, nil
}
