package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jonathan/moviefy/internal/types"
)

// moviesSchema creates the catalog table. Titles are unique so imports can upsert.
const moviesSchema = `CREATE TABLE IF NOT EXISTS movies (
	id BIGSERIAL PRIMARY KEY,
	title TEXT NOT NULL UNIQUE,
	career_skills TEXT NOT NULL DEFAULT '',
	industry TEXT NOT NULL DEFAULT '',
	career_stage TEXT,
	summary TEXT,
	educational_value_score INTEGER DEFAULT 5
)`

const selectMoviesSQL = `SELECT id, title,
	COALESCE(career_skills, ''), COALESCE(industry, ''),
	COALESCE(career_stage, ''), COALESCE(summary, ''),
	COALESCE(educational_value_score, 0)
	FROM movies ORDER BY id`

const upsertMovieSQL = `INSERT INTO movies (title, career_skills, industry, career_stage, summary, educational_value_score)
	VALUES ($1, $2, $3, $4, $5, $6)
	ON CONFLICT (title) DO UPDATE SET
		career_skills = EXCLUDED.career_skills,
		industry = EXCLUDED.industry,
		career_stage = EXCLUDED.career_stage,
		summary = EXCLUDED.summary,
		educational_value_score = EXCLUDED.educational_value_score`

// EnsureSchema creates the movies table if it does not exist
func (db *DB) EnsureSchema(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, moviesSchema); err != nil {
		return fmt.Errorf("failed to create movies table: %w", err)
	}
	return nil
}

// LoadCatalog reads every movie ordered by id. Null columns come back as empty values.
func (db *DB) LoadCatalog(ctx context.Context) ([]types.CatalogItem, error) {
	rows, err := db.pool.Query(ctx, selectMoviesSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to query movies: %w", err)
	}
	defer rows.Close()

	var items []types.CatalogItem
	for rows.Next() {
		var item types.CatalogItem
		if err := rows.Scan(&item.ID, &item.Title, &item.CareerSkills, &item.Industry,
			&item.CareerStage, &item.Summary, &item.EducationalValueScore); err != nil {
			return nil, fmt.Errorf("failed to scan movie: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate movies: %w", err)
	}
	return items, nil
}

// UpsertCatalogItems inserts or updates items keyed by title in a single batch.
// Returns the number of rows written.
func (db *DB) UpsertCatalogItems(ctx context.Context, items []types.CatalogItem) (int, error) {
	if len(items) == 0 {
		return 0, nil
	}

	batch := &pgx.Batch{}
	for i := range items {
		item := &items[i]
		batch.Queue(upsertMovieSQL, item.Title, item.CareerSkills, item.Industry,
			item.CareerStage, item.Summary, item.EducationalValue())
	}

	results := db.pool.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()

	written := 0
	for i := range items {
		if _, err := results.Exec(); err != nil {
			return written, fmt.Errorf("failed to upsert movie %q: %w", items[i].Title, err)
		}
		written++
	}
	return written, nil
}

// CountCatalogItems returns the number of movies stored
func (db *DB) CountCatalogItems(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM movies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count movies: %w", err)
	}
	return count, nil
}
