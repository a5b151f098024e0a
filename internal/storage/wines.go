package storage

import (
	"context"
	"database/sql"
	"fmt"

	"cellar/internal/common"
	"cellar/internal/model"
)

// SaveWines replaces the cached catalog with the given records.
func (s *SQLiteStorage) SaveWines(ctx context.Context, wines []model.Wine) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM wines`); err != nil {
		return fmt.Errorf("failed to clear wines: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO wines
		(id, rank, name, winery, varietal, vintage, region, country, type, score, price, description, image_url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for _, w := range wines {
		if _, err := stmt.ExecContext(ctx,
			w.ID, w.Rank, w.Name, w.Winery, w.Varietal, w.Vintage,
			w.Region, w.Country, w.Type, w.Score, w.Price, w.Description, w.ImageURL,
		); err != nil {
			return fmt.Errorf("failed to insert wine %d: %w", w.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit wines: %w", err)
	}

	common.LogDebug("Replaced wine catalog", common.Fields{"wines": len(wines)})
	return nil
}

// GetWines returns the cached catalog ordered by rank, position order for
// unranked records.
func (s *SQLiteStorage) GetWines(ctx context.Context) ([]model.Wine, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `SELECT
		id, rank, name, winery, varietal, vintage, region, country, type, score, price, description, image_url
		FROM wines
		ORDER BY CASE WHEN rank > 0 THEN rank ELSE id END`)
	if err != nil {
		return nil, fmt.Errorf("failed to query wines: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var wines []model.Wine
	for rows.Next() {
		var w model.Wine
		var varietal, vintage, region, country, wtype, description, imageURL sql.NullString
		if err := rows.Scan(
			&w.ID, &w.Rank, &w.Name, &w.Winery, &varietal, &vintage,
			&region, &country, &wtype, &w.Score, &w.Price, &description, &imageURL,
		); err != nil {
			return nil, fmt.Errorf("failed to scan wine: %w", err)
		}
		w.Varietal = varietal.String
		w.Vintage = vintage.String
		w.Region = region.String
		w.Country = country.String
		w.Type = wtype.String
		w.Description = description.String
		w.ImageURL = imageURL.String
		wines = append(wines, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate wines: %w", err)
	}
	return wines, nil
}

// CountWines reports how many catalog records are cached.
func (s *SQLiteStorage) CountWines(ctx context.Context) (int, error) {
	if err := validateContext(ctx); err != nil {
		return 0, err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM wines`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count wines: %w", err)
	}
	return count, nil
}
