// Copyright (c) 2026 Gamelens. All rights reserved.
// Author: dev@gamelens.app

package preset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gamelens/gamelens/internal/platform/database/schema"
	"github.com/gamelens/gamelens/internal/platform/dberr"
)

// PostgresRepository stores user presets one row each, with the filter
// config as a jsonb column. It is the durable multi-instance alternative to
// the Redis document.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository constructs a Postgres-backed preset repository.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context) ([]*Preset, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s, %s, %s, %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.UserPresets.ID, schema.UserPresets.Name, schema.UserPresets.Description,
		schema.UserPresets.Category, schema.UserPresets.Tags,
		schema.UserPresets.Filters, schema.UserPresets.CreatedAt, schema.UserPresets.UpdatedAt,
		schema.UserPresets.Table, schema.UserPresets.CreatedAt)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_presets")
	}
	defer rows.Close()

	presets := make([]*Preset, 0)
	for rows.Next() {
		p := &Preset{IsUser: true}
		var filtersJSON []byte
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Category, &p.Tags,
			&filtersJSON, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_preset")
		}
		if err := json.Unmarshal(filtersJSON, &p.Filters); err != nil {
			return nil, dberr.Wrap(err, "decode_preset_filters")
		}
		presets = append(presets, p)
	}
	return presets, rows.Err()
}

func (repository *PostgresRepository) Put(context context.Context, preset *Preset) error {
	filtersJSON, err := json.Marshal(preset.Filters)
	if err != nil {
		return dberr.Wrap(err, "encode_preset_filters")
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (%s) DO UPDATE SET
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s,
			%s = EXCLUDED.%s`,
		schema.UserPresets.Table,
		schema.UserPresets.ID, schema.UserPresets.Name, schema.UserPresets.Description,
		schema.UserPresets.Category, schema.UserPresets.Tags,
		schema.UserPresets.Filters, schema.UserPresets.CreatedAt, schema.UserPresets.UpdatedAt,
		schema.UserPresets.ID,
		schema.UserPresets.Name, schema.UserPresets.Name,
		schema.UserPresets.Description, schema.UserPresets.Description,
		schema.UserPresets.Category, schema.UserPresets.Category,
		schema.UserPresets.Tags, schema.UserPresets.Tags,
		schema.UserPresets.Filters, schema.UserPresets.Filters,
		schema.UserPresets.UpdatedAt, schema.UserPresets.UpdatedAt)

	_, err = repository.db.Exec(context, query,
		preset.ID, preset.Name, preset.Description, preset.Category, preset.Tags,
		filtersJSON, preset.CreatedAt, preset.UpdatedAt)
	return dberr.Wrap(err, "put_preset")
}

func (repository *PostgresRepository) Delete(context context.Context, id string) (bool, error) {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.UserPresets.Table, schema.UserPresets.ID)

	tag, err := repository.db.Exec(context, query, id)
	if err != nil {
		return false, dberr.Wrap(err, "delete_preset")
	}
	return tag.RowsAffected() > 0, nil
}
