package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UndyingTomb/CSCE-548/internal/models"
)

type SetRepository struct {
	pool *pgxpool.Pool
}

func NewSetRepository(pool *pgxpool.Pool) *SetRepository {
	return &SetRepository{pool: pool}
}

func (r *SetRepository) Create(ctx context.Context, set *models.CardSet) (int64, error) {
	query := `
		INSERT INTO card_set (set_code, set_name, release_date, era)
		VALUES ($1, $2, $3, $4)
		RETURNING set_id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		set.SetCode,
		set.SetName,
		set.ReleaseDate,
		set.Era,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SetRepository) GetAll(ctx context.Context) ([]models.CardSet, error) {
	query := `
		SELECT set_id, set_code, set_name, release_date, era
		FROM card_set
		ORDER BY release_date, set_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sets := []models.CardSet{}
	for rows.Next() {
		var set models.CardSet
		if err := rows.Scan(&set.SetID, &set.SetCode, &set.SetName, &set.ReleaseDate, &set.Era); err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}

	return sets, rows.Err()
}

// GetByID returns nil, nil when no set has the given id.
func (r *SetRepository) GetByID(ctx context.Context, id int64) (*models.CardSet, error) {
	query := `
		SELECT set_id, set_code, set_name, release_date, era
		FROM card_set WHERE set_id = $1
	`

	var set models.CardSet
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&set.SetID,
		&set.SetCode,
		&set.SetName,
		&set.ReleaseDate,
		&set.Era,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &set, nil
}

// Update applies the allow-listed subset of fields in one statement. It is a
// no-op when no allowed field is present.
func (r *SetRepository) Update(ctx context.Context, id int64, fields models.Fields) error {
	query, args, ok := buildUpdate("card_set", "set_id", id, fields, models.SetColumns)
	if !ok {
		return nil
	}
	_, err := r.pool.Exec(ctx, query, args...)
	return err
}

// Delete fails with a foreign-key violation while cards still reference the set.
func (r *SetRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM card_set WHERE set_id = $1`, id)
	return err
}
