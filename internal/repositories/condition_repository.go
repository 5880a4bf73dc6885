package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UndyingTomb/CSCE-548/internal/models"
)

type ConditionRepository struct {
	pool *pgxpool.Pool
}

func NewConditionRepository(pool *pgxpool.Pool) *ConditionRepository {
	return &ConditionRepository{pool: pool}
}

func (r *ConditionRepository) Create(ctx context.Context, condition *models.Condition) (int64, error) {
	query := `
		INSERT INTO card_condition (condition_code, description)
		VALUES ($1, $2)
		RETURNING condition_id
	`

	var id int64
	if err := r.pool.QueryRow(ctx, query, condition.ConditionCode, condition.Description).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *ConditionRepository) GetAll(ctx context.Context) ([]models.Condition, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT condition_id, condition_code, description
		FROM card_condition
		ORDER BY condition_id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	conditions := []models.Condition{}
	for rows.Next() {
		var c models.Condition
		if err := rows.Scan(&c.ConditionID, &c.ConditionCode, &c.Description); err != nil {
			return nil, err
		}
		conditions = append(conditions, c)
	}

	return conditions, rows.Err()
}

func (r *ConditionRepository) GetByID(ctx context.Context, id int64) (*models.Condition, error) {
	query := `
		SELECT condition_id, condition_code, description
		FROM card_condition WHERE condition_id = $1
	`

	var c models.Condition
	err := r.pool.QueryRow(ctx, query, id).Scan(&c.ConditionID, &c.ConditionCode, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &c, nil
}

func (r *ConditionRepository) Update(ctx context.Context, id int64, fields models.Fields) error {
	query, args, ok := buildUpdate("card_condition", "condition_id", id, fields, models.ConditionColumns)
	if !ok {
		return nil
	}
	_, err := r.pool.Exec(ctx, query, args...)
	return err
}

func (r *ConditionRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM card_condition WHERE condition_id = $1`, id)
	return err
}
