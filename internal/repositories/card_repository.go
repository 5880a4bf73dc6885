package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UndyingTomb/CSCE-548/internal/models"
)

type CardRepository struct {
	pool *pgxpool.Pool
}

func NewCardRepository(pool *pgxpool.Pool) *CardRepository {
	return &CardRepository{pool: pool}
}

func (r *CardRepository) Create(ctx context.Context, card *models.Card) (int64, error) {
	query := `
		INSERT INTO card (set_id, card_number, card_name, rarity, card_type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING card_id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		card.SetID,
		card.CardNumber,
		card.CardName,
		card.Rarity,
		card.CardType,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetAll lists every card with its set code and name, ordered by set release
// date then card number.
func (r *CardRepository) GetAll(ctx context.Context) ([]models.Card, error) {
	query := `
		SELECT c.card_id, c.set_id, c.card_number, c.card_name, c.rarity, c.card_type,
		       s.set_code, s.set_name
		FROM card c
		JOIN card_set s ON s.set_id = c.set_id
		ORDER BY s.release_date, c.card_number COLLATE "C", c.card_id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []models.Card{}
	for rows.Next() {
		var card models.Card
		err := rows.Scan(
			&card.CardID,
			&card.SetID,
			&card.CardNumber,
			&card.CardName,
			&card.Rarity,
			&card.CardType,
			&card.SetCode,
			&card.SetName,
		)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}

func (r *CardRepository) GetByID(ctx context.Context, id int64) (*models.Card, error) {
	query := `
		SELECT card_id, set_id, card_number, card_name, rarity, card_type
		FROM card WHERE card_id = $1
	`

	var card models.Card
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&card.CardID,
		&card.SetID,
		&card.CardNumber,
		&card.CardName,
		&card.Rarity,
		&card.CardType,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &card, nil
}

// GetBySet lists the cards of one set ordered by card number, byte-lexically.
func (r *CardRepository) GetBySet(ctx context.Context, setID int64) ([]models.Card, error) {
	query := `
		SELECT card_id, set_id, card_number, card_name, rarity, card_type
		FROM card WHERE set_id = $1
		ORDER BY card_number COLLATE "C", card_id
	`

	rows, err := r.pool.Query(ctx, query, setID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cards := []models.Card{}
	for rows.Next() {
		var card models.Card
		err := rows.Scan(
			&card.CardID,
			&card.SetID,
			&card.CardNumber,
			&card.CardName,
			&card.Rarity,
			&card.CardType,
		)
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}

	return cards, rows.Err()
}

func (r *CardRepository) Update(ctx context.Context, id int64, fields models.Fields) error {
	query, args, ok := buildUpdate("card", "card_id", id, fields, models.CardColumns)
	if !ok {
		return nil
	}
	_, err := r.pool.Exec(ctx, query, args...)
	return err
}

func (r *CardRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM card WHERE card_id = $1`, id)
	return err
}
