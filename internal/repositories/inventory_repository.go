package repositories

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/UndyingTomb/CSCE-548/internal/models"
)

const inventoryColumns = `i.item_id, i.card_id, i.condition_id, i.is_foil, i.is_graded,
		       i.graded_company, i.grade, i.quantity, i.purchase_price, i.purchase_date, i.notes`

const inventoryJoined = `
		SELECT ` + inventoryColumns + `,
		       c.card_name, c.card_number, c.rarity, s.set_code, s.set_name, cc.condition_code
		FROM inventory_item i
		JOIN card c ON c.card_id = i.card_id
		JOIN card_set s ON s.set_id = c.set_id
		JOIN card_condition cc ON cc.condition_id = i.condition_id
`

type InventoryRepository struct {
	pool *pgxpool.Pool
}

func NewInventoryRepository(pool *pgxpool.Pool) *InventoryRepository {
	return &InventoryRepository{pool: pool}
}

func (r *InventoryRepository) Create(ctx context.Context, item *models.InventoryItem) (int64, error) {
	query := `
		INSERT INTO inventory_item
		(card_id, condition_id, is_foil, is_graded, graded_company, grade,
		 quantity, purchase_price, purchase_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING item_id
	`

	var id int64
	err := r.pool.QueryRow(ctx, query,
		item.CardID,
		item.ConditionID,
		int16(item.IsFoil),
		int16(item.IsGraded),
		item.GradedCompany,
		item.Grade,
		item.Quantity,
		item.PurchasePrice,
		item.PurchaseDate,
		item.Notes,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

// GetAll lists every owned item joined with its card, set and condition.
func (r *InventoryRepository) GetAll(ctx context.Context) ([]models.InventoryItem, error) {
	query := inventoryJoined + `
		ORDER BY s.release_date, c.card_number COLLATE "C", i.item_id
	`
	return r.list(ctx, query)
}

// GetBySet lists the owned items whose card belongs to setID.
func (r *InventoryRepository) GetBySet(ctx context.Context, setID int64) ([]models.InventoryItem, error) {
	query := inventoryJoined + `
		WHERE c.set_id = $1
		ORDER BY c.card_number COLLATE "C", i.item_id
	`
	return r.list(ctx, query, setID)
}

func (r *InventoryRepository) GetByID(ctx context.Context, id int64) (*models.InventoryItem, error) {
	query := `SELECT ` + inventoryColumns + ` FROM inventory_item i WHERE i.item_id = $1`

	var (
		item         models.InventoryItem
		foil, graded int16
	)
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ItemID,
		&item.CardID,
		&item.ConditionID,
		&foil,
		&graded,
		&item.GradedCompany,
		&item.Grade,
		&item.Quantity,
		&item.PurchasePrice,
		&item.PurchaseDate,
		&item.Notes,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	item.IsFoil = models.Flag(foil)
	item.IsGraded = models.Flag(graded)

	return &item, nil
}

func (r *InventoryRepository) Update(ctx context.Context, id int64, fields models.Fields) error {
	query, args, ok := buildUpdate("inventory_item", "item_id", id, fields, models.InventoryColumns)
	if !ok {
		return nil
	}
	_, err := r.pool.Exec(ctx, query, args...)
	return err
}

func (r *InventoryRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM inventory_item WHERE item_id = $1`, id)
	return err
}

func (r *InventoryRepository) list(ctx context.Context, query string, args ...any) ([]models.InventoryItem, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.InventoryItem{}
	for rows.Next() {
		var (
			item         models.InventoryItem
			foil, graded int16
		)
		err := rows.Scan(
			&item.ItemID,
			&item.CardID,
			&item.ConditionID,
			&foil,
			&graded,
			&item.GradedCompany,
			&item.Grade,
			&item.Quantity,
			&item.PurchasePrice,
			&item.PurchaseDate,
			&item.Notes,
			&item.CardName,
			&item.CardNumber,
			&item.Rarity,
			&item.SetCode,
			&item.SetName,
			&item.ConditionCode,
		)
		if err != nil {
			return nil, err
		}
		item.IsFoil = models.Flag(foil)
		item.IsGraded = models.Flag(graded)
		items = append(items, item)
	}

	return items, rows.Err()
}
