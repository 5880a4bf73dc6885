package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func RunMigrations(ctx context.Context, l logrus.FieldLogger, pool *pgxpool.Pool) error {
	migrations := []string{
		createCardSetTable,
		createCardTable,
		createCardConditionTable,
		createInventoryItemTable,
	}

	for i, migration := range migrations {
		l.Debugf("Running migration %d/%d", i+1, len(migrations))
		if _, err := pool.Exec(ctx, migration); err != nil {
			return fmt.Errorf("migration %d failed: %w", i+1, err)
		}
	}

	l.Info("All migrations completed successfully")
	return nil
}

const createCardSetTable = `
CREATE TABLE IF NOT EXISTS card_set (
  set_id BIGSERIAL PRIMARY KEY,
  set_code TEXT NOT NULL,
  set_name TEXT NOT NULL,
  release_date TEXT NOT NULL DEFAULT '',
  era TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_card_set_release_date ON card_set(release_date);
`

const createCardTable = `
CREATE TABLE IF NOT EXISTS card (
  card_id BIGSERIAL PRIMARY KEY,
  set_id BIGINT NOT NULL REFERENCES card_set(set_id) ON DELETE RESTRICT,
  card_number TEXT NOT NULL,
  card_name TEXT NOT NULL,
  rarity TEXT NOT NULL CHECK (rarity IN (
    'Common', 'Uncommon', 'Rare', 'Double Rare', 'Ultra Rare',
    'IR', 'SIR', 'Hyper Rare', 'Promo'
  )),
  card_type TEXT NOT NULL CHECK (card_type IN ('Pokémon', 'Trainer', 'Energy')),
  CONSTRAINT card_set_number_key UNIQUE (set_id, card_number)
);

CREATE INDEX IF NOT EXISTS idx_card_set_id ON card(set_id);
`

const createCardConditionTable = `
CREATE TABLE IF NOT EXISTS card_condition (
  condition_id BIGSERIAL PRIMARY KEY,
  condition_code TEXT NOT NULL UNIQUE,
  description TEXT NOT NULL
);
`

const createInventoryItemTable = `
CREATE TABLE IF NOT EXISTS inventory_item (
  item_id BIGSERIAL PRIMARY KEY,
  card_id BIGINT NOT NULL REFERENCES card(card_id) ON DELETE RESTRICT,
  condition_id BIGINT NOT NULL REFERENCES card_condition(condition_id) ON DELETE RESTRICT,
  is_foil SMALLINT NOT NULL DEFAULT 0 CHECK (is_foil IN (0, 1)),
  is_graded SMALLINT NOT NULL DEFAULT 0 CHECK (is_graded IN (0, 1)),
  graded_company TEXT,
  grade NUMERIC(3,1) CHECK (grade >= 0 AND grade <= 10),
  quantity INT NOT NULL DEFAULT 1 CHECK (quantity >= 0),
  purchase_price NUMERIC(10,2) NOT NULL DEFAULT 0 CHECK (purchase_price >= 0),
  purchase_date TEXT,
  notes TEXT,
  CONSTRAINT inventory_item_grading_check CHECK (
    (is_graded = 1 AND graded_company IS NOT NULL AND grade IS NOT NULL)
    OR (is_graded = 0 AND graded_company IS NULL AND grade IS NULL)
  )
);

CREATE INDEX IF NOT EXISTS idx_inventory_item_card_id ON inventory_item(card_id);
CREATE INDEX IF NOT EXISTS idx_inventory_item_condition_id ON inventory_item(condition_id);
`
