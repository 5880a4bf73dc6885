package repositories_test

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/UndyingTomb/CSCE-548/internal/database"
	"github.com/UndyingTomb/CSCE-548/internal/models"
	"github.com/UndyingTomb/CSCE-548/internal/repositories"
)

// newTestPool starts a disposable Postgres and applies the schema.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	ctr, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("cards"),
		postgres.WithUsername("tracker"),
		postgres.WithPassword("tracker"),
		postgres.BasicWaitStrategies(),
	)
	cleanupContainer(t, ctr)
	if err != nil {
		t.Fatalf("failed to start postgres: %v", err)
	}

	dsn, err := ctr.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("failed to create pool: %v", err)
	}
	t.Cleanup(pool.Close)

	l, _ := test.NewNullLogger()
	if err := database.RunMigrations(ctx, l, pool); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	// Migrations are idempotent.
	if err := database.RunMigrations(ctx, l, pool); err != nil {
		t.Fatalf("second migration run failed: %v", err)
	}
	return pool
}

func resetTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`TRUNCATE inventory_item, card, card_condition, card_set RESTART IDENTITY CASCADE`)
	if err != nil {
		t.Fatalf("failed to truncate: %v", err)
	}
}

func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func countRows(t *testing.T, pool *pgxpool.Pool, table string) int {
	t.Helper()
	var n int
	assertNoError(t, pool.QueryRow(context.Background(), "SELECT COUNT(*) FROM "+table).Scan(&n))
	return n
}

func TestPostgresRepositories(t *testing.T) {
	pool := newTestPool(t)
	ctx := context.Background()

	sets := repositories.NewSetRepository(pool)
	cards := repositories.NewCardRepository(pool)
	conditions := repositories.NewConditionRepository(pool)
	inventory := repositories.NewInventoryRepository(pool)

	seed := func(t *testing.T) (setID, cardID, condID int64) {
		t.Helper()
		resetTables(t, pool)
		setID, err := sets.Create(ctx, &models.CardSet{
			SetCode: "SV1", SetName: "Scarlet & Violet", ReleaseDate: "2023-03-31", Era: "Scarlet & Violet",
		})
		assertNoError(t, err)
		cardID, err = cards.Create(ctx, &models.Card{
			SetID: setID, CardNumber: "001/198", CardName: "Sprigatito", Rarity: "Common", CardType: "Pokémon",
		})
		assertNoError(t, err)
		condID, err = conditions.Create(ctx, &models.Condition{ConditionCode: "NM", Description: "Near Mint"})
		assertNoError(t, err)
		return setID, cardID, condID
	}

	t.Run("end to end inventory lifecycle", func(t *testing.T) {
		setID, cardID, condID := seed(t)
		if setID != 1 || cardID != 1 || condID != 1 {
			t.Fatalf("expected ids 1/1/1, got %d/%d/%d", setID, cardID, condID)
		}

		itemID, err := inventory.Create(ctx, &models.InventoryItem{
			CardID: cardID, ConditionID: condID, Quantity: 2, PurchasePrice: 1.50,
		})
		assertNoError(t, err)
		if itemID != 1 {
			t.Fatalf("expected item id 1, got %d", itemID)
		}

		items, err := inventory.GetBySet(ctx, setID)
		assertNoError(t, err)
		if len(items) != 1 {
			t.Fatalf("expected one item, got %d", len(items))
		}
		got := items[0]
		if got.SetCode != "SV1" || got.CardName != "Sprigatito" || got.ConditionCode != "NM" {
			t.Errorf("unexpected join columns: %+v", got)
		}
		if got.IsGraded != models.No || got.GradedCompany != nil || got.Grade != nil {
			t.Errorf("expected ungraded item, got %+v", got)
		}
		if got.PurchasePrice != 1.5 {
			t.Errorf("expected price 1.5, got %v", got.PurchasePrice)
		}

		assertNoError(t, inventory.Update(ctx, itemID, models.Fields{"quantity": 5}))
		item, err := inventory.GetByID(ctx, itemID)
		assertNoError(t, err)
		if item == nil || item.Quantity != 5 {
			t.Fatalf("expected quantity 5, got %+v", item)
		}

		assertNoError(t, inventory.Delete(ctx, itemID))
		item, err = inventory.GetByID(ctx, itemID)
		assertNoError(t, err)
		if item != nil {
			t.Fatalf("expected item to be gone, got %+v", item)
		}
		// Deleting again is a silent no-op at this layer.
		assertNoError(t, inventory.Delete(ctx, itemID))
	})

	t.Run("update ignores unknown and empty field sets", func(t *testing.T) {
		setID, _, _ := seed(t)
		before, err := sets.GetByID(ctx, setID)
		assertNoError(t, err)

		assertNoError(t, sets.Update(ctx, setID, models.Fields{}))
		assertNoError(t, sets.Update(ctx, setID, models.Fields{"set_id": 99, "nonsense": "x"}))

		after, err := sets.GetByID(ctx, setID)
		assertNoError(t, err)
		if *before != *after {
			t.Fatalf("expected set unchanged, before %+v after %+v", before, after)
		}

		assertNoError(t, sets.Update(ctx, setID, models.Fields{"set_name": "SV Base", "unknown": 1}))
		after, err = sets.GetByID(ctx, setID)
		assertNoError(t, err)
		if after.SetName != "SV Base" || after.SetCode != "SV1" {
			t.Fatalf("unexpected set after update: %+v", after)
		}
	})

	t.Run("deleting a set with cards violates the foreign key", func(t *testing.T) {
		setID, _, _ := seed(t)
		err := sets.Delete(ctx, setID)
		if !repositories.IsForeignKeyViolation(err) {
			t.Fatalf("expected foreign key violation, got %v", err)
		}
		if countRows(t, pool, "card_set") != 1 {
			t.Fatal("set should still exist")
		}

		emptyID, err := sets.Create(ctx, &models.CardSet{SetCode: "SV2", SetName: "Paldea Evolved", ReleaseDate: "2023-06-09"})
		assertNoError(t, err)
		assertNoError(t, sets.Delete(ctx, emptyID))
		if countRows(t, pool, "card_set") != 1 {
			t.Fatal("empty set should be deleted")
		}
	})

	t.Run("creating a card for a missing set violates the foreign key", func(t *testing.T) {
		seed(t)
		_, err := cards.Create(ctx, &models.Card{
			SetID: 404, CardNumber: "1", CardName: "Ghost", Rarity: "Common", CardType: "Pokémon",
		})
		if !repositories.IsForeignKeyViolation(err) {
			t.Fatalf("expected foreign key violation, got %v", err)
		}
	})

	t.Run("card number is unique within a set", func(t *testing.T) {
		setID, _, _ := seed(t)
		_, err := cards.Create(ctx, &models.Card{
			SetID: setID, CardNumber: "001/198", CardName: "Dupe", Rarity: "Common", CardType: "Pokémon",
		})
		if !repositories.IsConstraintViolation(err) {
			t.Fatalf("expected constraint violation, got %v", err)
		}
	})

	t.Run("cards in a set are ordered lexically by number", func(t *testing.T) {
		setID, _, _ := seed(t)
		for _, number := range []string{"010/198", "002/198", "100/198", "TG01"} {
			_, err := cards.Create(ctx, &models.Card{
				SetID: setID, CardNumber: number, CardName: "Card " + number, Rarity: "Rare", CardType: "Trainer",
			})
			assertNoError(t, err)
		}

		list, err := cards.GetBySet(ctx, setID)
		assertNoError(t, err)
		var numbers []string
		for _, c := range list {
			numbers = append(numbers, c.CardNumber)
		}
		want := []string{"001/198", "002/198", "010/198", "100/198", "TG01"}
		if len(numbers) != len(want) {
			t.Fatalf("expected %v, got %v", want, numbers)
		}
		for i := range want {
			if numbers[i] != want[i] {
				t.Fatalf("expected %v, got %v", want, numbers)
			}
		}

		all, err := cards.GetAll(ctx)
		assertNoError(t, err)
		if len(all) != 5 || all[0].SetCode != "SV1" {
			t.Fatalf("unexpected global listing: %+v", all)
		}

		none, err := cards.GetBySet(ctx, 404)
		assertNoError(t, err)
		if none == nil || len(none) != 0 {
			t.Fatalf("expected empty non-nil slice, got %#v", none)
		}
	})

	t.Run("storage rejects inconsistent grading and bad rarity", func(t *testing.T) {
		setID, cardID, condID := seed(t)
		_, err := inventory.Create(ctx, &models.InventoryItem{
			CardID: cardID, ConditionID: condID, IsGraded: models.Yes, Quantity: 1,
		})
		if !repositories.IsConstraintViolation(err) {
			t.Fatalf("expected check violation, got %v", err)
		}

		_, err = cards.Create(ctx, &models.Card{
			SetID: setID, CardNumber: "2", CardName: "Lower", Rarity: "common", CardType: "Pokémon",
		})
		if !repositories.IsConstraintViolation(err) {
			t.Fatalf("expected check violation, got %v", err)
		}
	})

	t.Run("graded item round trip", func(t *testing.T) {
		_, cardID, condID := seed(t)
		company, grade, date := "PSA", 9.5, "2024-01-02"
		id, err := inventory.Create(ctx, &models.InventoryItem{
			CardID: cardID, ConditionID: condID, IsFoil: models.Yes, IsGraded: models.Yes,
			GradedCompany: &company, Grade: &grade, Quantity: 1, PurchasePrice: 120.25, PurchaseDate: &date,
		})
		assertNoError(t, err)

		item, err := inventory.GetByID(ctx, id)
		assertNoError(t, err)
		if item.IsFoil != models.Yes || item.GradedCompany == nil || *item.GradedCompany != "PSA" ||
			item.Grade == nil || *item.Grade != 9.5 || item.PurchaseDate == nil || *item.PurchaseDate != date {
			t.Fatalf("unexpected graded item: %+v", item)
		}

		assertNoError(t, inventory.Update(ctx, id, models.Fields{
			"is_graded": models.No, "graded_company": nil, "grade": nil,
		}))
		item, err = inventory.GetByID(ctx, id)
		assertNoError(t, err)
		if item.IsGraded != models.No || item.GradedCompany != nil || item.Grade != nil {
			t.Fatalf("expected grading cleared, got %+v", item)
		}
	})

	t.Run("condition lookup by id", func(t *testing.T) {
		_, _, condID := seed(t)
		c, err := conditions.GetByID(ctx, condID)
		assertNoError(t, err)
		if c == nil || c.ConditionCode != "NM" {
			t.Fatalf("unexpected condition: %+v", c)
		}
		missing, err := conditions.GetByID(ctx, 404)
		assertNoError(t, err)
		if missing != nil {
			t.Fatalf("expected nil for missing condition, got %+v", missing)
		}
	})
}

// cleanupContainer terminates ctr when the test ends (equivalent of
// testcontainers.CleanupContainer, which is unavailable in v0.33).
func cleanupContainer(t *testing.T, ctr *postgres.PostgresContainer) {
	t.Helper()
	t.Cleanup(func() {
		if ctr == nil {
			return
		}
		if err := ctr.Terminate(context.Background()); err != nil {
			t.Errorf("failed to terminate container: %v", err)
		}
	})
}
