package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/UndyingTomb/CSCE-548/internal/models"
	"github.com/UndyingTomb/CSCE-548/internal/services"
)

func (c *Console) listInventory(ctx context.Context) error {
	c.println("\nSelect a set to filter your inventory:")
	if err := c.listSets(ctx); err != nil {
		return err
	}

	setID, all, err := c.promptInt("Enter set_id (or press Enter to show all owned cards): ", true)
	if err != nil {
		return err
	}
	var items []models.InventoryItem
	if all {
		items, err = c.inventory.ListInventory(ctx)
	} else {
		items, err = c.inventory.ListInventoryBySet(ctx, setID)
	}
	if err != nil {
		return err
	}
	if len(items) == 0 {
		c.println("(no owned cards found for that set)")
		return nil
	}

	for _, it := range items {
		graded := ""
		if it.IsGraded == models.Yes && it.GradedCompany != nil && it.Grade != nil {
			graded = fmt.Sprintf(" | %s %.1f", *it.GradedCompany, *it.Grade)
		}
		c.printf("Item %3d | %s %-10s %-24s| %-12s | cond=%s | qty=%d | paid=$%.2f%s\n",
			it.ItemID, it.SetCode, it.CardNumber, it.CardName, it.Rarity,
			it.ConditionCode, it.Quantity, it.PurchasePrice, graded)
	}
	return nil
}

func (c *Console) addInventoryItem(ctx context.Context) error {
	c.println("\n--- Add Inventory Item ---")
	c.println("Helpful: list conditions:")
	if err := c.listConditions(ctx); err != nil {
		return err
	}

	var req services.CreateInventoryItemRequest
	var err error
	if req.CardID, _, err = c.promptInt("card_id: ", false); err != nil {
		return err
	}
	if req.ConditionID, _, err = c.promptInt("condition_id: ", false); err != nil {
		return err
	}
	foil, _, err := c.promptInt("is_foil (0/1) [0]: ", true)
	if err != nil {
		return err
	}
	req.IsFoil = models.Flag(foil)
	graded, _, err := c.promptInt("is_graded (0/1) [0]: ", true)
	if err != nil {
		return err
	}
	req.IsGraded = models.Flag(graded)

	qty, blank, err := c.promptInt("quantity [1]: ", true)
	if err != nil {
		return err
	}
	if !blank {
		q := int(qty)
		req.Quantity = &q
	}
	price, blank, err := c.promptFloat("purchase_price [0.0]: ", true)
	if err != nil {
		return err
	}
	if !blank {
		req.PurchasePrice = &price
	}
	if req.PurchaseDate, err = c.promptOptional("purchase_date (YYYY-MM-DD) [blank]: "); err != nil {
		return err
	}
	if req.Notes, err = c.promptOptional("notes [blank]: "); err != nil {
		return err
	}

	if req.IsGraded == models.Yes {
		company, _, err := c.promptString("graded_company (PSA/BGS/CGC): ")
		if err != nil {
			return err
		}
		req.GradedCompany = &company
		grade, _, err := c.promptFloat("grade (1.0 - 10.0): ", false)
		if err != nil {
			return err
		}
		req.Grade = &grade
	}

	id, err := c.inventory.CreateInventoryItem(ctx, req)
	if err != nil {
		return err
	}
	c.printf("Created item_id = %d\n", id)
	return nil
}

func (c *Console) updateInventoryItem(ctx context.Context) error {
	c.println("\n--- Update Inventory Item ---")
	id, _, err := c.promptInt("item_id to update: ", false)
	if err != nil {
		return err
	}
	cur, err := c.inventory.GetInventoryItem(ctx, id)
	if err != nil {
		return err
	}
	if cur == nil {
		c.println("Inventory item not found.")
		return nil
	}

	c.println("Press Enter to keep current value.")
	fields := models.Fields{}
	for _, f := range []struct {
		column  string
		current int64
	}{
		{"card_id", cur.CardID},
		{"condition_id", cur.ConditionID},
		{"is_foil", int64(cur.IsFoil)},
		{"is_graded", int64(cur.IsGraded)},
		{"quantity", int64(cur.Quantity)},
	} {
		v, blank, err := c.promptInt(f.column+" ["+strconv.FormatInt(f.current, 10)+"]: ", true)
		if err != nil {
			return err
		}
		if !blank {
			fields[f.column] = v
		}
	}
	price, blank, err := c.promptFloat(fmt.Sprintf("purchase_price [%.2f]: ", cur.PurchasePrice), true)
	if err != nil {
		return err
	}
	if !blank {
		fields["purchase_price"] = price
	}
	if err := c.keepOrSet(fields, "purchase_date", deref(cur.PurchaseDate)); err != nil {
		return err
	}
	if err := c.keepOrSet(fields, "notes", deref(cur.Notes)); err != nil {
		return err
	}

	graded := cur.IsGraded
	if v, ok := fields.Int64("is_graded"); ok {
		graded = models.Flag(v)
	}
	if graded == models.Yes {
		if err := c.keepOrSet(fields, "graded_company", deref(cur.GradedCompany)); err != nil {
			return err
		}
		current := ""
		if cur.Grade != nil {
			current = strconv.FormatFloat(*cur.Grade, 'f', 1, 64)
		}
		grade, blank, err := c.promptFloat("grade ["+current+"]: ", true)
		if err != nil {
			return err
		}
		if !blank {
			fields["grade"] = grade
		}
	}

	return c.applyUpdate(fields, "inventory item", func() (bool, error) {
		return c.inventory.UpdateInventoryItem(ctx, id, fields)
	})
}

func (c *Console) deleteInventoryItem(ctx context.Context) error {
	c.println("\n--- Delete Inventory Item ---")
	id, _, err := c.promptInt("item_id to delete: ", false)
	if err != nil {
		return err
	}
	return c.reportDelete("Inventory item", func() (bool, error) { return c.inventory.DeleteInventoryItem(ctx, id) })
}

// promptOptional returns nil for a blank answer.
func (c *Console) promptOptional(label string) (*string, error) {
	v, blank, err := c.promptString(label)
	if err != nil || blank {
		return nil, err
	}
	return &v, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
