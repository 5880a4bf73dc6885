package console

import (
	"context"

	"github.com/UndyingTomb/CSCE-548/internal/models"
	"github.com/UndyingTomb/CSCE-548/internal/services"
)

func (c *Console) listSets(ctx context.Context) error {
	sets, err := c.sets.ListSets(ctx)
	if err != nil {
		return err
	}
	if len(sets) == 0 {
		c.println("(no sets)")
		return nil
	}
	for _, s := range sets {
		c.printf("%3d | %-8s | %-28s | %s | %s\n", s.SetID, s.SetCode, s.SetName, s.ReleaseDate, s.Era)
	}
	return nil
}

func (c *Console) addSet(ctx context.Context) error {
	c.println("\n--- Add Set ---")
	var req services.CreateSetRequest
	var err error
	if req.SetCode, _, err = c.promptString("set_code (e.g., SV1): "); err != nil {
		return err
	}
	if req.SetName, _, err = c.promptString("set_name: "); err != nil {
		return err
	}
	if req.ReleaseDate, _, err = c.promptString("release_date (YYYY-MM-DD): "); err != nil {
		return err
	}
	if req.Era, _, err = c.promptString("era: "); err != nil {
		return err
	}

	id, err := c.sets.CreateSet(ctx, req)
	if err != nil {
		return err
	}
	c.printf("Created set_id = %d\n", id)
	return nil
}

func (c *Console) updateSet(ctx context.Context) error {
	c.println("\n--- Update Set ---")
	id, _, err := c.promptInt("set_id to update: ", false)
	if err != nil {
		return err
	}
	cur, err := c.sets.GetSet(ctx, id)
	if err != nil {
		return err
	}
	if cur == nil {
		c.println("Set not found.")
		return nil
	}

	c.println("Press Enter to keep current value.")
	fields := models.Fields{}
	for _, f := range []struct{ column, current string }{
		{"set_code", cur.SetCode},
		{"set_name", cur.SetName},
		{"release_date", cur.ReleaseDate},
		{"era", cur.Era},
	} {
		if err := c.keepOrSet(fields, f.column, f.current); err != nil {
			return err
		}
	}
	return c.applyUpdate(fields, "set", func() (bool, error) {
		return c.sets.UpdateSet(ctx, id, fields)
	})
}

func (c *Console) deleteSet(ctx context.Context) error {
	c.println("\n--- Delete Set ---")
	id, _, err := c.promptInt("set_id to delete: ", false)
	if err != nil {
		return err
	}
	return c.reportDelete("Set", func() (bool, error) { return c.sets.DeleteSet(ctx, id) })
}

// keepOrSet prompts for a text column showing its current value; a blank
// answer leaves the column out of the update.
func (c *Console) keepOrSet(fields models.Fields, column, current string) error {
	v, blank, err := c.promptString(column + " [" + current + "]: ")
	if err != nil {
		return err
	}
	if !blank {
		fields[column] = v
	}
	return nil
}

func (c *Console) applyUpdate(fields models.Fields, entity string, update func() (bool, error)) error {
	if len(fields) == 0 {
		c.println("No changes.")
		return nil
	}
	ok, err := update()
	if err != nil {
		return err
	}
	if !ok {
		c.printf("%s not found.\n", entity)
		return nil
	}
	c.printf("Updated %s.\n", entity)
	return nil
}

func (c *Console) reportDelete(entity string, del func() (bool, error)) error {
	ok, err := del()
	if err != nil {
		return err
	}
	if !ok {
		c.printf("%s not found.\n", entity)
		return nil
	}
	c.println("Deleted.")
	return nil
}
