package console

import (
	"context"

	"github.com/UndyingTomb/CSCE-548/internal/models"
	"github.com/UndyingTomb/CSCE-548/internal/services"
)

func (c *Console) listConditions(ctx context.Context) error {
	conditions, err := c.conditions.ListConditions(ctx)
	if err != nil {
		return err
	}
	if len(conditions) == 0 {
		c.println("(no conditions)")
		return nil
	}
	for _, cond := range conditions {
		c.printf("%2d | %-4s | %s\n", cond.ConditionID, cond.ConditionCode, cond.Description)
	}
	return nil
}

func (c *Console) addCondition(ctx context.Context) error {
	c.println("\n--- Add Condition ---")
	var req services.CreateConditionRequest
	var err error
	if req.ConditionCode, _, err = c.promptString("condition_code (e.g., NM): "); err != nil {
		return err
	}
	if req.Description, _, err = c.promptString("description: "); err != nil {
		return err
	}

	id, err := c.conditions.CreateCondition(ctx, req)
	if err != nil {
		return err
	}
	c.printf("Created condition_id = %d\n", id)
	return nil
}

func (c *Console) updateCondition(ctx context.Context) error {
	c.println("\n--- Update Condition ---")
	id, _, err := c.promptInt("condition_id to update: ", false)
	if err != nil {
		return err
	}
	cur, err := c.conditions.GetCondition(ctx, id)
	if err != nil {
		return err
	}
	if cur == nil {
		c.println("Condition not found.")
		return nil
	}

	c.println("Press Enter to keep current value.")
	fields := models.Fields{}
	if err := c.keepOrSet(fields, "condition_code", cur.ConditionCode); err != nil {
		return err
	}
	if err := c.keepOrSet(fields, "description", cur.Description); err != nil {
		return err
	}
	return c.applyUpdate(fields, "condition", func() (bool, error) {
		return c.conditions.UpdateCondition(ctx, id, fields)
	})
}

func (c *Console) deleteCondition(ctx context.Context) error {
	c.println("\n--- Delete Condition ---")
	id, _, err := c.promptInt("condition_id to delete: ", false)
	if err != nil {
		return err
	}
	return c.reportDelete("Condition", func() (bool, error) { return c.conditions.DeleteCondition(ctx, id) })
}
