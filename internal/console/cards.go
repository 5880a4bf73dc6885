package console

import (
	"context"
	"strconv"

	"github.com/UndyingTomb/CSCE-548/internal/models"
	"github.com/UndyingTomb/CSCE-548/internal/services"
)

func (c *Console) listCardsInSet(ctx context.Context) error {
	setID, _, err := c.promptInt("Enter set_id: ", false)
	if err != nil {
		return err
	}
	cards, err := c.cards.ListCardsInSet(ctx, setID)
	if err != nil {
		return err
	}
	if len(cards) == 0 {
		c.println("(no cards found for that set_id)")
		return nil
	}
	for _, card := range cards {
		c.printf("%4d | set=%-3d | #%-10s | %-28s | %-12s | %s\n",
			card.CardID, card.SetID, card.CardNumber, card.CardName, card.Rarity, card.CardType)
	}
	return nil
}

func (c *Console) addCard(ctx context.Context) error {
	c.println("\n--- Add Card ---")
	if err := c.listSets(ctx); err != nil {
		return err
	}

	var req services.CreateCardRequest
	var err error
	if req.SetID, _, err = c.promptInt("set_id: ", false); err != nil {
		return err
	}
	if req.CardNumber, _, err = c.promptString("card_number (e.g., 080/202): "); err != nil {
		return err
	}
	if req.CardName, _, err = c.promptString("card_name: "); err != nil {
		return err
	}
	if req.Rarity, _, err = c.promptString("rarity (Common/Uncommon/Rare/Double Rare/Ultra Rare/IR/SIR/Hyper Rare/Promo): "); err != nil {
		return err
	}
	if req.CardType, _, err = c.promptString("card_type (Pokémon/Trainer/Energy): "); err != nil {
		return err
	}
	req.Rarity = normalizeRarity(req.Rarity)
	req.CardType = normalizeCardType(req.CardType)

	id, err := c.cards.CreateCard(ctx, req)
	if err != nil {
		return err
	}
	c.printf("Created card_id = %d\n", id)
	return nil
}

func (c *Console) updateCard(ctx context.Context) error {
	c.println("\n--- Update Card ---")
	id, _, err := c.promptInt("card_id to update: ", false)
	if err != nil {
		return err
	}
	cur, err := c.cards.GetCard(ctx, id)
	if err != nil {
		return err
	}
	if cur == nil {
		c.println("Card not found.")
		return nil
	}

	c.println("Press Enter to keep current value.")
	fields := models.Fields{}
	setID, blank, err := c.promptInt("set_id ["+strconv.FormatInt(cur.SetID, 10)+"]: ", true)
	if err != nil {
		return err
	}
	if !blank {
		fields["set_id"] = setID
	}
	for _, f := range []struct{ column, current string }{
		{"card_number", cur.CardNumber},
		{"card_name", cur.CardName},
		{"rarity", cur.Rarity},
		{"card_type", cur.CardType},
	} {
		if err := c.keepOrSet(fields, f.column, f.current); err != nil {
			return err
		}
	}
	if v, ok := fields.String("rarity"); ok {
		fields["rarity"] = normalizeRarity(v)
	}
	if v, ok := fields.String("card_type"); ok {
		fields["card_type"] = normalizeCardType(v)
	}

	return c.applyUpdate(fields, "card", func() (bool, error) {
		return c.cards.UpdateCard(ctx, id, fields)
	})
}

func (c *Console) deleteCard(ctx context.Context) error {
	c.println("\n--- Delete Card ---")
	id, _, err := c.promptInt("card_id to delete: ", false)
	if err != nil {
		return err
	}
	return c.reportDelete("Card", func() (bool, error) { return c.cards.DeleteCard(ctx, id) })
}
