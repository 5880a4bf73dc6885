// Package console is the menu-driven terminal front end. Every action goes
// through the business layer, exactly like the HTTP handlers.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/UndyingTomb/CSCE-548/internal/repositories"
	"github.com/UndyingTomb/CSCE-548/internal/services"
)

type Console struct {
	l   logrus.FieldLogger
	in  *bufio.Scanner
	out io.Writer

	sets       *services.SetService
	cards      *services.CardService
	conditions *services.ConditionService
	inventory  *services.InventoryService
}

func New(l logrus.FieldLogger, in io.Reader, out io.Writer, sets *services.SetService, cards *services.CardService, conditions *services.ConditionService, inventory *services.InventoryService) *Console {
	return &Console{
		l:          l,
		in:         bufio.NewScanner(in),
		out:        out,
		sets:       sets,
		cards:      cards,
		conditions: conditions,
		inventory:  inventory,
	}
}

type action struct {
	label string
	run   func(c *Console, ctx context.Context) error
}

// menu entries are numbered from 1 in order; section headers are printed
// before the entry at the given index.
var menu = []action{
	{"List sets", (*Console).listSets},
	{"List cards in a set", (*Console).listCardsInSet},
	{"List inventory (owned cards) by set", (*Console).listInventory},
	{"Add set", (*Console).addSet},
	{"Update set", (*Console).updateSet},
	{"Delete set", (*Console).deleteSet},
	{"Add card", (*Console).addCard},
	{"Update card", (*Console).updateCard},
	{"Delete card", (*Console).deleteCard},
	{"Add inventory item", (*Console).addInventoryItem},
	{"Update inventory item", (*Console).updateInventoryItem},
	{"Delete inventory item", (*Console).deleteInventoryItem},
	{"List conditions (help)", (*Console).listConditions},
	{"Add condition", (*Console).addCondition},
	{"Update condition", (*Console).updateCondition},
	{"Delete condition", (*Console).deleteCondition},
}

var sections = map[int]string{
	4:  "CRUD: Sets",
	7:  "CRUD: Cards",
	10: "CRUD: Inventory",
	14: "CRUD: Conditions",
}

// Run shows the menu until the user exits or input ends.
func (c *Console) Run(ctx context.Context) error {
	for {
		c.printMenu()
		choice, err := c.readLine("Choose: ")
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if choice == "0" {
			c.println("Bye.")
			return nil
		}
		n, err := strconv.Atoi(choice)
		if err != nil || n < 1 || n > len(menu) {
			c.println("Invalid choice.")
			continue
		}

		if err := menu[n-1].run(c, ctx); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			c.report(err)
		}
	}
}

func (c *Console) printMenu() {
	c.println("\n=== Pokémon Card Tracker ===")
	for i, a := range menu {
		if header, ok := sections[i+1]; ok {
			c.printf("----- %s -----\n", header)
		}
		c.printf("%d) %s\n", i+1, a.label)
	}
	c.println("0) Exit")
}

// report prints a failed action and keeps the loop going. Only unexpected
// storage failures are logged.
func (c *Console) report(err error) {
	switch {
	case services.IsValidationError(err):
		c.printf("Invalid input: %v\n", err)
	case repositories.IsConstraintViolation(err):
		c.printf("Rejected by the database: %v\n", err)
	default:
		c.l.WithError(err).Error("Console action failed.")
		c.printf("Error: %v\n", err)
	}
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}

func (c *Console) readLine(label string) (string, error) {
	c.printf("%s", label)
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// promptString returns "" with blank=true when the user just pressed Enter.
func (c *Console) promptString(label string) (value string, blank bool, err error) {
	value, err = c.readLine(label)
	return value, value == "", err
}

// promptInt re-prompts until it reads an integer, or a blank line when
// allowBlank is set.
func (c *Console) promptInt(label string, allowBlank bool) (value int64, blank bool, err error) {
	for {
		raw, err := c.readLine(label)
		if err != nil {
			return 0, false, err
		}
		if raw == "" && allowBlank {
			return 0, true, nil
		}
		v, err := strconv.ParseInt(raw, 10, 64)
		if err == nil {
			return v, false, nil
		}
		c.println("Enter an integer.")
	}
}

func (c *Console) promptFloat(label string, allowBlank bool) (value float64, blank bool, err error) {
	for {
		raw, err := c.readLine(label)
		if err != nil {
			return 0, false, err
		}
		if raw == "" && allowBlank {
			return 0, true, nil
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err == nil {
			return v, false, nil
		}
		c.println("Enter a number.")
	}
}
