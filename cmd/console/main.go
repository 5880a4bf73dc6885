package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/UndyingTomb/CSCE-548/internal/app"
	"github.com/UndyingTomb/CSCE-548/internal/console"
)

const serviceName = "card-tracker-console"

func main() {
	var opts app.Options
	opts.BindFlags(pflag.CommandLine)
	pflag.Parse()

	ctx := context.Background()
	a, err := app.Start(ctx, serviceName, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	svc := a.Services
	c := console.New(a.Log, os.Stdin, os.Stdout, svc.Sets, svc.Cards, svc.Conditions, svc.Inventory)
	if err := c.Run(ctx); err != nil {
		a.Log.WithError(err).Error("Console stopped.")
	}
}
