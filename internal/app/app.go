// Package app holds the start-up sequence shared by the API and console
// binaries: flags, configuration, logging, pool, migrations and seeding.
package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	"github.com/UndyingTomb/CSCE-548/internal/config"
	"github.com/UndyingTomb/CSCE-548/internal/database"
	"github.com/UndyingTomb/CSCE-548/internal/logger"
	"github.com/UndyingTomb/CSCE-548/internal/seed"
	"github.com/UndyingTomb/CSCE-548/internal/server"
)

type Options struct {
	EnvFile      string
	Migrate      bool
	SeedFile     string
	SeedDefaults bool
}

// BindFlags registers the start-up flags on fs.
func (o *Options) BindFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.EnvFile, "env-file", "", "path to a .env file (default: ./.env if present)")
	fs.BoolVar(&o.Migrate, "migrate", true, "create missing tables before starting")
	fs.StringVar(&o.SeedFile, "seed", "", "YAML file of sets, cards and conditions to load")
	fs.BoolVar(&o.SeedDefaults, "seed-defaults", false, "load the default condition scale (NM, LP, MP, HP, DMG)")
}

type App struct {
	Config   *config.Config
	Log      logrus.FieldLogger
	Pool     *pgxpool.Pool
	Services *server.Services
}

// Start loads configuration, connects, migrates and seeds. The caller owns
// the returned pool and must Close the App.
func Start(ctx context.Context, serviceName string, opts Options) (*App, error) {
	cfg, err := config.Load(opts.EnvFile)
	if err != nil {
		return nil, err
	}
	l := logger.CreateLogger(serviceName, cfg.LogLevel, cfg.LogFormat)

	pool, err := database.Connect(ctx, l, cfg)
	if err != nil {
		return nil, err
	}
	a := &App{
		Config:   cfg,
		Log:      l,
		Pool:     pool,
		Services: server.NewServices(l, pool),
	}

	if opts.Migrate {
		if err := database.RunMigrations(ctx, l, pool); err != nil {
			a.Close()
			return nil, err
		}
	}
	if err := a.seed(ctx, opts); err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

func (a *App) seed(ctx context.Context, opts Options) error {
	var docs []*seed.Document
	if opts.SeedDefaults {
		docs = append(docs, seed.Defaults())
	}
	if opts.SeedFile != "" {
		doc, err := seed.ParseFile(opts.SeedFile)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
	}

	seeder := seed.NewSeeder(a.Log, a.Services.Sets, a.Services.Cards, a.Services.Conditions)
	for _, doc := range docs {
		if _, err := seeder.Apply(ctx, doc); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
	}
	return nil
}

func (a *App) Close() {
	a.Pool.Close()
}
