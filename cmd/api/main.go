package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/UndyingTomb/CSCE-548/internal/app"
	"github.com/UndyingTomb/CSCE-548/internal/server"
)

const serviceName = "card-tracker-api"

func main() {
	var opts app.Options
	opts.BindFlags(pflag.CommandLine)
	pflag.Parse()

	a, err := app.Start(context.Background(), serviceName, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "startup failed: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	srv := server.NewServer(a.Config, a.Log, a.Pool, a.Services)

	go func() {
		a.Log.Infof("Server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			panic(fmt.Sprintf("http server error: %s", err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.Log.Info("Shutting down server gracefully ...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.Log.WithError(err).Error("Server shutdown failed.")
	}
	a.Log.Info("Server exiting")
}
