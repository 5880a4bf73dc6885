package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/UndyingTomb/CSCE-548/internal/config"
	"github.com/UndyingTomb/CSCE-548/internal/middlewares"
	"github.com/UndyingTomb/CSCE-548/internal/repositories/memstore"
	"github.com/UndyingTomb/CSCE-548/internal/services"
)

type okPinger struct{}

func (okPinger) Ping(context.Context) error { return nil }

func memServices(l logrus.FieldLogger, s *memstore.Store) *Services {
	return &Services{
		Sets:       services.NewSetService(l, s.Sets()),
		Cards:      services.NewCardService(l, s.Cards()),
		Conditions: services.NewConditionService(l, s.Conditions()),
		Inventory:  services.NewInventoryService(l, s.Inventory()),
	}
}

func TestRouterMiddlewareStack(t *testing.T) {
	l, hook := test.NewNullLogger()
	svc := memServices(l, memstore.New())
	cfg := &config.Config{GinMode: "test", CORSAllowOrigins: []string{"http://localhost:3000"}}
	router := NewRouter(cfg, l, okPinger{}, svc)

	req := httptest.NewRequest(http.MethodPost, "/sets", strings.NewReader(`{"set_code":"SV1","set_name":"Scarlet & Violet"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:3000" {
		t.Errorf("unexpected allow-origin %q", got)
	}
	if w.Header().Get(middlewares.RequestIDHeader) == "" {
		t.Error("expected a request id header")
	}

	var logged bool
	for _, e := range hook.AllEntries() {
		if e.Message == "Request handled." && e.Data["path"] == "/sets" {
			logged = true
		}
	}
	if !logged {
		t.Error("expected the request to be logged")
	}
}

func TestNewServerUsesGivenServices(t *testing.T) {
	l, _ := test.NewNullLogger()
	s := memstore.New()
	srv := NewServer(&config.Config{Port: 8123, GinMode: "test", CORSAllowOrigins: []string{"*"}}, l, okPinger{}, memServices(l, s))
	if srv.Addr != ":8123" {
		t.Errorf("unexpected address %q", srv.Addr)
	}

	req := httptest.NewRequest(http.MethodPost, "/sets", strings.NewReader(`{"set_code":"SV1","set_name":"Scarlet & Violet"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Handler.ServeHTTP(w, req)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	if s.Writes() != 1 {
		t.Errorf("expected the write to land in the given store, got %d writes", s.Writes())
	}
}
