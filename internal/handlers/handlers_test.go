package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus/hooks/test"

	"github.com/UndyingTomb/CSCE-548/internal/handlers"
	"github.com/UndyingTomb/CSCE-548/internal/repositories/memstore"
	"github.com/UndyingTomb/CSCE-548/internal/routes"
	"github.com/UndyingTomb/CSCE-548/internal/services"
)

type fakePinger struct{ err error }

func (p fakePinger) Ping(context.Context) error { return p.err }

func newTestRouter(t *testing.T, db handlers.Pinger) (*gin.Engine, *memstore.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	l, _ := test.NewNullLogger()
	s := memstore.New()

	router := gin.New()
	routes.RegisterRoutes(router,
		handlers.NewHealthHandler(db),
		handlers.NewSetHandler(l, services.NewSetService(l, s.Sets())),
		handlers.NewCardHandler(l, services.NewCardService(l, s.Cards())),
		handlers.NewConditionHandler(l, services.NewConditionService(l, s.Conditions())),
		handlers.NewInventoryHandler(l, services.NewInventoryService(l, s.Inventory())),
	)
	return router, s
}

func do(t *testing.T, router *gin.Engine, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var out map[string]any
	if w.Body.Len() > 0 && w.Body.Bytes()[0] == '{' {
		if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
			t.Fatalf("%s %s: invalid json %q: %v", method, path, w.Body.String(), err)
		}
	}
	return w.Code, out
}

func doList(t *testing.T, router *gin.Engine, path string) []map[string]any {
	t.Helper()
	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	if w.Code != http.StatusOK {
		t.Fatalf("GET %s: expected 200, got %d: %s", path, w.Code, w.Body.String())
	}
	var out []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("GET %s: invalid json %q: %v", path, w.Body.String(), err)
	}
	return out
}

func expectStatus(t *testing.T, got, want int, body map[string]any) {
	t.Helper()
	if got != want {
		t.Fatalf("expected status %d, got %d (%v)", want, got, body)
	}
}

func TestCollectionLifecycle(t *testing.T) {
	router, _ := newTestRouter(t, fakePinger{})

	code, body := do(t, router, http.MethodPost, "/sets",
		`{"set_code":"SV1","set_name":"Scarlet & Violet","release_date":"2023-03-31","era":"Scarlet & Violet"}`)
	expectStatus(t, code, http.StatusCreated, body)
	if body["set_id"] != float64(1) {
		t.Fatalf("expected set_id 1, got %v", body)
	}

	code, body = do(t, router, http.MethodPost, "/cards",
		`{"set_id":1,"card_number":"001/198","card_name":"Sprigatito","rarity":"Common","card_type":"Pokémon"}`)
	expectStatus(t, code, http.StatusCreated, body)
	if body["card_id"] != float64(1) {
		t.Fatalf("expected card_id 1, got %v", body)
	}

	code, body = do(t, router, http.MethodPost, "/conditions", `{"condition_code":"NM","description":"Near Mint"}`)
	expectStatus(t, code, http.StatusCreated, body)

	code, body = do(t, router, http.MethodPost, "/inventory",
		`{"card_id":1,"condition_id":1,"quantity":2,"purchase_price":1.50}`)
	expectStatus(t, code, http.StatusCreated, body)
	if body["item_id"] != float64(1) {
		t.Fatalf("expected item_id 1, got %v", body)
	}

	items := doList(t, router, "/sets/1/inventory")
	if len(items) != 1 {
		t.Fatalf("expected one item in set, got %v", items)
	}
	item := items[0]
	if item["set_code"] != "SV1" || item["card_name"] != "Sprigatito" || item["is_graded"] != float64(0) {
		t.Errorf("unexpected joined item %v", item)
	}
	if item["graded_company"] != nil || item["grade"] != nil {
		t.Errorf("expected null grading fields, got %v", item)
	}

	code, body = do(t, router, http.MethodPatch, "/inventory/1", `{"quantity":5}`)
	expectStatus(t, code, http.StatusOK, body)
	if body["updated"] != true {
		t.Errorf("expected updated=true, got %v", body)
	}
	code, body = do(t, router, http.MethodGet, "/inventory/1", "")
	expectStatus(t, code, http.StatusOK, body)
	if body["quantity"] != float64(5) {
		t.Errorf("expected quantity 5, got %v", body["quantity"])
	}

	code, body = do(t, router, http.MethodDelete, "/inventory/1", "")
	expectStatus(t, code, http.StatusOK, body)
	if body["deleted"] != true {
		t.Errorf("expected deleted=true, got %v", body)
	}
	code, body = do(t, router, http.MethodGet, "/inventory/1", "")
	expectStatus(t, code, http.StatusNotFound, body)
	code, body = do(t, router, http.MethodDelete, "/inventory/1", "")
	expectStatus(t, code, http.StatusNotFound, body)
}

func TestPatchSemantics(t *testing.T) {
	router, s := newTestRouter(t, fakePinger{})
	do(t, router, http.MethodPost, "/sets", `{"set_code":"SV1","set_name":"Scarlet & Violet"}`)
	do(t, router, http.MethodPost, "/cards", `{"set_id":1,"card_number":"1","card_name":"A","rarity":"Common","card_type":"Trainer"}`)
	do(t, router, http.MethodPost, "/conditions", `{"condition_code":"NM","description":"Near Mint"}`)
	code, body := do(t, router, http.MethodPost, "/inventory", `{"card_id":1,"condition_id":1}`)
	expectStatus(t, code, http.StatusCreated, body)
	writes := s.Writes()

	tests := []struct {
		name       string
		path       string
		body       string
		wantStatus int
		wantKey    string
		wantValue  any
	}{
		{"empty body", "/sets/1", "", http.StatusOK, "updated", false},
		{"unknown fields", "/sets/1", `{"set_id":7,"owner":"x"}`, http.StatusOK, "reason", "no fields"},
		{"no fields on a missing row", "/sets/99", `{}`, http.StatusOK, "updated", false},
		{"missing row", "/sets/99", `{"era":"x"}`, http.StatusNotFound, "status", "error"},
		{"blank required field", "/sets/1", `{"set_name":""}`, http.StatusBadRequest, "status", "error"},
		{"malformed body", "/sets/1", `{"era":`, http.StatusBadRequest, "message", "Invalid request body"},
		{"bad id", "/sets/abc", `{"era":"x"}`, http.StatusBadRequest, "message", "Invalid id"},
		{"null on a required column", "/sets/1", `{"set_code":null}`, http.StatusOK, "reason", "no fields"},
		{"null quantity", "/inventory/1", `{"quantity":null}`, http.StatusOK, "reason", "no fields"},
		{"trailing data", "/inventory/1", `{"quantity":3}garbage`, http.StatusBadRequest, "message", "Invalid request body"},
		{"quantity beyond int64", "/inventory/1", `{"quantity":1e19}`, http.StatusBadRequest, "status", "error"},
		{"quantity beyond int column", "/inventory/1", `{"quantity":2147483648}`, http.StatusBadRequest, "status", "error"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, router, http.MethodPatch, tt.path, tt.body)
			expectStatus(t, code, tt.wantStatus, body)
			if body[tt.wantKey] != tt.wantValue {
				t.Errorf("expected %s=%v, got %v", tt.wantKey, tt.wantValue, body)
			}
		})
	}
	if s.Writes() != writes {
		t.Errorf("expected no writes, got %d", s.Writes()-writes)
	}

	code, body = do(t, router, http.MethodPatch, "/sets/1", `{"era":"Scarlet & Violet"}`)
	expectStatus(t, code, http.StatusOK, body)
	code, body = do(t, router, http.MethodGet, "/sets/1", "")
	expectStatus(t, code, http.StatusOK, body)
	if body["era"] != "Scarlet & Violet" || body["set_id"] != float64(1) {
		t.Errorf("unexpected set after patch %v", body)
	}
}

func TestClientErrors(t *testing.T) {
	router, _ := newTestRouter(t, fakePinger{})
	do(t, router, http.MethodPost, "/sets", `{"set_code":"SV1","set_name":"Scarlet & Violet"}`)
	do(t, router, http.MethodPost, "/cards", `{"set_id":1,"card_number":"1","card_name":"A","rarity":"Common","card_type":"Trainer"}`)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"validation", http.MethodPost, "/sets", `{"set_code":"","set_name":"x"}`},
		{"bad flag", http.MethodPost, "/inventory", `{"card_id":1,"condition_id":1,"is_foil":2}`},
		{"unknown parent", http.MethodPost, "/cards", `{"set_id":9,"card_number":"1","card_name":"A","rarity":"Common","card_type":"Trainer"}`},
		{"duplicate card number", http.MethodPost, "/cards", `{"set_id":1,"card_number":"1","card_name":"B","rarity":"Common","card_type":"Trainer"}`},
		{"referenced parent", http.MethodDelete, "/sets/1", ""},
		{"graded without grade", http.MethodPost, "/inventory", `{"card_id":1,"condition_id":1,"is_graded":1,"graded_company":"PSA"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := do(t, router, tt.method, tt.path, tt.body)
			expectStatus(t, code, http.StatusBadRequest, body)
			if body["status"] != "error" || body["message"] == "" {
				t.Errorf("expected error envelope, got %v", body)
			}
		})
	}
}

func TestServerErrorsAndListings(t *testing.T) {
	router, s := newTestRouter(t, fakePinger{})

	for _, path := range []string{"/sets", "/cards", "/conditions", "/inventory", "/sets/42/cards", "/sets/42/inventory"} {
		if got := doList(t, router, path); len(got) != 0 {
			t.Errorf("GET %s: expected empty array, got %v", path, got)
		}
	}

	s.FailWith(errors.New("connection refused"))
	code, body := do(t, router, http.MethodGet, "/conditions/1", "")
	expectStatus(t, code, http.StatusInternalServerError, body)
	if body["error"] != "connection refused" {
		t.Errorf("expected underlying error in envelope, got %v", body)
	}
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t, fakePinger{})
	code, body := do(t, router, http.MethodGet, "/", "")
	expectStatus(t, code, http.StatusOK, body)
	if body["status"] != "ok" {
		t.Errorf("unexpected health body %v", body)
	}

	router, _ = newTestRouter(t, fakePinger{err: errors.New("down")})
	code, body = do(t, router, http.MethodGet, "/", "")
	expectStatus(t, code, http.StatusServiceUnavailable, body)
}
