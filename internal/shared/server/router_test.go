package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rfp-backend/internal/shared/config"
)

func TestHealthRoute(t *testing.T) {
	r := NewRouter(config.Config{LLMProvider: "anthropic"})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		OK bool `json:"ok"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode health body: %v", err)
	}
	if !body.OK {
		t.Fatal("expected ok=true")
	}
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected request id header on responses")
	}
}

func TestAddr(t *testing.T) {
	cases := map[string]string{
		"":      ":8080",
		"9090":  ":9090",
		":9090": ":9090",
	}
	for in, want := range cases {
		if got := Addr(in); got != want {
			t.Errorf("Addr(%q) = %q, want %q", in, got, want)
		}
	}
}
