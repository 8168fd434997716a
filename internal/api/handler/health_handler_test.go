package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"
)

func TestHealthHandler_Basic(t *testing.T) {
	h := NewHealthHandler("test", "1.0.0")

	c, rec := newTestContext(t, http.MethodGet, "/api/health", "")
	if err := h.Basic(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["status"] != "OK" {
		t.Errorf("expected status OK, got %v", resp["status"])
	}
	if resp["environment"] != "test" {
		t.Errorf("expected environment test, got %v", resp["environment"])
	}
	if _, ok := resp["uptime"].(float64); !ok {
		t.Errorf("uptime must be numeric, got %T", resp["uptime"])
	}
}

func TestHealthHandler_Detailed_IncludesSections(t *testing.T) {
	h := NewHealthHandler("test", "1.0.0")

	c, rec := newTestContext(t, http.MethodGet, "/api/health/detailed", "")
	if err := h.Detailed(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	resp := decodeBody(t, rec)
	for _, section := range []string{"memory", "system", "process"} {
		if _, ok := resp[section].(map[string]any); !ok {
			t.Errorf("missing %s section", section)
		}
	}

	mem := resp["memory"].(map[string]any)
	if mem["used"].(float64) <= 0 {
		t.Error("memory.used must be positive")
	}
	sys := resp["system"].(map[string]any)
	if sys["cpus"].(float64) < 1 {
		t.Error("system.cpus must be at least 1")
	}
	proc := resp["process"].(map[string]any)
	if proc["pid"].(float64) <= 0 {
		t.Error("process.pid must be positive")
	}
	if proc["runtimeVersion"] == "" {
		t.Error("process.runtimeVersion must be set")
	}
}

func TestHealthHandler_Ready_NoChecks(t *testing.T) {
	h := NewHealthHandler("test", "1.0.0")

	c, rec := newTestContext(t, http.MethodGet, "/api/health/ready", "")
	_ = h.Ready(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 with no checks, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["status"] != "ready" {
		t.Errorf("expected status ready, got %v", resp["status"])
	}
}

func TestHealthHandler_Ready_FailingCheck(t *testing.T) {
	failing := func(ctx context.Context) error { return errors.New("dependency down") }
	h := NewHealthHandler("test", "1.0.0", failing)

	c, rec := newTestContext(t, http.MethodGet, "/api/health/ready", "")
	_ = h.Ready(c)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["status"] != "not ready" {
		t.Errorf("expected status not ready, got %v", resp["status"])
	}
}

func TestHealthHandler_Ready_AllChecksPass(t *testing.T) {
	ok := func(ctx context.Context) error { return nil }
	h := NewHealthHandler("test", "1.0.0", ok, ok)

	c, rec := newTestContext(t, http.MethodGet, "/api/health/ready", "")
	_ = h.Ready(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestHealthHandler_Live(t *testing.T) {
	h := NewHealthHandler("test", "1.0.0")

	c, rec := newTestContext(t, http.MethodGet, "/api/health/live", "")
	_ = h.Live(c)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	resp := decodeBody(t, rec)
	if resp["status"] != "alive" {
		t.Errorf("expected status alive, got %v", resp["status"])
	}
}
