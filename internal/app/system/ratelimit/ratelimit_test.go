package ratelimit

import (
	"net/http/httptest"
	"testing"
	"time"
)

func TestLimiterAllowsUpToLimit(t *testing.T) {
	l := New(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !l.Allow("k") {
			t.Fatalf("attempt %d blocked inside the window", i+1)
		}
	}
	if l.Allow("k") {
		t.Fatalf("attempt over the limit allowed")
	}
	if !l.Allow("other") {
		t.Fatalf("unrelated key blocked")
	}

	l.Reset("k")
	if !l.Allow("k") {
		t.Fatalf("key still blocked after Reset")
	}
}

func TestLoginLimiterBlocksRepeatedNameAttempts(t *testing.T) {
	ll := NewLoginLimiter()

	for i := 0; i < 5; i++ {
		r := httptest.NewRequest("POST", "/login", nil)
		r.RemoteAddr = "10.0.0.1:1234"
		if ok, _ := ll.Check(r, "Ana"); !ok {
			t.Fatalf("attempt %d for Ana blocked early", i+1)
		}
	}

	// Sixth attempt for the same name from a fresh IP is still blocked,
	// and the name key is case-insensitive.
	r := httptest.NewRequest("POST", "/login", nil)
	r.RemoteAddr = "10.0.0.2:1234"
	if ok, reason := ll.Check(r, "ana"); ok {
		t.Fatalf("sixth attempt for the same name allowed")
	} else if reason == "" {
		t.Fatalf("blocked attempt carried no reason")
	}

	ll.ResetName("ANA")
	r = httptest.NewRequest("POST", "/login", nil)
	r.RemoteAddr = "10.0.0.3:1234"
	if ok, _ := ll.Check(r, "Ana"); !ok {
		t.Fatalf("name still blocked after ResetName")
	}
}

func TestClientIPPrefersForwardedHeaders(t *testing.T) {
	r := httptest.NewRequest("GET", "/", nil)
	r.RemoteAddr = "192.0.2.7:4444"
	if got := ClientIP(r); got != "192.0.2.7" {
		t.Fatalf("ClientIP = %q, want the remote host", got)
	}

	r.Header.Set("X-Real-IP", "203.0.113.5")
	if got := ClientIP(r); got != "203.0.113.5" {
		t.Fatalf("ClientIP = %q, want X-Real-IP", got)
	}

	r.Header.Set("X-Forwarded-For", "198.51.100.8, 10.0.0.1")
	if got := ClientIP(r); got != "198.51.100.8" {
		t.Fatalf("ClientIP = %q, want the first forwarded hop", got)
	}
}
