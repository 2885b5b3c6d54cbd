package logger

import "testing"

func TestInitFallsBackToInfoOnBadLevel(t *testing.T) {
	if err := Init("not-a-level"); err != nil {
		t.Fatalf("expected fallback to info level, got error: %v", err)
	}

	if Logger() == nil {
		t.Fatal("expected a usable logger")
	}
}

func TestWithModuleReturnsChild(t *testing.T) {
	if err := Init("debug"); err != nil {
		t.Fatalf("init: %v", err)
	}

	child := WithModule("feeds")
	if child == nil {
		t.Fatal("expected child logger")
	}
}
