package service

import (
	"testing"
	"time"
)

func fixedNow() time.Time {
	return time.Date(2024, time.May, 15, 10, 30, 0, 0, time.UTC)
}

func TestFormatDate(t *testing.T) {
	got := FormatDate(time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC))
	if got != "Mon Jan 01 1990" {
		t.Fatalf("want %q, got %q", "Mon Jan 01 1990", got)
	}
	if len(got) != 15 {
		t.Fatalf("display date must be 15 characters, got %d", len(got))
	}
}

func TestResolveDateValidInput(t *testing.T) {
	got := ResolveDate("1990-01-01", fixedNow)
	if got != "Mon Jan 01 1990" {
		t.Fatalf("want %q, got %q", "Mon Jan 01 1990", got)
	}
}

func TestResolveDateEmptyFallsBackToNow(t *testing.T) {
	got := ResolveDate("", fixedNow)
	if got != "Wed May 15 2024" {
		t.Fatalf("want %q, got %q", "Wed May 15 2024", got)
	}
}

func TestResolveDateUnparseableFallsBackToNow(t *testing.T) {
	for _, raw := range []string{"not-a-date", "1990-1-1", "01/01/1990", "1990-13-40"} {
		if got := ResolveDate(raw, fixedNow); got != "Wed May 15 2024" {
			t.Fatalf("ResolveDate(%q): want fallback %q, got %q", raw, "Wed May 15 2024", got)
		}
	}
}

func TestParseEntryDate(t *testing.T) {
	got, err := ParseEntryDate("Mon Jan 01 1990")
	if err != nil {
		t.Fatalf("parse entry date: %v", err)
	}
	want := time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestParseEntryDateRejectsGarbage(t *testing.T) {
	if _, err := ParseEntryDate("zzz"); err == nil {
		t.Fatal("expected error for garbage input")
	}
	if _, err := ParseEntryDate("Mon garbage here"); err == nil {
		t.Fatal("expected error for malformed calendar part")
	}
}
