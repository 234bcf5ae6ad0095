package store_test

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/db"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/store"
)

func newTestStore(t *testing.T) (*store.Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nutriwise.db")
	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s, path
}

func TestOpenDefaults(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	if len(s.Logs) != 0 {
		t.Fatalf("expected empty log list, got %d entries", len(s.Logs))
	}
	if s.Profile != model.DefaultProfile() {
		t.Fatalf("expected default profile, got %+v", s.Profile)
	}
	if len(s.Chat) != 1 || s.Chat[0].Role != model.RoleModel {
		t.Fatalf("expected single welcome message, got %+v", s.Chat)
	}
}

func TestEntryLifecyclePersists(t *testing.T) {
	t.Parallel()
	s, path := newTestStore(t)

	at := time.Date(2026, 3, 10, 12, 30, 0, 0, time.Local)
	entry, err := s.AddEntry(model.LogEntry{
		Timestamp: at.UnixMilli(),
		Type:      model.EntryFood,
		Items: []model.FoodItem{{
			Name: "Banana", Quantity: 1, Unit: "piece",
			Calories: 105, Protein: 1.3, Carbs: 27, Fat: 0.4,
			BaseCalories: 105, BaseProtein: 1.3, BaseCarbs: 27, BaseFat: 0.4,
			Confidence: model.ConfidenceHigh,
		}},
	})
	if err != nil {
		t.Fatalf("add entry: %v", err)
	}
	if entry.ID == "" {
		t.Fatalf("expected generated entry id")
	}

	entry.Items[0].Notes = "pre-run snack"
	entry.Timestamp = 0 // must be retained from the stored entry
	if err := s.UpdateEntry(entry); err != nil {
		t.Fatalf("update entry: %v", err)
	}
	got, ok := s.EntryByID(entry.ID)
	if !ok || got.Timestamp != at.UnixMilli() {
		t.Fatalf("expected original timestamp retained, got %+v", got)
	}

	s.Close()
	reopened, err := store.Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()
	if len(reopened.Logs) != 1 || reopened.Logs[0].Items[0].Notes != "pre-run snack" {
		t.Fatalf("expected persisted entry after reopen, got %+v", reopened.Logs)
	}

	if err := reopened.DeleteEntry(entry.ID); err != nil {
		t.Fatalf("delete entry: %v", err)
	}
	if err := reopened.DeleteEntry(entry.ID); err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestAddEntryDedupesGeneratedIDs(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	at := time.Now()
	first, err := s.AddEntry(model.LogEntry{Timestamp: at.UnixMilli(), Type: model.EntryNote, Content: "a"})
	if err != nil {
		t.Fatalf("add first: %v", err)
	}
	second, err := s.AddEntry(model.LogEntry{Timestamp: at.UnixMilli(), Type: model.EntryNote, Content: "b"})
	if err != nil {
		t.Fatalf("add second: %v", err)
	}
	if first.ID == second.ID {
		t.Fatalf("expected distinct ids for same-millisecond entries")
	}
}

func TestSetProfileValidatesAndPersists(t *testing.T) {
	t.Parallel()
	s, path := newTestStore(t)

	p := s.Profile
	p.WeightKg = 82.5
	p.Goal = model.GoalLoseFat
	if err := s.SetProfile(p); err != nil {
		t.Fatalf("set profile: %v", err)
	}

	bad := p
	bad.Age = -3
	if err := s.SetProfile(bad); err == nil {
		t.Fatalf("expected validation error for negative age")
	}

	s.Close()
	reopened, err := store.Open(path)
	if err != nil {
		t.Fatalf("reopen store: %v", err)
	}
	defer reopened.Close()
	if reopened.Profile.WeightKg != 82.5 || reopened.Profile.Goal != model.GoalLoseFat {
		t.Fatalf("profile not persisted: %+v", reopened.Profile)
	}
}

func TestCorruptBlobFallsBackToDefaults(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nutriwise.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if err := db.PutBlob(sqldb, "logs", `{not json`); err != nil {
		t.Fatalf("seed corrupt logs blob: %v", err)
	}
	if err := db.PutBlob(sqldb, "profile", `"nope"`); err != nil {
		t.Fatalf("seed corrupt profile blob: %v", err)
	}
	sqldb.Close()

	s, err := store.Open(path)
	if err != nil {
		t.Fatalf("open store over corrupt blobs: %v", err)
	}
	defer s.Close()
	if len(s.Logs) != 0 {
		t.Fatalf("expected empty logs fallback, got %+v", s.Logs)
	}
	if s.Profile != model.DefaultProfile() {
		t.Fatalf("expected default profile fallback, got %+v", s.Profile)
	}
}

func TestChatTranscript(t *testing.T) {
	t.Parallel()
	s, _ := newTestStore(t)

	if _, err := s.AppendChat(model.RoleUser, "how did I do today?"); err != nil {
		t.Fatalf("append chat: %v", err)
	}
	if len(s.Chat) != 2 {
		t.Fatalf("expected welcome + 1 message, got %d", len(s.Chat))
	}
	if err := s.ClearChat(); err != nil {
		t.Fatalf("clear chat: %v", err)
	}
	if len(s.Chat) != 1 {
		t.Fatalf("expected transcript reset to welcome message, got %d", len(s.Chat))
	}
}
