package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Allison0802/NutriWise-AI-PWA/internal/db"
	"github.com/Allison0802/NutriWise-AI-PWA/internal/model"
)

const (
	blobLogs    = "logs"
	blobProfile = "profile"
	blobChat    = "chat_history"
)

const welcomeMessage = "Hi! I'm your nutrition assistant. Log a meal or ask me anything about your diet."

// Store is the session-scoped application state: the log list, the profile,
// and the chat transcript, loaded from their named blobs at open and
// rewritten on every mutation.
type Store struct {
	sqldb *sql.DB

	Logs    []model.LogEntry
	Profile model.Profile
	Chat    []model.ChatMessage
}

// Open opens the data file, applies migrations, and loads the three state
// blobs. A missing or corrupt blob falls back to its default without error.
func Open(path string) (*Store, error) {
	sqldb, err := db.Open(path)
	if err != nil {
		return nil, err
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		sqldb.Close()
		return nil, err
	}

	s := &Store{sqldb: sqldb}
	if err := s.load(); err != nil {
		sqldb.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error {
	return s.sqldb.Close()
}

func (s *Store) load() error {
	s.Logs = make([]model.LogEntry, 0)
	if body, ok, err := db.GetBlob(s.sqldb, blobLogs); err != nil {
		return err
	} else if ok {
		var logs []model.LogEntry
		if json.Unmarshal([]byte(body), &logs) == nil {
			s.Logs = logs
		}
	}

	s.Profile = model.DefaultProfile()
	if body, ok, err := db.GetBlob(s.sqldb, blobProfile); err != nil {
		return err
	} else if ok {
		var p model.Profile
		if json.Unmarshal([]byte(body), &p) == nil && p.Validate() == nil {
			s.Profile = p
		}
	}

	s.Chat = defaultChat()
	if body, ok, err := db.GetBlob(s.sqldb, blobChat); err != nil {
		return err
	} else if ok {
		var chat []model.ChatMessage
		if json.Unmarshal([]byte(body), &chat) == nil && len(chat) > 0 {
			s.Chat = chat
		}
	}
	return nil
}

func defaultChat() []model.ChatMessage {
	return []model.ChatMessage{{
		ID:        uuid.NewString(),
		Role:      model.RoleModel,
		Text:      welcomeMessage,
		Timestamp: time.Now().UnixMilli(),
	}}
}

func (s *Store) saveLogs() error {
	body, err := json.Marshal(s.Logs)
	if err != nil {
		return fmt.Errorf("marshal logs: %w", err)
	}
	return db.PutBlob(s.sqldb, blobLogs, string(body))
}

func (s *Store) saveProfile() error {
	body, err := json.Marshal(s.Profile)
	if err != nil {
		return fmt.Errorf("marshal profile: %w", err)
	}
	return db.PutBlob(s.sqldb, blobProfile, string(body))
}

func (s *Store) saveChat() error {
	body, err := json.Marshal(s.Chat)
	if err != nil {
		return fmt.Errorf("marshal chat history: %w", err)
	}
	return db.PutBlob(s.sqldb, blobChat, string(body))
}

// AddEntry appends a log entry. When the id is empty it is derived from the
// entry timestamp, de-duplicated against existing ids.
func (s *Store) AddEntry(entry model.LogEntry) (model.LogEntry, error) {
	if entry.Timestamp == 0 {
		entry.Timestamp = time.Now().UnixMilli()
	}
	if entry.ID == "" {
		entry.ID = model.NewEntryID(time.UnixMilli(entry.Timestamp))
		for s.hasEntry(entry.ID) {
			entry.Timestamp++
			entry.ID = model.NewEntryID(time.UnixMilli(entry.Timestamp))
		}
	} else if s.hasEntry(entry.ID) {
		return model.LogEntry{}, fmt.Errorf("entry %s already exists", entry.ID)
	}
	s.Logs = append(s.Logs, entry)
	if err := s.saveLogs(); err != nil {
		return model.LogEntry{}, err
	}
	return entry, nil
}

// UpdateEntry replaces an entry in place; id and timestamp are retained.
func (s *Store) UpdateEntry(entry model.LogEntry) error {
	for i := range s.Logs {
		if s.Logs[i].ID == entry.ID {
			entry.Timestamp = s.Logs[i].Timestamp
			s.Logs[i] = entry
			return s.saveLogs()
		}
	}
	return fmt.Errorf("entry %s not found", entry.ID)
}

func (s *Store) DeleteEntry(id string) error {
	for i := range s.Logs {
		if s.Logs[i].ID == id {
			s.Logs = append(s.Logs[:i], s.Logs[i+1:]...)
			return s.saveLogs()
		}
	}
	return fmt.Errorf("entry %s not found", id)
}

func (s *Store) EntryByID(id string) (model.LogEntry, bool) {
	for _, e := range s.Logs {
		if e.ID == id {
			return e, true
		}
	}
	return model.LogEntry{}, false
}

func (s *Store) hasEntry(id string) bool {
	_, ok := s.EntryByID(id)
	return ok
}

func (s *Store) SetProfile(p model.Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.Profile = p
	return s.saveProfile()
}

func (s *Store) ResetProfile() error {
	s.Profile = model.DefaultProfile()
	return s.saveProfile()
}

func (s *Store) AppendChat(role model.Role, text string) (model.ChatMessage, error) {
	msg := model.ChatMessage{
		ID:        uuid.NewString(),
		Role:      role,
		Text:      text,
		Timestamp: time.Now().UnixMilli(),
	}
	s.Chat = append(s.Chat, msg)
	if err := s.saveChat(); err != nil {
		return model.ChatMessage{}, err
	}
	return msg, nil
}

func (s *Store) ClearChat() error {
	s.Chat = defaultChat()
	return s.saveChat()
}

// ReplaceAll swaps in an imported state. Nil slices/profile leave the
// corresponding piece untouched; each replaced piece is persisted.
func (s *Store) ReplaceAll(profile *model.Profile, logs []model.LogEntry, chat []model.ChatMessage) error {
	if profile != nil {
		if err := profile.Validate(); err != nil {
			return err
		}
		s.Profile = *profile
		if err := s.saveProfile(); err != nil {
			return err
		}
	}
	if logs != nil {
		s.Logs = logs
		if err := s.saveLogs(); err != nil {
			return err
		}
	}
	if chat != nil {
		s.Chat = chat
		if err := s.saveChat(); err != nil {
			return err
		}
	}
	return nil
}

// Snapshot returns deep copies of the session state so callers cannot alias
// live slices.
func (s *Store) Snapshot() (model.Profile, []model.LogEntry, []model.ChatMessage) {
	logs := make([]model.LogEntry, len(s.Logs))
	copy(logs, s.Logs)
	for i := range logs {
		if len(logs[i].Items) > 0 {
			items := make([]model.FoodItem, len(logs[i].Items))
			copy(items, logs[i].Items)
			logs[i].Items = items
		}
		if logs[i].Exercise != nil {
			ex := *logs[i].Exercise
			logs[i].Exercise = &ex
		}
	}
	chat := make([]model.ChatMessage, len(s.Chat))
	copy(chat, s.Chat)
	return s.Profile, logs, chat
}
