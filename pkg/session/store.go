package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"modelpickd/pkg/engine"
	"modelpickd/pkg/logging"
)

// ErrChatNotFound indicates that an unknown chat was requested. If returned
// in conjunction with an HTTP request, it should be paired with a 404
// response status.
var ErrChatNotFound = errors.New("chat not found")

// Chat is a persisted conversation.
type Chat struct {
	// ID is the chat identifier.
	ID string `json:"id"`
	// Title is the user-visible chat title.
	Title string `json:"title"`
	// ModelID is the model selected for this chat.
	ModelID string `json:"modelId"`
	// CreatedAt is the creation timestamp.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is the timestamp of the most recent change.
	UpdatedAt time.Time `json:"updatedAt"`
	// Messages is the ordered message history.
	Messages []engine.Message `json:"messages"`
}

// Store persists chats as a single JSON file. The file is read once at
// construction and rewritten on every change.
type Store struct {
	// log is the associated logger.
	log logging.Logger
	// path is the backing file path.
	path string
	// lock serializes access to chats and the backing file.
	lock sync.Mutex
	// chats holds all persisted chats, oldest first.
	chats []Chat
	// now reports the current time. Wall clock by default.
	now func() time.Time
}

// NewStore creates a chat store backed by the file at path. A missing file
// is treated as an empty store; a corrupt file is an error.
func NewStore(log logging.Logger, path string) (*Store, error) {
	s := &Store{log: log, path: path, now: time.Now}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading chat store: %w", err)
	}
	if err := json.Unmarshal(data, &s.chats); err != nil {
		return nil, fmt.Errorf("decoding chat store: %w", err)
	}
	log.Infof("Loaded %d chats from %s", len(s.chats), path)
	return s, nil
}

// List returns all chats, most recently updated first.
func (s *Store) List() []Chat {
	s.lock.Lock()
	defer s.lock.Unlock()
	chats := make([]Chat, len(s.chats))
	copy(chats, s.chats)
	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].UpdatedAt.After(chats[j].UpdatedAt)
	})
	return chats
}

// Get returns the chat with the given identifier.
func (s *Store) Get(id string) (Chat, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	for _, chat := range s.chats {
		if chat.ID == id {
			return chat, nil
		}
	}
	return Chat{}, ErrChatNotFound
}

// Create adds a new chat with the given title and model and persists the
// store.
func (s *Store) Create(title, modelID string) (Chat, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	now := s.now()
	chat := Chat{
		ID:        fmt.Sprintf("chat-%d", now.UnixNano()),
		Title:     title,
		ModelID:   modelID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.chats = append(s.chats, chat)
	if err := s.save(); err != nil {
		s.chats = s.chats[:len(s.chats)-1]
		return Chat{}, err
	}
	return chat, nil
}

// AppendMessage appends a message to the chat with the given identifier and
// persists the store.
func (s *Store) AppendMessage(id string, message engine.Message) (Chat, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	for i := range s.chats {
		if s.chats[i].ID != id {
			continue
		}
		s.chats[i].Messages = append(s.chats[i].Messages, message)
		s.chats[i].UpdatedAt = s.now()
		if err := s.save(); err != nil {
			return Chat{}, err
		}
		return s.chats[i], nil
	}
	return Chat{}, ErrChatNotFound
}

// save writes the store to disk. The write goes through a temporary file so
// a crash mid-write cannot corrupt the store. Callers must hold lock.
func (s *Store) save() error {
	data, err := json.MarshalIndent(s.chats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding chat store: %w", err)
	}
	temporary := s.path + ".tmp"
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating chat store directory: %w", err)
	}
	if err := os.WriteFile(temporary, data, 0o644); err != nil {
		return fmt.Errorf("writing chat store: %w", err)
	}
	if err := os.Rename(temporary, s.path); err != nil {
		return fmt.Errorf("replacing chat store: %w", err)
	}
	return nil
}
