package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"modelpickd/pkg/logging"
)

// Manager exposes chat persistence over HTTP.
type Manager struct {
	// log is the associated logger.
	log logging.Logger
	// store is the backing chat store.
	store *Store
	// router is the HTTP request router.
	router *http.ServeMux
}

// NewManager creates a new session manager.
func NewManager(log logging.Logger, store *Store) *Manager {
	m := &Manager{
		log:    log,
		store:  store,
		router: http.NewServeMux(),
	}

	// Register routes.
	m.router.HandleFunc("/", func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	m.router.HandleFunc("GET /picker/v1/chats", m.handleGetChats)
	m.router.HandleFunc("POST /picker/v1/chats", m.handleCreateChat)
	m.router.HandleFunc("GET /picker/v1/chats/{id}", m.handleGetChat)

	return m
}

// GetRoutes returns the routes handled by the manager.
func (m *Manager) GetRoutes() []string {
	return []string{
		"GET /picker/v1/chats",
		"POST /picker/v1/chats",
		"GET /picker/v1/chats/{id}",
	}
}

// ChatCreateRequest is the body of a chat creation request.
type ChatCreateRequest struct {
	// Title is the user-visible chat title.
	Title string `json:"title"`
	// ModelID is the model selected for this chat.
	ModelID string `json:"modelId"`
}

// handleGetChats handles GET /picker/v1/chats requests.
func (m *Manager) handleGetChats(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(m.store.List()); err != nil {
		m.log.Warnln("Error while encoding chat listing response:", err)
	}
}

// handleCreateChat handles POST /picker/v1/chats requests.
func (m *Manager) handleCreateChat(w http.ResponseWriter, r *http.Request) {
	var request ChatCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if request.Title == "" {
		http.Error(w, "missing chat title", http.StatusBadRequest)
		return
	}

	chat, err := m.store.Create(request.Title, request.ModelID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(chat); err != nil {
		m.log.Warnln("Error while encoding chat response:", err)
	}
}

// handleGetChat handles GET /picker/v1/chats/{id} requests.
func (m *Manager) handleGetChat(w http.ResponseWriter, r *http.Request) {
	chat, err := m.store.Get(r.PathValue("id"))
	if err != nil {
		if errors.Is(err, ErrChatNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
		} else {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(chat); err != nil {
		m.log.Warnln("Error while encoding chat response:", err)
	}
}

// ServeHTTP implements net/http.Handler.ServeHTTP.
func (m *Manager) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	m.router.ServeHTTP(w, r)
}
