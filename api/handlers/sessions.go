// Package handlers serves BioSpeak sessions over HTTP. Each session owns
// one engine; commands on a session are serialized by its own mutex.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/aria-lang/biospeak-go/internal/engine"
)

// EngineFactory builds the engine behind a new session.
type EngineFactory func() *engine.Engine

// SessionHooks is told when sessions open and close.
type SessionHooks interface {
	SessionOpened()
	SessionClosed()
}

// ErrTooManySessions is returned when the session limit is reached.
var ErrTooManySessions = errors.New("too many open sessions")

type session struct {
	mu      sync.Mutex
	engine  *engine.Engine
	created time.Time
}

// Sessions is the session store and its HTTP handlers.
type Sessions struct {
	newEngine EngineFactory
	max       int
	hooks     SessionHooks
	logger    *zap.Logger

	mu       sync.Mutex
	sessions map[string]*session
}

type SessionOption func(*Sessions)

// WithMaxSessions caps the number of open sessions. Zero means no cap.
func WithMaxSessions(n int) SessionOption {
	return func(s *Sessions) { s.max = n }
}

func WithHooks(h SessionHooks) SessionOption {
	return func(s *Sessions) { s.hooks = h }
}

func WithLogger(l *zap.Logger) SessionOption {
	return func(s *Sessions) { s.logger = l }
}

func NewSessions(factory EngineFactory, opts ...SessionOption) *Sessions {
	s := &Sessions{
		newEngine: factory,
		logger:    zap.NewNop(),
		sessions:  make(map[string]*session),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.newEngine == nil {
		s.newEngine = func() *engine.Engine { return engine.New() }
	}
	return s
}

// Routes mounts the session endpoints on r.
func (s *Sessions) Routes(r chi.Router) {
	r.Post("/", s.Create)
	r.Route("/{id}", func(r chi.Router) {
		r.Delete("/", s.Delete)
		r.Post("/commands", s.Command)
		r.Get("/workspace", s.Workspace)
		r.Post("/reset", s.Reset)
	})
}

// Len returns the number of open sessions.
func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

// open starts a session and returns its ID.
func (s *Sessions) open() (string, *session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.max > 0 && len(s.sessions) >= s.max {
		return "", nil, ErrTooManySessions
	}
	id := uuid.NewString()
	sess := &session{engine: s.newEngine(), created: time.Now()}
	s.sessions[id] = sess
	if s.hooks != nil {
		s.hooks.SessionOpened()
	}
	s.logger.Debug("session opened", zap.String("session", id))
	return id, sess, nil
}

// closeSession ends a session. It reports whether the session existed.
func (s *Sessions) closeSession(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	if !ok {
		return false
	}
	delete(s.sessions, id)
	if s.hooks != nil {
		s.hooks.SessionClosed()
	}
	s.logger.Debug("session closed",
		zap.String("session", id),
		zap.Duration("age", time.Since(sess.created)))
	return true
}

func (s *Sessions) lookup(id string) (*session, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.sessions[id]
	return sess, ok
}

// SessionResponse is returned when a session is created or reset.
type SessionResponse struct {
	ID        string            `json:"id"`
	Workspace WorkspaceSnapshot `json:"workspace"`
}

// CommandRequest carries one line of BioSpeak.
type CommandRequest struct {
	Command string `json:"command"`
}

// CommandResponse reports the outcome of a command. Status is ok, exit or
// error; ErrorKind is set only for errors.
type CommandResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Created   []string          `json:"created"`
	ErrorKind string            `json:"error_kind,omitempty"`
	Workspace WorkspaceSnapshot `json:"workspace"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Create handles POST /api/sessions.
func (s *Sessions) Create(w http.ResponseWriter, r *http.Request) {
	id, sess, err := s.open()
	if err != nil {
		writeError(w, http.StatusServiceUnavailable, err.Error())
		return
	}
	sess.mu.Lock()
	snap := Snapshot(sess.engine.Workspace())
	sess.mu.Unlock()
	writeJSON(w, http.StatusCreated, SessionResponse{ID: id, Workspace: snap})
}

// Delete handles DELETE /api/sessions/{id}.
func (s *Sessions) Delete(w http.ResponseWriter, r *http.Request) {
	if !s.closeSession(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Command handles POST /api/sessions/{id}/commands. A failed command is
// reported with 422 and leaves the workspace unchanged; an exit word
// closes the session.
func (s *Sessions) Command(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, ok := s.lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}

	var req CommandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	sess.mu.Lock()
	res, err := sess.engine.HandleContext(r.Context(), req.Command)
	snap := Snapshot(sess.engine.Workspace())
	sess.mu.Unlock()

	resp := CommandResponse{
		Status:    "ok",
		Message:   res.Message,
		Created:   res.Created,
		Workspace: snap,
	}
	if resp.Created == nil {
		resp.Created = []string{}
	}
	status := http.StatusOK
	switch {
	case err != nil:
		resp.Status = "error"
		resp.Message = err.Error()
		resp.ErrorKind = "internal"
		if kind, ok := engine.KindOf(err); ok {
			resp.ErrorKind = kind.String()
		}
		status = http.StatusUnprocessableEntity
	case res.Exit:
		resp.Status = "exit"
		s.closeSession(id)
	}
	writeJSON(w, status, resp)
}

// Workspace handles GET /api/sessions/{id}/workspace.
func (s *Sessions) Workspace(w http.ResponseWriter, r *http.Request) {
	sess, ok := s.lookup(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	sess.mu.Lock()
	snap := Snapshot(sess.engine.Workspace())
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, snap)
}

// Reset handles POST /api/sessions/{id}/reset.
func (s *Sessions) Reset(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	sess, ok := s.lookup(id)
	if !ok {
		writeError(w, http.StatusNotFound, "session not found")
		return
	}
	sess.mu.Lock()
	sess.engine.Workspace().Clear()
	snap := Snapshot(sess.engine.Workspace())
	sess.mu.Unlock()
	writeJSON(w, http.StatusOK, SessionResponse{ID: id, Workspace: snap})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
