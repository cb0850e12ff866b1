// Package session tracks the stateful upload/merge/stamp workflow.
//
// Types:
//   - Session: Uploaded files, the current output file and the merge status
//     of one client.
//   - SessionManager: All active sessions, swept once they outlive a TTL.
//
// Expected outputs:
// - Session IDs are unique (UUID)
// - Files are tracked per session
// - Cleanup removes all files for a session
package session

import (
	"log/slog"
	"os"
	"sync"
	"time"

	"go-pdftools/internal/utils"
)

// MergeStatus is where a session is in its single merge.
type MergeStatus string

const (
	StatusIdle       MergeStatus = "idle"
	StatusInProgress MergeStatus = "in_progress"
	StatusDone       MergeStatus = "done"
)

type Session struct {
	ID        string
	CreatedAt time.Time

	mu          sync.Mutex
	files       []string
	outputFile  string
	mergeStatus MergeStatus
}

type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

func (sm *SessionManager) CreateSession() *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	s := &Session{
		ID:          utils.GenerateUUID(),
		CreatedAt:   time.Now(),
		mergeStatus: StatusIdle,
	}
	sm.sessions[s.ID] = s
	return s
}

func (sm *SessionManager) GetSession(id string) (*Session, bool) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	s, exists := sm.sessions[id]
	return s, exists
}

func (sm *SessionManager) DeleteSession(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	delete(sm.sessions, id)
}

// Len is the number of active sessions.
func (sm *SessionManager) Len() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}

// Sweep removes every session created more than ttl before now, together
// with its files, and returns how many were removed.
func (sm *SessionManager) Sweep(now time.Time, ttl time.Duration) int {
	sm.mu.Lock()
	var expired []*Session
	for id, s := range sm.sessions {
		if now.Sub(s.CreatedAt) > ttl {
			expired = append(expired, s)
			delete(sm.sessions, id)
		}
	}
	sm.mu.Unlock()

	for _, s := range expired {
		s.Cleanup()
	}
	return len(expired)
}

func (s *Session) AddFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append(s.files, path)
}

func (s *Session) SetFiles(files []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.files = append([]string(nil), files...)
}

func (s *Session) GetFiles() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.files...)
}

func (s *Session) HasFile(path string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, f := range s.files {
		if f == path {
			return true
		}
	}
	return false
}

func (s *Session) OutputFile() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.outputFile
}

// SetOutputFile records path as the session result and removes the
// previous one.
func (s *Session) SetOutputFile(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.outputFile != "" && s.outputFile != path {
		slog.Debug("removing old output file", "session", s.ID, "path", s.outputFile)
		os.Remove(s.outputFile)
	}
	s.outputFile = path
}

func (s *Session) Status() MergeStatus {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mergeStatus
}

// BeginMerge moves an idle session to in progress. It reports the status
// found instead when the session is not idle.
func (s *Session) BeginMerge() (MergeStatus, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.mergeStatus != StatusIdle {
		return s.mergeStatus, false
	}
	s.mergeStatus = StatusInProgress
	return StatusInProgress, true
}

// EndMerge finishes a merge started with BeginMerge. A failed merge
// (empty output) puts the session back to idle.
func (s *Session) EndMerge(output string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if output == "" {
		s.mergeStatus = StatusIdle
		return
	}
	s.outputFile = output
	s.mergeStatus = StatusDone
}

func (s *Session) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, file := range s.files {
		os.Remove(file)
	}
	if s.outputFile != "" {
		os.Remove(s.outputFile)
	}
}
