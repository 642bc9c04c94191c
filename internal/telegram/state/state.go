// Package state provides an in-memory session store for multi-step chat
// dialogs. Sessions are keyed by chat id: one chat runs at most one dialog
// at a time, and dialogs in different chats never interact.
package state

import "sync"

// State identifies a finite-state-machine step used in conversations.
type State string

// StateIdle indicates there is no active dialog in the chat.
const StateIdle State = "idle"

// Session stores the dialog state and temporary data for one chat.
type Session struct {
	State    State
	TempData map[string]any
}

// Manager orchestrates chat sessions and dialog state transitions.
type Manager interface {
	SetState(chatID int64, st State)
	GetState(chatID int64) State
	InProgress(chatID int64) bool

	SetTemp(chatID int64, key string, value any)
	GetTemp(chatID int64, key string) (any, bool)
	ClearTemp(chatID int64, key string)

	// Clear removes the whole session: state and temp data.
	Clear(chatID int64)
}

type memoryManager struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

// NewMemoryManager constructs the in-memory Manager implementation. Sessions
// live for the lifetime of the process; a restart drops all in-flight
// dialogs.
func NewMemoryManager() Manager {
	return &memoryManager{sessions: make(map[int64]*Session)}
}

func (m *memoryManager) session(chatID int64) *Session {
	sess, ok := m.sessions[chatID]
	if !ok {
		sess = &Session{State: StateIdle, TempData: make(map[string]any)}
		m.sessions[chatID] = sess
	}
	return sess
}

// SetState sets the dialog state for the chat.
func (m *memoryManager) SetState(chatID int64, st State) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(chatID).State = st
}

// GetState returns the current dialog state, or StateIdle if none exists.
func (m *memoryManager) GetState(chatID int64) State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if sess, ok := m.sessions[chatID]; ok {
		return sess.State
	}
	return StateIdle
}

// InProgress reports whether the chat has an active dialog.
func (m *memoryManager) InProgress(chatID int64) bool {
	return m.GetState(chatID) != StateIdle
}

// SetTemp stores a temporary key/value pair in the chat session.
func (m *memoryManager) SetTemp(chatID int64, key string, value any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.session(chatID).TempData[key] = value
}

// GetTemp retrieves a temporary value by key.
func (m *memoryManager) GetTemp(chatID int64, key string) (any, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	sess, ok := m.sessions[chatID]
	if !ok {
		return nil, false
	}
	val, ok := sess.TempData[key]
	return val, ok
}

// ClearTemp removes a temporary key/value pair.
func (m *memoryManager) ClearTemp(chatID int64, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if sess, ok := m.sessions[chatID]; ok {
		delete(sess.TempData, key)
	}
}

// Clear removes the entire session for a chat.
func (m *memoryManager) Clear(chatID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, chatID)
}
