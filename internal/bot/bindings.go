package bot

import (
	"fmt"
	"sync"

	"github.com/restovik/reservebot/internal/reservation"
)

// MissingBindingError reports a button press on a message the bot no longer
// knows about, typically after a restart dropped the in-memory bindings.
type MissingBindingError struct {
	ChatID    int64
	MessageID int
}

func (e *MissingBindingError) Error() string {
	return fmt.Sprintf("no reservation bound to message %d in chat %d", e.MessageID, e.ChatID)
}

// Code returns a stable identifier used as err_code in logs.
func (e *MissingBindingError) Code() string { return "MISSING_BINDING" }

// Bindings maps displayed messages to the reservations they show, scoped per
// chat. Bindings are process-lifetime only and are never persisted.
type Bindings struct {
	mu     sync.RWMutex
	byChat map[int64]map[int]*reservation.Reservation
}

// NewBindings creates an empty binding table.
func NewBindings() *Bindings {
	return &Bindings{byChat: make(map[int64]map[int]*reservation.Reservation)}
}

// Bind records (or overwrites) which reservation a message shows.
func (b *Bindings) Bind(chatID int64, messageID int, r *reservation.Reservation) {
	b.mu.Lock()
	defer b.mu.Unlock()
	chat, ok := b.byChat[chatID]
	if !ok {
		chat = make(map[int]*reservation.Reservation)
		b.byChat[chatID] = chat
	}
	chat[messageID] = r
}

// Lookup resolves the reservation a message shows.
func (b *Bindings) Lookup(chatID int64, messageID int) (*reservation.Reservation, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if chat, ok := b.byChat[chatID]; ok {
		if r, ok := chat[messageID]; ok {
			return r, nil
		}
	}
	return nil, &MissingBindingError{ChatID: chatID, MessageID: messageID}
}

// Forget drops the binding for a deleted or cancelled message.
func (b *Bindings) Forget(chatID int64, messageID int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if chat, ok := b.byChat[chatID]; ok {
		delete(chat, messageID)
		if len(chat) == 0 {
			delete(b.byChat, chatID)
		}
	}
}
