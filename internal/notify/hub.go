package notify

import (
	"log/slog"
	"sync"

	"eatery/internal/entities"
)

// Session — подключённая консоль оператора. *websocket.Conn из gorilla
// удовлетворяет интерфейсу, в тестах подставляются фейки.
type Session interface {
	WriteJSON(v any) error
	Close() error
}

// Hub — реестр операторских сессий с best-effort рассылкой.
// Join/Leave/Broadcast безопасны при любом чередовании из разных горутин.
type Hub struct {
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]Session
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:   logger.With(slog.String("service", "notify")),
		sessions: make(map[string]Session),
	}
}

func (h *Hub) Join(sid string, s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// Повторный connect с тем же sid вытесняет старую сессию.
	if old, ok := h.sessions[sid]; ok {
		old.Close()
	}
	h.sessions[sid] = s

	h.logger.Debug("session joined", slog.String("sid", sid), slog.Int("sessions", len(h.sessions)))
}

func (h *Hub) Leave(sid string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if s, ok := h.sessions[sid]; ok {
		delete(h.sessions, sid)
		s.Close()
	}
}

// Broadcast шлёт сообщение всем сессиям. Запись идёт вне блокировки по
// снимку реестра: упавшая запись в одну сессию выбрасывает её из реестра
// и не мешает доставке остальным.
func (h *Hub) Broadcast(msg entities.Notification) {
	h.mu.RLock()
	snapshot := make(map[string]Session, len(h.sessions))
	for sid, s := range h.sessions {
		snapshot[sid] = s
	}
	h.mu.RUnlock()

	for sid, s := range snapshot {
		if err := s.WriteJSON(msg); err != nil {
			h.logger.Warn("failed to deliver notification",
				slog.String("sid", sid),
				slog.Any("error", err),
			)
			broadcastFailures.Inc()
			h.evict(sid, s)
			continue
		}
		broadcastDeliveries.Inc()
	}
}

// evict убирает сессию из реестра, только если под sid всё ещё она:
// между снимком и упавшей записью под тем же sid могла переподключиться
// свежая сессия.
func (h *Hub) evict(sid string, s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sessions[sid] == s {
		delete(h.sessions, sid)
		s.Close()
	}
}

func (h *Hub) Sessions() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.sessions)
}
