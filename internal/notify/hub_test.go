package notify_test

import (
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"eatery/internal/entities"
	"eatery/internal/notify"

	"github.com/stretchr/testify/assert"
)

type fakeSession struct {
	mu       sync.Mutex
	messages []entities.Notification
	failing  bool
	closed   bool
}

func (s *fakeSession) WriteJSON(v any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.failing {
		return errors.New("broken pipe")
	}
	s.messages = append(s.messages, v.(entities.Notification))
	return nil
}

func (s *fakeSession) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

func (s *fakeSession) delivered() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.messages)
}

func newHub() *notify.Hub {
	return notify.NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestHub_Broadcast(t *testing.T) {
	hub := newHub()

	first := &fakeSession{}
	second := &fakeSession{}
	hub.Join("op-1", first)
	hub.Join("op-2", second)

	msg := entities.Notification{Type: entities.NotificationNewOrder, OrderID: 42, Content: "order is paid"}
	hub.Broadcast(msg)

	assert.Equal(t, 1, first.delivered())
	assert.Equal(t, 1, second.delivered())
	assert.Equal(t, msg, first.messages[0])
}

// Упавшая запись выкидывает сессию из реестра и не мешает остальным.
func TestHub_Broadcast_FailedSessionIsEvicted(t *testing.T) {
	hub := newHub()

	healthy := &fakeSession{}
	broken := &fakeSession{failing: true}
	other := &fakeSession{}
	hub.Join("op-1", healthy)
	hub.Join("op-2", broken)
	hub.Join("op-3", other)

	hub.Broadcast(entities.Notification{Type: entities.NotificationReminder, OrderID: 42})

	assert.Equal(t, 1, healthy.delivered())
	assert.Equal(t, 1, other.delivered())
	assert.Equal(t, 2, hub.Sessions())
	assert.True(t, broken.closed)

	// Следующая рассылка уже не трогает выброшенную сессию.
	hub.Broadcast(entities.Notification{Type: entities.NotificationReminder, OrderID: 43})
	assert.Equal(t, 2, healthy.delivered())
}

// Сессия, которая в момент рассылки падает и тут же переподключается под
// тем же sid: выброс старого экземпляра не должен задевать свежий.
type reconnectingSession struct {
	fakeSession
	hub   *notify.Hub
	sid   string
	fresh *fakeSession
}

func (s *reconnectingSession) WriteJSON(v any) error {
	s.hub.Join(s.sid, s.fresh)
	return errors.New("broken pipe")
}

func TestHub_Broadcast_EvictionSkipsRejoinedSession(t *testing.T) {
	hub := newHub()

	fresh := &fakeSession{}
	stale := &reconnectingSession{hub: hub, sid: "op-1", fresh: fresh}
	hub.Join("op-1", stale)

	hub.Broadcast(entities.Notification{Type: entities.NotificationNewOrder, OrderID: 42})

	assert.Equal(t, 1, hub.Sessions())
	assert.False(t, fresh.closed)

	hub.Broadcast(entities.Notification{Type: entities.NotificationNewOrder, OrderID: 43})
	assert.Equal(t, 1, fresh.delivered())
}

func TestHub_Join_SameSIDEvictsOldSession(t *testing.T) {
	hub := newHub()

	old := &fakeSession{}
	fresh := &fakeSession{}
	hub.Join("op-1", old)
	hub.Join("op-1", fresh)

	assert.Equal(t, 1, hub.Sessions())
	assert.True(t, old.closed)

	hub.Broadcast(entities.Notification{Type: entities.NotificationNewOrder, OrderID: 42})
	assert.Equal(t, 0, old.delivered())
	assert.Equal(t, 1, fresh.delivered())
}

func TestHub_Leave(t *testing.T) {
	hub := newHub()

	s := &fakeSession{}
	hub.Join("op-1", s)
	hub.Leave("op-1")

	assert.Equal(t, 0, hub.Sessions())
	assert.True(t, s.closed)

	// Leave по незнакомому sid безопасен.
	hub.Leave("op-1")
}

func TestHub_ConcurrentAccess(t *testing.T) {
	hub := newHub()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(3)
		sid := string(rune('a' + i))

		go func() {
			defer wg.Done()
			hub.Join(sid, &fakeSession{})
		}()
		go func() {
			defer wg.Done()
			hub.Broadcast(entities.Notification{Type: entities.NotificationNewOrder, OrderID: 1})
		}()
		go func() {
			defer wg.Done()
			hub.Leave(sid)
		}()
	}
	wg.Wait()
}
