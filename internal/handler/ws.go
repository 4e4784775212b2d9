package handler

import (
	"log/slog"
	"net/http"

	"eatery/internal/notify"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"
)

// WSHandler подключает консоли операторов к хабу уведомлений.
type WSHandler struct {
	logger   *slog.Logger
	hub      *notify.Hub
	upgrader websocket.Upgrader
}

func NewWSHandler(logger *slog.Logger, hub *notify.Hub) *WSHandler {
	return &WSHandler{
		logger: logger.With(slog.String("handler", "ws")),
		hub:    hub,
		upgrader: websocket.Upgrader{
			// Консоль оператора живёт на другом origin
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *WSHandler) Init(r chi.Router) {
	r.Get("/ws/{sid}", h.Connect)
}

func (h *WSHandler) Connect(w http.ResponseWriter, r *http.Request) {
	sid := chi.URLParam(r, "sid")
	if sid == "" {
		http.Error(w, "missing session id", http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("failed to upgrade connection", slog.Any("error", err))
		return
	}

	h.hub.Join(sid, conn)
	defer h.hub.Leave(sid)

	// Входящие сообщения не обрабатываются, читаем только ради
	// обнаружения разрыва соединения.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
