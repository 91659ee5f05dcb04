package httpapi

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/nevix187/AmongUsIRL/internal/models"
	gameService "github.com/nevix187/AmongUsIRL/internal/services/game"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	sendBufferSize = 8
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// The phone clients are served from a different origin than the API
	CheckOrigin: func(r *http.Request) bool { return true },
}

// subscriber is one WebSocket client watching one game
type subscriber struct {
	gameID string
	send   chan []byte
}

// hub fans game updates out to WebSocket subscribers. Delivery is
// fire-and-forget: a client that cannot keep up is dropped.
type hub struct {
	mu   sync.Mutex
	subs map[*subscriber]bool
}

func newHub() *hub {
	return &hub{subs: make(map[*subscriber]bool)}
}

func (h *hub) register(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.subs[sub] = true
}

func (h *hub) unregister(sub *subscriber) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.subs[sub] {
		delete(h.subs, sub)
		close(sub.send)
	}
}

// broadcast pushes each game's aggregate to its subscribers
func (h *hub) broadcast(games map[string]*models.Game) {
	h.mu.Lock()
	defer h.mu.Unlock()

	encoded := make(map[string][]byte)
	for sub := range h.subs {
		game, ok := games[sub.gameID]
		if !ok {
			continue
		}

		payload, seen := encoded[sub.gameID]
		if !seen {
			var err error
			payload, err = json.Marshal(game)
			if err != nil {
				log.Printf("failed to encode game %s for push: %v", sub.gameID, err)
				continue
			}
			encoded[sub.gameID] = payload
		}

		select {
		case sub.send <- payload:
		default:
			delete(h.subs, sub)
			close(sub.send)
		}
	}
}

// Start consumes the game watch channel and fans updates out to
// WebSocket clients until the context is cancelled
func (h *Handler) Start(ctx context.Context) error {
	updates, err := h.config.GameService.WatchGames(ctx)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case games, ok := <-updates:
				if !ok {
					return
				}
				h.hub.broadcast(games)
			}
		}
	}()

	return nil
}

func (h *Handler) serveWS(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("game")
	if gameID == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "game query parameter is required"})
		return
	}

	out, err := h.config.GameService.GetGame(r.Context(), &gameService.GetGameInput{GameID: gameID})
	if err != nil {
		writeError(w, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade failed: %v", err)
		return
	}

	sub := &subscriber{
		gameID: gameID,
		send:   make(chan []byte, sendBufferSize),
	}
	h.hub.register(sub)

	// Seed the client with the current aggregate before any update lands
	if payload, err := json.Marshal(out.Game); err == nil {
		sub.send <- payload
	}

	go h.writeLoop(conn, sub)
	go h.readLoop(conn, sub)
}

func (h *Handler) writeLoop(conn *websocket.Conn, sub *subscriber) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case payload, ok := <-sub.send:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

func (h *Handler) readLoop(conn *websocket.Conn, sub *subscriber) {
	defer func() {
		h.hub.unregister(sub)
		conn.Close()
	}()

	conn.SetReadLimit(512)
	conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	// Clients only listen; drain until the connection drops
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
