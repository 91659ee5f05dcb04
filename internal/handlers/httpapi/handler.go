package httpapi

import (
	"net/http"

	gameService "github.com/nevix187/AmongUsIRL/internal/services/game"
	messagingService "github.com/nevix187/AmongUsIRL/internal/services/messaging"
)

// HandlerError is a custom error type for handler-related errors
type HandlerError string

// Error implements the error interface
func (e HandlerError) Error() string {
	return string(e)
}

const (
	ErrNilConfig           HandlerError = "config cannot be nil"
	ErrNilGameService      HandlerError = "game service cannot be nil"
	ErrNilMessagingService HandlerError = "messaging service cannot be nil"
)

// Config holds configuration for the HTTP handler
type Config struct {
	GameService      gameService.Service
	MessagingService messagingService.Service
}

// Handler is the HTTP and WebSocket surface. It does routing and
// rendering only; game logic stays in the service layer.
type Handler struct {
	config *Config
	hub    *hub
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.GameService == nil {
		return nil, ErrNilGameService
	}
	if cfg.MessagingService == nil {
		return nil, ErrNilMessagingService
	}

	return &Handler{
		config: cfg,
		hub:    newHub(),
	}, nil
}

// Routes returns the handler's route table
func (h *Handler) Routes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/games", h.createGame)
	mux.HandleFunc("GET /api/games/current", h.getCurrentGame)
	mux.HandleFunc("GET /api/games/{id}", h.getGame)
	mux.HandleFunc("GET /api/games/by-code/{code}", h.getGameByCode)
	mux.HandleFunc("DELETE /api/games/{id}", h.deleteGame)
	mux.HandleFunc("POST /api/games/{id}/start", h.startGame)
	mux.HandleFunc("POST /api/games/{id}/reset", h.resetGame)
	mux.HandleFunc("POST /api/games/{id}/end", h.endGame)

	mux.HandleFunc("POST /api/join", h.joinGame)
	mux.HandleFunc("DELETE /api/games/{id}/players/{playerID}", h.removePlayer)

	mux.HandleFunc("POST /api/devices", h.registerDevice)
	mux.HandleFunc("PATCH /api/games/{id}/devices/{deviceID}", h.updateDevice)
	mux.HandleFunc("POST /api/games/{id}/devices/{deviceID}/tasks", h.addTask)
	mux.HandleFunc("DELETE /api/games/{id}/devices/{deviceID}/tasks/{taskID}", h.removeTask)
	mux.HandleFunc("POST /api/games/{id}/devices/{deviceID}/tasks/{taskID}/complete", h.completeTask)

	mux.HandleFunc("POST /api/games/{id}/meetings", h.callMeeting)
	mux.HandleFunc("POST /api/games/{id}/meetings/{meetingID}/votes", h.submitVote)

	mux.HandleFunc("POST /api/games/{id}/sabotage", h.triggerSabotage)
	mux.HandleFunc("DELETE /api/games/{id}/sabotage", h.clearSabotage)

	mux.HandleFunc("GET /ws", h.serveWS)

	return mux
}
