package httpapi

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	gameService "github.com/nevix187/AmongUsIRL/internal/services/game"
)

// errorResponse is the JSON body for every non-2xx response
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// writeError maps service errors onto HTTP statuses. Precondition and
// lookup failures are the caller's fault; everything else is a 500.
func writeError(w http.ResponseWriter, err error) {
	var gameErr gameService.GameError
	if !errors.As(err, &gameErr) {
		log.Printf("internal error: %v", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "internal error"})
		return
	}

	status := http.StatusBadRequest
	switch gameErr {
	case gameService.ErrGameNotFound,
		gameService.ErrPlayerNotFound,
		gameService.ErrDeviceNotFound,
		gameService.ErrTaskNotFound,
		gameService.ErrMeetingNotFound:
		status = http.StatusNotFound
	case gameService.ErrInvalidAdminPassword:
		status = http.StatusUnauthorized
	case gameService.ErrDuplicatePlayerName,
		gameService.ErrAlreadyVoted,
		gameService.ErrInvalidGameState,
		gameService.ErrMeetingLimitReached,
		gameService.ErrSabotageActive:
		status = http.StatusConflict
	}

	writeJSON(w, status, errorResponse{Error: gameErr.Error()})
}

// decodeBody parses a JSON request body into dst
func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return false
	}
	return true
}
