package httpapi

import (
	"net/http"
	"strings"

	"github.com/nevix187/AmongUsIRL/internal/models"
	gameRepo "github.com/nevix187/AmongUsIRL/internal/repositories/game"
	gameService "github.com/nevix187/AmongUsIRL/internal/services/game"
	messagingService "github.com/nevix187/AmongUsIRL/internal/services/messaging"
)

type createGameRequest struct {
	HostID        string               `json:"hostId"`
	ImpostorCount int                  `json:"impostorCount"`
	AdminPassword string               `json:"adminPassword"`
	Settings      *models.GameSettings `json:"settings,omitempty"`
}

func (h *Handler) createGame(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.config.GameService.CreateGame(r.Context(), &gameService.CreateGameInput{
		HostID:        req.HostID,
		ImpostorCount: req.ImpostorCount,
		AdminPassword: req.AdminPassword,
		Settings:      req.Settings,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, out.Game)
}

func (h *Handler) getGame(w http.ResponseWriter, r *http.Request) {
	out, err := h.config.GameService.GetGame(r.Context(), &gameService.GetGameInput{
		GameID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Game)
}

func (h *Handler) getCurrentGame(w http.ResponseWriter, r *http.Request) {
	out, err := h.config.GameService.GetCurrentGame(r.Context(), &gameService.GetCurrentGameInput{})
	if err != nil {
		writeError(w, err)
		return
	}

	if out.Game == nil {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "no current game"})
		return
	}

	writeJSON(w, http.StatusOK, out.Game)
}

func (h *Handler) getGameByCode(w http.ResponseWriter, r *http.Request) {
	kind := gameRepo.CodeKindGame
	if strings.EqualFold(r.URL.Query().Get("kind"), string(gameRepo.CodeKindDevice)) {
		kind = gameRepo.CodeKindDevice
	}

	out, err := h.config.GameService.GetGameByCode(r.Context(), &gameService.GetGameByCodeInput{
		Code: r.PathValue("code"),
		Kind: kind,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Game)
}

type deleteGameRequest struct {
	AdminPassword string `json:"adminPassword"`
}

func (h *Handler) deleteGame(w http.ResponseWriter, r *http.Request) {
	var req deleteGameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	if _, err := h.config.GameService.DeleteGame(r.Context(), &gameService.DeleteGameInput{
		GameID:        r.PathValue("id"),
		AdminPassword: req.AdminPassword,
	}); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type joinGameRequest struct {
	GameCode   string `json:"gameCode"`
	PlayerName string `json:"playerName"`
}

type joinGameResponse struct {
	Game         *models.Game   `json:"game"`
	Player       *models.Player `json:"player"`
	Announcement string         `json:"announcement"`
}

func (h *Handler) joinGame(w http.ResponseWriter, r *http.Request) {
	var req joinGameRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.config.GameService.JoinGame(r.Context(), &gameService.JoinGameInput{
		GameCode:   req.GameCode,
		PlayerName: req.PlayerName,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	msg, _ := h.config.MessagingService.GetJoinMessage(r.Context(), &messagingService.GetJoinMessageInput{
		PlayerName: out.Player.Name,
	})

	resp := joinGameResponse{Game: out.Game, Player: out.Player}
	if msg != nil {
		resp.Announcement = msg.Message
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) removePlayer(w http.ResponseWriter, r *http.Request) {
	out, err := h.config.GameService.RemovePlayer(r.Context(), &gameService.RemovePlayerInput{
		GameID:   r.PathValue("id"),
		PlayerID: r.PathValue("playerID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Game)
}

func (h *Handler) startGame(w http.ResponseWriter, r *http.Request) {
	out, err := h.config.GameService.StartGame(r.Context(), &gameService.StartGameInput{
		GameID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Game)
}

func (h *Handler) resetGame(w http.ResponseWriter, r *http.Request) {
	out, err := h.config.GameService.ResetGame(r.Context(), &gameService.ResetGameInput{
		GameID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Game)
}

type endGameRequest struct {
	Winner models.Winner    `json:"winner"`
	Reason models.WinReason `json:"reason"`
}

func (h *Handler) endGame(w http.ResponseWriter, r *http.Request) {
	req := endGameRequest{
		Winner: models.WinnerCrewmates,
		Reason: models.WinReasonManualEnd,
	}
	if r.ContentLength > 0 && !decodeBody(w, r, &req) {
		return
	}

	out, err := h.config.GameService.EndGame(r.Context(), &gameService.EndGameInput{
		GameID: r.PathValue("id"),
		Winner: req.Winner,
		Reason: req.Reason,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Game)
}
