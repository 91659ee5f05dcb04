package httpapi

import (
	"net/http"

	"github.com/nevix187/AmongUsIRL/internal/models"
	gameService "github.com/nevix187/AmongUsIRL/internal/services/game"
	messagingService "github.com/nevix187/AmongUsIRL/internal/services/messaging"
)

type triggerSabotageRequest struct {
	ImpostorID string              `json:"impostorId"`
	Type       models.SabotageType `json:"type"`
	Message    string              `json:"message,omitempty"`
}

type triggerSabotageResponse struct {
	Game         *models.Game          `json:"game"`
	Sabotage     *models.SabotageEvent `json:"sabotage"`
	Announcement string                `json:"announcement"`
}

func (h *Handler) triggerSabotage(w http.ResponseWriter, r *http.Request) {
	var req triggerSabotageRequest
	if !decodeBody(w, r, &req) {
		return
	}

	msg, err := h.config.MessagingService.GetSabotageMessage(r.Context(), &messagingService.GetSabotageMessageInput{
		Type:          req.Type,
		CustomMessage: req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	out, err := h.config.GameService.TriggerSabotage(r.Context(), &gameService.TriggerSabotageInput{
		GameID:     r.PathValue("id"),
		ImpostorID: req.ImpostorID,
		Type:       req.Type,
		Message:    msg.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, triggerSabotageResponse{
		Game:         out.Game,
		Sabotage:     out.Sabotage,
		Announcement: msg.Message,
	})
}

func (h *Handler) clearSabotage(w http.ResponseWriter, r *http.Request) {
	out, err := h.config.GameService.ClearSabotage(r.Context(), &gameService.ClearSabotageInput{
		GameID: r.PathValue("id"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Game)
}
