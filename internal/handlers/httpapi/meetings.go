package httpapi

import (
	"net/http"

	"github.com/nevix187/AmongUsIRL/internal/models"
	gameService "github.com/nevix187/AmongUsIRL/internal/services/game"
	messagingService "github.com/nevix187/AmongUsIRL/internal/services/messaging"
)

type callMeetingRequest struct {
	ReporterID       string             `json:"reporterId"`
	Type             models.MeetingType `json:"type"`
	ReportedPlayerID string             `json:"reportedPlayerId,omitempty"`
}

type callMeetingResponse struct {
	Game         *models.Game    `json:"game"`
	Meeting      *models.Meeting `json:"meeting"`
	Announcement string          `json:"announcement"`
}

func (h *Handler) callMeeting(w http.ResponseWriter, r *http.Request) {
	var req callMeetingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.config.GameService.CallMeeting(r.Context(), &gameService.CallMeetingInput{
		GameID:           r.PathValue("id"),
		ReporterID:       req.ReporterID,
		Type:             req.Type,
		ReportedPlayerID: req.ReportedPlayerID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := callMeetingResponse{Game: out.Game, Meeting: out.Meeting}

	reporter := out.Game.FindPlayer(req.ReporterID)
	reported := out.Game.FindPlayer(req.ReportedPlayerID)
	msgInput := &messagingService.GetMeetingMessageInput{Type: req.Type}
	if reporter != nil {
		msgInput.ReporterName = reporter.Name
	}
	if reported != nil {
		msgInput.ReportedName = reported.Name
	}
	if msg, msgErr := h.config.MessagingService.GetMeetingMessage(r.Context(), msgInput); msgErr == nil {
		resp.Announcement = msg.Message
	}

	writeJSON(w, http.StatusCreated, resp)
}

type submitVoteRequest struct {
	VoterID  string `json:"voterId"`
	TargetID string `json:"targetId"`
}

func (h *Handler) submitVote(w http.ResponseWriter, r *http.Request) {
	var req submitVoteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.config.GameService.SubmitVote(r.Context(), &gameService.SubmitVoteInput{
		GameID:    r.PathValue("id"),
		MeetingID: r.PathValue("meetingID"),
		VoterID:   req.VoterID,
		TargetID:  req.TargetID,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Game)
}
