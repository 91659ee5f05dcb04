package httpapi

import (
	"net/http"

	gameService "github.com/nevix187/AmongUsIRL/internal/services/game"
)

type registerDeviceRequest struct {
	DeviceCode string `json:"deviceCode"`
	Name       string `json:"name"`
	Location   string `json:"location"`
}

func (h *Handler) registerDevice(w http.ResponseWriter, r *http.Request) {
	var req registerDeviceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.config.GameService.RegisterDevice(r.Context(), &gameService.RegisterDeviceInput{
		DeviceCode: req.DeviceCode,
		Name:       req.Name,
		Location:   req.Location,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, out.Device)
}

type updateDeviceRequest struct {
	Name     *string `json:"name,omitempty"`
	Location *string `json:"location,omitempty"`
}

func (h *Handler) updateDevice(w http.ResponseWriter, r *http.Request) {
	var req updateDeviceRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.config.GameService.UpdateDevice(r.Context(), &gameService.UpdateDeviceInput{
		GameID:   r.PathValue("id"),
		DeviceID: r.PathValue("deviceID"),
		Patch: gameService.DevicePatch{
			Name:     req.Name,
			Location: req.Location,
		},
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Device)
}

type addTaskRequest struct {
	Name string `json:"name"`
}

func (h *Handler) addTask(w http.ResponseWriter, r *http.Request) {
	var req addTaskRequest
	if !decodeBody(w, r, &req) {
		return
	}

	out, err := h.config.GameService.AddTask(r.Context(), &gameService.AddTaskInput{
		GameID:   r.PathValue("id"),
		DeviceID: r.PathValue("deviceID"),
		Name:     req.Name,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, out.Task)
}

func (h *Handler) removeTask(w http.ResponseWriter, r *http.Request) {
	out, err := h.config.GameService.RemoveTask(r.Context(), &gameService.RemoveTaskInput{
		GameID:   r.PathValue("id"),
		DeviceID: r.PathValue("deviceID"),
		TaskID:   r.PathValue("taskID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Game)
}

func (h *Handler) completeTask(w http.ResponseWriter, r *http.Request) {
	out, err := h.config.GameService.CompleteTask(r.Context(), &gameService.CompleteTaskInput{
		GameID:   r.PathValue("id"),
		DeviceID: r.PathValue("deviceID"),
		TaskID:   r.PathValue("taskID"),
	})
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, out.Task)
}
