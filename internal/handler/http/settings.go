package http

import (
	"encoding/json"
	"net/http"

	"github.com/attendash/attendance-backend-go/internal/domain/settings"
	"github.com/attendash/attendance-backend-go/internal/handler/http/response"
)

type SettingsHandler interface {
	GetTimeWindows(w http.ResponseWriter, r *http.Request)
	UpdateTimeWindows(w http.ResponseWriter, r *http.Request)
}

type settingsHandlerImpl struct {
	windowsService settings.WindowsService
}

func NewSettingsHandler(windowsService settings.WindowsService) SettingsHandler {
	return &settingsHandlerImpl{windowsService: windowsService}
}

// GetTimeWindows implements SettingsHandler.
func (h *settingsHandlerImpl) GetTimeWindows(w http.ResponseWriter, r *http.Request) {
	result, err := h.windowsService.Get(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// UpdateTimeWindows implements SettingsHandler. The new windows take effect
// on the next scan; nothing already recorded is rewritten.
func (h *settingsHandlerImpl) UpdateTimeWindows(w http.ResponseWriter, r *http.Request) {
	var req settings.UpdateWindowsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.windowsService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Time windows updated", result)
}
