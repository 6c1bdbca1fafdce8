package applications

import (
	"encoding/json"
	"net/http"

	"api/schemas"
	"api/utils"
)

type createRequest struct {
	Name          string `json:"name" validate:"required"`
	Phone         string `json:"phone" validate:"required"`
	Address       string `json:"address" validate:"required"`
	DetailAddress string `json:"detail_address"`
	MattressType  string `json:"mattress_type"`
	MattressAge   string `json:"mattress_age"`
	PreferredDate string `json:"preferred_date"`
	PreferredTime string `json:"preferred_time"`
	Message       string `json:"message"`
}

// CreateOne handles the public application form. Status and created_at are
// assigned server side; the webhook sink is notified after the write lands.
func (h *Handler) CreateOne(w http.ResponseWriter, r *http.Request) {
	var req createRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := validate.Struct(req); err != nil {
		utils.SendError(w, http.StatusBadRequest, "name, phone and address are required", err)
		return
	}

	if req.PreferredDate != "" && !utils.IsValidDate(req.PreferredDate) {
		utils.SendError(w, http.StatusBadRequest, "preferred_date must be an ISO date", nil)
		return
	}
	if req.PreferredTime != "" && !utils.IsValidTime(req.PreferredTime) {
		utils.SendError(w, http.StatusBadRequest, "preferred_time must be HH:MM", nil)
		return
	}

	app := &schemas.Application{
		Name:          req.Name,
		Phone:         req.Phone,
		Address:       req.Address,
		DetailAddress: req.DetailAddress,
		MattressType:  req.MattressType,
		MattressAge:   req.MattressAge,
		PreferredDate: req.PreferredDate,
		PreferredTime: req.PreferredTime,
		Message:       req.Message,
	}

	id, err := h.store.CreateApplication(r.Context(), app)
	if err != nil {
		utils.SendError(w, http.StatusInternalServerError, "Could not save the application", err)
		return
	}

	h.notify.ApplicationReceived(app)

	utils.SendSuccess(w, http.StatusOK, "Application received", map[string]any{
		"applicationId": id,
	})
}
