package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/EYOB-A19/Astu-compliant-system/internal/service"
	"github.com/EYOB-A19/Astu-compliant-system/internal/utils"
)

// POST /api/assist
// Keyword-matched canned guidance for students.
func Assist() http.HandlerFunc {
	type inDTO struct {
		Message string `json:"message"`
	}
	return func(w http.ResponseWriter, r *http.Request) {
		var in inDTO
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			utils.Error(w, http.StatusBadRequest, "invalid json")
			return
		}
		in.Message = strings.TrimSpace(in.Message)
		if in.Message == "" {
			utils.Error(w, http.StatusBadRequest, "message is required")
			return
		}
		utils.JSON(w, http.StatusOK, map[string]string{"reply": service.AssistantReply(in.Message)})
	}
}
