package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/DiegoAltamirano13/IA-MARKETING/internal/bot"
	"github.com/DiegoAltamirano13/IA-MARKETING/pkg/logging"
)

// ChatRequest is the inbound message payload.
type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// ChatResponse carries the assistant's reply.
type ChatResponse struct {
	Response string `json:"response"`
}

// ChatHandler handles HTTP requests for the conversational assistant.
type ChatHandler struct {
	router *bot.Router
	logger *logging.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(router *bot.Router, logger *logging.Logger) *ChatHandler {
	if logger == nil {
		logger = logging.Default()
	}
	return &ChatHandler{router: router, logger: logger}
}

// Chat handles POST /chat requests. Turn processing itself never fails, so a
// well-formed request always gets a 200 with a reply.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Error("failed to decode chat request", "error", err)
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.UserID == "" {
		req.UserID = "default"
	}

	reply := h.router.ProcessMessage(r.Context(), req.UserID, req.Message)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ChatResponse{Response: reply})
}

// HealthCheck handles GET /health requests.
func (h *ChatHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
