package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	httputil "entrycheck/pkg/http"
	"entrycheck/pkg/logger"
	"entrycheck/pkg/sanitizer"
)

// Known-good inputs the readiness probe runs through the configured parser.
const (
	probeCode  = "1234-5678"
	probePhone = "(212) 555-0199"
)

type HealthResponse struct {
	Status  string `json:"status"`
	Variant string `json:"variant,omitempty"`
	Parser  string `json:"parser,omitempty"`
}

type HealthHandler struct {
	parser *sanitizer.Parser
	log    *logger.Logger
}

func NewHealthHandler(parser *sanitizer.Parser, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		parser: parser,
		log:    log,
	}
}

func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status: "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Health", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	variant := string(h.parser.Rules().Variant)

	if !h.parser.ParseCode(probeCode).IsValid || !h.parser.ParsePhone(probePhone).IsValid {
		h.log.Error("Parser self-check failed",
			"variant", variant,
			"path", r.URL.Path,
		)
		if writeErr := httputil.WriteJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:  "unavailable",
			Variant: variant,
			Parser:  "error",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteJSON(w, http.StatusOK, HealthResponse{
		Status:  "ready",
		Variant: variant,
		Parser:  "ok",
	}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Ready", "operation", "WriteJSON", "error", err)
	}
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
