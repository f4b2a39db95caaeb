package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"

	"entrycheck/internal/entries/service"
	httputil "entrycheck/pkg/http"
	"entrycheck/pkg/logger"
	"entrycheck/pkg/model"
)

type EntryHandler struct {
	service service.EntryService
	log     *logger.Logger
}

func NewEntryHandler(service service.EntryService, log *logger.Logger) *EntryHandler {
	return &EntryHandler{
		service: service,
		log:     log,
	}
}

func (h *EntryHandler) ParseCode(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.parseKind(w, r, model.KindCode, "ParseCode")
}

func (h *EntryHandler) ParsePhone(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	h.parseKind(w, r, model.KindPhone, "ParsePhone")
}

func (h *EntryHandler) parseKind(w http.ResponseWriter, r *http.Request, kind model.EntryKind, name string) {
	var body model.ValueRequest
	if err := httputil.DecodeJSON(r, &body); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", name, "operation", "WriteError", "error", writeErr)
		}
		return
	}

	req := body.WithKind(kind)
	resp, err := h.service.Parse(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", name, "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", name, "operation", "WriteSuccess", "error", err)
	}
}

func (h *EntryHandler) ParseEntries(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var req model.BatchRequest
	if err := httputil.DecodeJSON(r, &req); err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ParseEntries", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	resp, err := h.service.ParseBatch(r.Context(), &req)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "ParseEntries", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, resp); err != nil {
		h.log.Error("failed to write success response", "handler", "ParseEntries", "operation", "WriteSuccess", "error", err)
	}
}
