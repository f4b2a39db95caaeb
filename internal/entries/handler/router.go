package handler

import "github.com/julienschmidt/httprouter"

func (h *EntryHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/codes/parse", h.ParseCode)
	router.POST("/api/v1/phones/parse", h.ParsePhone)
	router.POST("/api/v1/entries/parse", h.ParseEntries)
}
