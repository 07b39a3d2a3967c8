package handler

import "github.com/julienschmidt/httprouter"

func (h *CleanerHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/v1/patients/clean", h.CleanBody)
	router.GET("/v1/patients/clean", h.CleanSource)
}

func (h *HealthHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/health", h.Health)
	router.GET("/ready", h.Ready)
}
