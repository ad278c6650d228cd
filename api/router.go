package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())
	router.Use(loggerMiddleware())
	router.Use(service.corsMiddleware())

	router.GET(PingURL, func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "pong")
	})

	router.GET(HealthURL, service.health)

	router.POST(MessageFormatURL, service.formatMessage)

	server.Handler = router
	service.router = router
}
