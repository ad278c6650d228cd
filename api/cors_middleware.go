package api

import (
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"
)

// handling CORS
//
// "*" in the allowed origins opens the API to every origin, otherwise the
// request origin is echoed back only if it is listed.
func (service *Service) corsMiddleware() gin.HandlerFunc {
	allowAll := slices.Contains(service.config.AllowedOrigins, "*")

	return func(ctx *gin.Context) {
		origin := ctx.Request.Header.Get("Origin")

		switch {
		case allowAll:
			ctx.Header("Access-Control-Allow-Origin", "*")
		case origin != "" && slices.Contains(service.config.AllowedOrigins, origin):
			ctx.Header("Access-Control-Allow-Origin", origin)
			ctx.Header("Vary", "Origin")
		}

		ctx.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")

		allowedHeaders := []string{
			"Content-Type",
			RequestIDHeader,
		}

		ctx.Header("Access-Control-Allow-Headers", strings.Join(allowedHeaders, ","))
		ctx.Header("Access-Control-Expose-Headers", RequestIDHeader)

		// If someone sends preflight (OPTIONS), respond 204 and return
		if ctx.Request.Method == http.MethodOptions {
			ctx.AbortWithStatus(http.StatusNoContent)
			return
		}

		ctx.Next()
	}
}
