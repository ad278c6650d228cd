package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const requestIDKey = "request_id"

// requestIDMiddleware keeps a valid client supplied X-Request-ID or issues a new one,
// and echoes it in the response.
func requestIDMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		id := ctx.GetHeader(RequestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}

		ctx.Set(requestIDKey, id)
		ctx.Header(RequestIDHeader, id)

		ctx.Next()
	}
}

// loggerMiddleware writes one zerolog event per request.
func loggerMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		status := ctx.Writer.Status()

		var event *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			event = log.Error()
		case status >= http.StatusBadRequest:
			event = log.Warn()
		default:
			event = log.Info()
		}

		if len(ctx.Errors) > 0 {
			event = event.Str("errors", ctx.Errors.String())
		}

		event.
			Str("protocol", "http").
			Str("request_id", requestID(ctx)).
			Str("method", ctx.Request.Method).
			Str("path", ctx.Request.URL.Path).
			Int("status_code", status).
			Str("status_text", http.StatusText(status)).
			Dur("duration", time.Since(start)).
			Msg("received an HTTP request")
	}
}

func requestID(ctx *gin.Context) string {
	return ctx.GetString(requestIDKey)
}
