package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/anirudh-pedro/Aniru-AI/message"
	"github.com/anirudh-pedro/Aniru-AI/render"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// Message sources reported by the chat backend. Every source is formatted the same way.
const (
	SourceAIAPI             = "ai_api"
	SourceGroqAPI           = "groq_api"
	SourceRuleBased         = "rule_based"
	SourceRuleBasedFallback = "rule_based_fallback"
	SourceEmergencyFallback = "emergency_fallback"
	SourceErrorFallback     = "error_fallback"
)

type FormatMessageRequest struct {
	// Response is the raw reply text. It must be present, but may be empty.
	Response *string `json:"response" binding:"required"`
	Source   string  `json:"source" binding:"omitempty,oneof=ai_api groq_api rule_based rule_based_fallback emergency_fallback error_fallback"`
	// Format asks for a rendered representation next to the document.
	Format string `json:"format" binding:"omitempty,oneof=json html text"`
}

type FormatMessageResponse struct {
	Source   string           `json:"source,omitempty"`
	Document message.Document `json:"document"`
	HTML     string           `json:"html,omitempty"`
	Text     string           `json:"text,omitempty"`
}

// maxBodyBytes bounds the request body for a message limit of n bytes.
// JSON escaping may take up to 6 bytes per message byte ("\u0000").
func maxBodyBytes(n int) int64 {
	return int64(n)*6 + 4096
}

func (service *Service) formatMessage(ctx *gin.Context) {
	limit := service.config.MaxMessageBytes

	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxBodyBytes(limit))

	var req FormatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrMessageTooLong))
			return
		}

		ctx.JSON(
			http.StatusBadRequest,
			NewErrorResponse(ErrInvalidParams, ExtractErrorFields(err)...),
		)
		return
	}

	text := *req.Response

	if len(text) > limit {
		errField := ErrorField{
			FieldName:    "response",
			ErrorMessage: fmt.Sprintf("message must not exceed %d bytes", limit),
		}
		ctx.JSON(http.StatusRequestEntityTooLarge, NewErrorResponse(ErrMessageTooLong, errField))
		return
	}

	doc := message.Format(text)

	resp := FormatMessageResponse{
		Source:   req.Source,
		Document: doc,
	}

	switch render.Format(req.Format) {
	case render.FormatHTML:
		resp.HTML = service.engine.HTML(doc)
	case render.FormatText:
		resp.Text = render.Text(doc)
	}

	log.Debug().
		Str("request_id", requestID(ctx)).
		Str("source", req.Source).
		Int("bytes", len(text)).
		Int("blocks", len(doc)).
		Msg("message formatted")

	ctx.JSON(http.StatusOK, resp)
}
