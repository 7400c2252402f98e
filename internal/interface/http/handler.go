package http

import (
	"encoding/json"
	"html"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/quickshop/assistant/internal/domain/faq"
	apperrors "github.com/quickshop/assistant/pkg/errors"
)

const (
	eventContent     = "content"
	eventSuggestions = "suggestions"

	msgEmptyInput = "I didn't understand that. Can you rephrase?"
	msgNoMatch    = "I'm not sure about that. Please refer to our FAQ or contact support."
	msgError      = "An error occurred. Please try again."
)

// ChatRequest is the payload accepted by the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// ChatEvent is one SSE frame of the chat stream.
type ChatEvent struct {
	Type    string `json:"type"`
	Content any    `json:"content"`
}

// Handler wires the HTTP transport to the FAQ domain.
type Handler struct {
	faqSvc faq.Service
	logger *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(faqSvc faq.Service, logger *slog.Logger) *Handler {
	return &Handler{
		faqSvc: faqSvc,
		logger: logger.With("component", "http.handler"),
	}
}

// Chat resolves the user message and streams the answer plus follow-up
// suggestions as Server-Sent Events.
func (h *Handler) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "stream_unsupported", "streaming not supported", nil))
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("chat stream failed", "panic", r)
			h.writeEvent(c, flusher, ChatEvent{Type: eventContent, Content: msgError})
			h.writeEvent(c, flusher, ChatEvent{Type: eventSuggestions, Content: faq.DefaultBaseSuggestions[:2]})
		}
	}()

	ctx := c.Request.Context()
	message := strings.TrimSpace(req.Message)

	if message == "" {
		h.writeEvent(c, flusher, ChatEvent{Type: eventContent, Content: msgEmptyInput})
		h.writeEvent(c, flusher, ChatEvent{Type: eventSuggestions, Content: h.faqSvc.Suggest(ctx, "")})
		return
	}

	content := msgNoMatch
	if match, found := h.faqSvc.Resolve(ctx, message); found {
		content = match.Answer
	}

	h.writeEvent(c, flusher, ChatEvent{Type: eventContent, Content: content})
	h.writeEvent(c, flusher, ChatEvent{Type: eventSuggestions, Content: h.faqSvc.Suggest(ctx, message)})
}

// writeEvent emits one SSE frame. Content events are HTML-escaped so
// echoed text can never be interpreted as markup by the widget.
func (h *Handler) writeEvent(c *gin.Context, flusher http.Flusher, event ChatEvent) {
	if event.Type == eventContent {
		if text, ok := event.Content.(string); ok {
			event.Content = html.EscapeString(text)
		}
	}
	payload, err := json.Marshal(event)
	if err != nil {
		h.logger.Error("marshal chat event failed", "error", err)
		return
	}
	c.Writer.Write([]byte("data: "))
	c.Writer.Write(payload)
	c.Writer.Write([]byte("\n\n"))
	flusher.Flush()
}

// Trending returns the most frequently resolved queries.
func (h *Handler) Trending(c *gin.Context) {
	items, err := h.faqSvc.Trending(c.Request.Context())
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "faq_failed", errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, gin.H{"recommendations": items})
}

// ReloadCatalog rebuilds the catalog snapshot from the dataset source.
func (h *Handler) ReloadCatalog(c *gin.Context) {
	stats, err := h.faqSvc.Reload(c.Request.Context())
	if err != nil {
		status := http.StatusInternalServerError
		code := "reload_failed"
		if apperrors.IsCode(err, "dataset_error") {
			status = http.StatusBadGateway
			code = "dataset_error"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}
	c.JSON(http.StatusOK, stats)
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
