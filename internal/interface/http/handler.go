package http

import (
	"net/http"
	"strconv"
	"strings"

	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/kezhang/textsmith/internal/domain/generator"
	"github.com/kezhang/textsmith/internal/domain/history"
	"github.com/kezhang/textsmith/internal/domain/summarizer"
	"github.com/kezhang/textsmith/internal/infra/config"
	apperrors "github.com/kezhang/textsmith/pkg/errors"
)

// Handler wires the HTTP transport to domain services.
type Handler struct {
	generatorSvc  generator.Service
	summarizerSvc summarizer.Service
	recorder      *history.Recorder
	chain         *generator.Chain
	cfg           *config.Config
	logger        *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(generatorSvc generator.Service, summarizerSvc summarizer.Service, recorder *history.Recorder, chain *generator.Chain, cfg *config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		generatorSvc:  generatorSvc,
		summarizerSvc: summarizerSvc,
		recorder:      recorder,
		chain:         chain,
		cfg:           cfg,
		logger:        logger.With("component", "http.handler"),
	}
}

// Generate handles the text continuation endpoint.
func (h *Handler) Generate(c *gin.Context) {
	var req generator.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "prompt must not be empty", nil))
		return
	}
	if req.MaxLength < 0 || req.MaxLength > h.cfg.Generator.MaxWords {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "max_length must be between 1 and "+strconv.Itoa(h.cfg.Generator.MaxWords), nil))
		return
	}

	resp, err := h.generatorSvc.Generate(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "generate_failed"
		switch {
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		case apperrors.IsCode(err, "model_not_trained"):
			code = "model_not_trained"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	h.recorder.Record(c.Request.Context(), history.KindGenerate, req.Prompt, resp.GeneratedText, resp.Stats.WordCount)
	c.JSON(http.StatusOK, resp)
}

// Summarize handles the extractive summarization endpoint.
func (h *Handler) Summarize(c *gin.Context) {
	var req summarizer.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", errMessage(err), err))
		return
	}
	if strings.TrimSpace(req.Text) == "" {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "text must not be empty", nil))
		return
	}
	if req.MaxSentences < 0 || req.MaxSentences > h.cfg.Summary.MaxSentences {
		abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "max_sentences must be between 1 and "+strconv.Itoa(h.cfg.Summary.MaxSentences), nil))
		return
	}

	resp, err := h.summarizerSvc.Summarize(c.Request.Context(), req)
	if err != nil {
		status := http.StatusInternalServerError
		code := "summarize_failed"
		if apperrors.IsCode(err, "invalid_input") {
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	h.recorder.Record(c.Request.Context(), history.KindSummarize, req.Text, resp.Summary, resp.Stats.WordCount)
	c.JSON(http.StatusOK, resp)
}

// History returns the most recent processed requests, newest first.
func (h *Handler) History(c *gin.Context) {
	limit := h.cfg.History.Limit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			abortWithError(c, NewHTTPError(http.StatusBadRequest, "invalid_request", "limit must be a positive integer", err))
			return
		}
		limit = parsed
	}

	records, err := h.recorder.Recent(c.Request.Context(), limit)
	if err != nil {
		abortWithError(c, NewHTTPError(http.StatusInternalServerError, "history_failed", errMessage(err), err))
		return
	}
	if records == nil {
		records = []history.Record{}
	}
	c.JSON(http.StatusOK, gin.H{"records": records})
}

// Healthz reports liveness and the size of the trained model.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "chainKeys": h.chain.Len()})
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
