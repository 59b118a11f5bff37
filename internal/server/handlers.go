package server

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"aiscore/internal/aidetect"
	"aiscore/internal/db"
	"aiscore/internal/perplexity"
)

const (
	defaultListLimit = 20
	maxListLimit     = 500
)

type analyzeRequest struct {
	Text     string `json:"text"`
	Source   string `json:"source"`
	Windowed bool   `json:"windowed"`
	Store    bool   `json:"store"`
}

// analyzeResponse is the document result, flattened, plus the optional
// history id and window breakdown.
type analyzeResponse struct {
	ID string `json:"id,omitempty"`
	aidetect.Result
	Windows *aidetect.WindowReport `json:"windows,omitempty"`
}

func errorJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"corpusVersion": perplexity.CorpusVersion,
	})
}

func (s *Server) analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			errorJSON(c, http.StatusRequestEntityTooLarge, "request body exceeds 5 MiB")
			return
		}
		errorJSON(c, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Store && s.store == nil {
		errorJSON(c, http.StatusServiceUnavailable, "history storage is not configured")
		return
	}

	start := time.Now()
	resp := analyzeResponse{Result: s.engine.Analyze(req.Text)}
	s.metrics.Observe(resp.Result, time.Since(start))
	if req.Windowed {
		report := s.engine.AnalyzeWindows(req.Text, s.windows)
		resp.Windows = &report
	}

	if req.Store {
		source := strings.TrimSpace(req.Source)
		if source == "" {
			source = "api"
		}
		rec, err := s.store.Save(c.Request.Context(), source, resp.Result)
		if err != nil {
			s.log.Error("save analysis", zap.Error(err))
			_ = c.Error(err)
			errorJSON(c, http.StatusInternalServerError, "could not store analysis")
			return
		}
		resp.ID = rec.ID
	}

	c.JSON(http.StatusOK, resp)
}

func (s *Server) listAnalyses(c *gin.Context) {
	if s.store == nil {
		errorJSON(c, http.StatusServiceUnavailable, "history storage is not configured")
		return
	}
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			errorJSON(c, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(n, maxListLimit)
	}

	records, err := s.store.List(c.Request.Context(), limit)
	if err != nil {
		_ = c.Error(err)
		errorJSON(c, http.StatusInternalServerError, "could not list analyses")
		return
	}
	c.JSON(http.StatusOK, gin.H{"analyses": records})
}

func (s *Server) getAnalysis(c *gin.Context) {
	if s.store == nil {
		errorJSON(c, http.StatusServiceUnavailable, "history storage is not configured")
		return
	}
	rec, err := s.store.Get(c.Request.Context(), c.Param("id"))
	if errors.Is(err, db.ErrNotFound) {
		errorJSON(c, http.StatusNotFound, "analysis not found")
		return
	}
	if err != nil {
		_ = c.Error(err)
		errorJSON(c, http.StatusInternalServerError, "could not load analysis")
		return
	}
	c.JSON(http.StatusOK, rec)
}
