package api

import (
	"context"
	"net/http"

	"github.com/Ajaykumar12345677/lexilawbackend/core"
	"github.com/gin-gonic/gin"
)

// Analyzer answers a problem description with ranked section reports.
// *lexilaw.Engine satisfies this; tests substitute a stub.
type Analyzer interface {
	Analyze(ctx context.Context, problem string) ([]core.SectionReport, error)
}

// AnalyzeRequest is the request body for POST /analyze.
type AnalyzeRequest struct {
	Problem string `json:"problem"`
}

// MatchResponse is one matched section in the analyze response.
type MatchResponse struct {
	Code                  string   `json:"code"`
	Title                 string   `json:"title"`
	Description           string   `json:"description"`
	SimplifiedExplanation string   `json:"simplified_explanation"`
	Punishment            string   `json:"punishment"`
	Bailable              string   `json:"bailable"`
	Cognizable            string   `json:"cognizable"`
	Court                 string   `json:"court"`
	Guidance              []string `json:"guidance"`
	Score                 float32  `json:"score"`
}

// AnalyzeResponse is the response body for POST /analyze.
type AnalyzeResponse struct {
	MatchedSections []MatchResponse `json:"matched_sections"`
}

// Handler handles HTTP requests for legal problem analysis.
type Handler struct {
	analyzer Analyzer
}

// NewHandler creates a new analysis handler.
func NewHandler(analyzer Analyzer) *Handler {
	return &Handler{analyzer: analyzer}
}

// Health handles GET /.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "LexiLaw Backend is Running"})
}

// Analyze handles POST /analyze.
func (h *Handler) Analyze(c *gin.Context) {
	var req AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid request body"})
		return
	}

	if req.Problem == "" {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Problem description cannot be empty"})
		return
	}

	reports, err := h.analyzer.Analyze(c.Request.Context(), req.Problem)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Analysis failed"})
		return
	}

	matched := make([]MatchResponse, 0, len(reports))
	for _, report := range reports {
		matched = append(matched, MatchResponse{
			Code:                  report.Code,
			Title:                 report.Title,
			Description:           report.Description,
			SimplifiedExplanation: report.SimplifiedExplanation,
			Punishment:            report.Punishment,
			Bailable:              report.Bailability,
			Cognizable:            report.Cognizability,
			Court:                 report.Court,
			Guidance:              report.Guidance,
			Score:                 report.Score,
		})
	}

	c.JSON(http.StatusOK, AnalyzeResponse{MatchedSections: matched})
}

// corsMiddleware allows cross-origin requests from the browser frontend.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// NewRouter builds the Gin router with all routes registered.
func NewRouter(analyzer Analyzer) *gin.Engine {
	r := gin.Default()
	r.Use(corsMiddleware())

	handler := NewHandler(analyzer)
	r.GET("/", handler.Health)
	r.POST("/analyze", handler.Analyze)

	return r
}
