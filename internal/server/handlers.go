package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/danielxmed/nobra-calculator-sub006/internal/score"
)

// errorEnvelope is the uniform error response shape: an error-kind tag, a
// human-readable message, and optional structured detail.
type errorEnvelope struct {
	Error   string         `json:"error"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
}

type scoreListResponse struct {
	Scores []score.Metadata `json:"scores"`
	Total  int              `json:"total"`
}

func (s *Server) listScores(c *gin.Context) {
	category := c.Query("category")
	search := strings.ToLower(c.Query("search"))

	all := s.reg.List()
	out := make([]score.Metadata, 0, len(all))
	for _, m := range all {
		if category != "" && m.Category != category {
			continue
		}
		if search != "" && !matchesSearch(m, search) {
			continue
		}
		out = append(out, m)
	}

	c.JSON(http.StatusOK, scoreListResponse{Scores: out, Total: len(out)})
}

func matchesSearch(m score.Metadata, term string) bool {
	return strings.Contains(strings.ToLower(m.ID), term) ||
		strings.Contains(strings.ToLower(m.Title), term) ||
		strings.Contains(strings.ToLower(m.Description), term)
}

func (s *Server) getScore(c *gin.Context) {
	id := c.Param("id")
	entry, ok := s.reg.Lookup(id)
	if !ok {
		c.JSON(http.StatusNotFound, scoreNotFound(id))
		return
	}
	c.JSON(http.StatusOK, entry.Metadata)
}

func (s *Server) listCategories(c *gin.Context) {
	categories := s.reg.Categories()
	c.JSON(http.StatusOK, gin.H{"categories": categories, "total": len(categories)})
}

func (s *Server) calculate(c *gin.Context) {
	id := c.Param("id")

	entry, ok := s.reg.Lookup(id)
	if !ok {
		c.JSON(http.StatusNotFound, scoreNotFound(id))
		return
	}

	var params score.Params
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusUnprocessableEntity, errorEnvelope{
			Error:   "ValidationError",
			Message: "request body must be a JSON object of parameters",
			Details: map[string]any{"error": err.Error()},
		})
		return
	}

	if err := score.Validate(entry.Metadata, params); err != nil {
		s.recordAudit(id, params, "validation_error", 0)
		details := map[string]any{"error": err.Error()}
		var fe *score.FieldError
		if errors.As(err, &fe) {
			details = map[string]any{
				"field":      fe.Field,
				"value":      fe.Value,
				"constraint": fe.Constraint,
			}
		}
		c.JSON(http.StatusUnprocessableEntity, errorEnvelope{
			Error:   "ValidationError",
			Message: "invalid parameters for " + id,
			Details: details,
		})
		return
	}

	start := time.Now()
	result, err := s.reg.Calculate(id, params)
	took := time.Since(start)

	if err != nil {
		// Input already passed schema validation, so this is a defect in
		// the calculator or an uncovered input combination. Echo the
		// identifier and raw parameters back for debugging.
		s.recordAudit(id, params, "calculation_error", took)
		c.JSON(http.StatusInternalServerError, errorEnvelope{
			Error:   "CalculationError",
			Message: "error calculating " + id,
			Details: map[string]any{
				"score_id":   id,
				"parameters": params,
				"error":      err.Error(),
			},
		})
		return
	}

	s.recordAudit(id, params, "ok", took)
	c.JSON(http.StatusOK, result)
}

func scoreNotFound(id string) errorEnvelope {
	return errorEnvelope{
		Error:   "ScoreNotFound",
		Message: "score '" + id + "' not found",
		Details: map[string]any{"score_id": id},
	}
}
