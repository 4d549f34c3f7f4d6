package api

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/cadenzahq/cadenza/pkg/analysis"
	"github.com/cadenzahq/cadenza/pkg/emotion"
	"github.com/cadenzahq/cadenza/pkg/knowledge"
	"github.com/cadenzahq/cadenza/pkg/preference"
	"github.com/cadenzahq/cadenza/pkg/score"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error string `json:"error"`
}

// RecommendRequest asks for visual schemes for one structure.
type RecommendRequest struct {
	Emotion     emotion.Profile `json:"emotion"`
	Level       analysis.Level  `json:"level"`
	StructureID string          `json:"structure_id,omitempty"`
}

// handlePing returns a simple health check response.
func (s *Server) handlePing(c *fiber.Ctx) error {
	return c.JSON("pong")
}

// handleAnalyze runs the full analysis pipeline on a posted score.
func (s *Server) handleAnalyze(c *fiber.Ctx) error {
	var sc score.Score
	if err := c.BodyParser(&sc); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid score payload"})
	}

	result, err := s.engine.Analyze(c.Context(), &sc)
	if err != nil {
		s.logger.Error("analysis failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "analysis failed"})
	}

	return c.JSON(result)
}

// handleRecommend returns five ranked visual schemes.
func (s *Server) handleRecommend(c *fiber.Ctx) error {
	var req RecommendRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid recommend payload"})
	}

	if req.Level == "" {
		req.Level = analysis.LevelPhrase
	}

	schemes := s.engine.RecommendVisuals(req.Emotion, req.Level, req.StructureID)
	return c.JSON(map[string]any{
		"count":   len(schemes),
		"schemes": schemes,
	})
}

// handleRecordAction feeds a user action into the preference learner.
func (s *Server) handleRecordAction(c *fiber.Ctx) error {
	var action preference.UserAction
	if err := c.BodyParser(&action); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "invalid action payload"})
	}

	switch action.Type {
	case preference.ActionAccept, preference.ActionModify, preference.ActionReject:
	default:
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "unknown action type"})
	}

	s.engine.RecordUserAction(c.Context(), action)
	return c.SendStatus(fiber.StatusAccepted)
}

// handleSearchRules runs a semantic rule search.
func (s *Server) handleSearchRules(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "q parameter required"})
	}

	topK := c.QueryInt("k", 5)
	if topK < 1 {
		topK = 5
	}

	results, err := s.engine.Knowledge().SearchText(c.Context(), query, topK)
	if err != nil {
		s.logger.Error("rule search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: "rule search failed"})
	}

	return c.JSON(map[string]any{
		"count":   len(results),
		"results": results,
	})
}

// handleRulesByCategory lists catalog rules for one category.
func (s *Server) handleRulesByCategory(c *fiber.Ctx) error {
	category := knowledge.Category(c.Params("category"))

	rules := s.engine.Knowledge().SearchByCategory(category)
	if rules == nil {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{Error: "unknown category"})
	}

	return c.JSON(map[string]any{
		"count": len(rules),
		"rules": rules,
	})
}

// handlePreferenceStats exposes the learner's aggregate counts.
func (s *Server) handlePreferenceStats(c *fiber.Ctx) error {
	return c.JSON(s.engine.PreferenceStatistics())
}

// handleClearPreferences resets the preference session.
func (s *Server) handleClearPreferences(c *fiber.Ctx) error {
	s.engine.ClearPreferences()
	return c.SendStatus(fiber.StatusNoContent)
}
