package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/piwi3910/TrimCut/internal/engine"
	"github.com/piwi3910/TrimCut/internal/importer"
	"github.com/piwi3910/TrimCut/internal/model"
	"github.com/piwi3910/TrimCut/internal/store"
)

// PlanResponse is the body returned by the planning routes. Warnings holds
// recoverable problems such as missing stock or unplaceable pieces.
type PlanResponse struct {
	Result   model.PlanResult `json:"result"`
	Warnings []string         `json:"warnings"`
}

// ScenarioResponse summarises one what-if scenario.
type ScenarioResponse struct {
	Name         string           `json:"name"`
	BoardsUsed   int              `json:"boards_used"`
	TotalCuts    int              `json:"total_cuts"`
	TotalWaste   float64          `json:"total_waste"`
	WastePercent float64          `json:"waste_percent"`
	Unplaced     int              `json:"unplaced"`
	Warning      string           `json:"warning,omitempty"`
	Result       model.PlanResult `json:"result"`
}

// SaveConfigRequest is the body accepted by POST /api/v1/configs.
type SaveConfigRequest struct {
	Name        string           `json:"name" binding:"required"`
	Description string           `json:"description"`
	Config      model.PlanConfig `json:"config"`
}

// ImportResponse is the body returned by the CSV import route.
type ImportResponse struct {
	Measurements []model.Measurement `json:"measurements"`
	Errors       []string            `json:"errors"`
	Warnings     []string            `json:"warnings"`
}

// maxImportSize caps the CSV body accepted by the import route.
const maxImportSize = 1 << 20

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (s *Server) plan(c *gin.Context) {
	var cfg model.PlanConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		s.badRequest(c, fmt.Errorf("decode plan config: %w", err))
		return
	}
	s.respondPlan(c, cfg)
}

func (s *Server) planSaved(c *gin.Context) {
	if !s.requireStore(c) {
		return
	}
	sc, err := s.store.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.storeError(c, err)
		return
	}
	s.respondPlan(c, sc.Config)
}

func (s *Server) respondPlan(c *gin.Context, cfg model.PlanConfig) {
	key, keyErr := planKey(cfg)
	useCache := s.cache != nil && keyErr == nil

	fillMissingIDs(&cfg)
	if err := cfg.Validate(); err != nil {
		s.metrics.PlansTotal.WithLabelValues("invalid").Inc()
		s.badRequest(c, err)
		return
	}

	if useCache {
		if resp, ok := s.cache.Get(key); ok {
			s.metrics.PlanCacheRequests.WithLabelValues("hit").Inc()
			c.Header("X-Plan-Cache", "hit")
			c.JSON(http.StatusOK, resp)
			return
		}
		s.metrics.PlanCacheRequests.WithLabelValues("miss").Inc()
		c.Header("X-Plan-Cache", "miss")
	}

	start := time.Now()
	result, err := s.optimizer.Optimize(cfg)
	s.metrics.PlanDuration.Observe(time.Since(start).Seconds())

	warnings, err := engine.Warnings(result, err)
	if errors.Is(err, engine.ErrTooManyBoards) {
		s.metrics.PlansTotal.WithLabelValues("invalid").Inc()
		s.badRequest(c, err)
		return
	}
	if err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
		return
	}

	s.metrics.PlansTotal.WithLabelValues(planOutcome(result, warnings)).Inc()
	if len(result.Boards) > 0 {
		s.metrics.PlanBoards.Observe(float64(result.Summary.TotalBoards))
		s.metrics.PlanWaste.Observe(result.Summary.TotalWaste)
	}

	resp := PlanResponse{Result: result, Warnings: warnings}
	if useCache {
		if err := s.cache.Set(key, resp); err != nil {
			s.logger.Warn("plan not cached", "error", err)
		}
	}
	c.JSON(http.StatusOK, resp)
}

func (s *Server) compare(c *gin.Context) {
	var cfg model.PlanConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		s.badRequest(c, fmt.Errorf("decode plan config: %w", err))
		return
	}
	fillMissingIDs(&cfg)
	if err := cfg.Validate(); err != nil {
		s.badRequest(c, err)
		return
	}

	results := engine.CompareScenarios(s.optimizer, engine.BuildDefaultScenarios(cfg))
	out := make([]ScenarioResponse, 0, len(results))
	for _, r := range results {
		sr := ScenarioResponse{
			Name:         r.Scenario.Name,
			BoardsUsed:   r.BoardsUsed,
			TotalCuts:    r.TotalCuts,
			TotalWaste:   r.TotalWaste,
			WastePercent: r.WastePercent,
			Unplaced:     r.UnplacedCount,
			Result:       r.Result,
		}
		if r.Warning != nil {
			sr.Warning = r.Warning.Error()
		}
		out = append(out, sr)
	}
	c.JSON(http.StatusOK, gin.H{"scenarios": out})
}

func (s *Server) importCSV(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxImportSize+1))
	if err != nil {
		s.badRequest(c, fmt.Errorf("read csv: %w", err))
		return
	}
	if len(data) > maxImportSize {
		c.JSON(http.StatusRequestEntityTooLarge, errorResponse{Error: "csv body too large"})
		return
	}
	if len(bytes.TrimSpace(data)) == 0 {
		s.badRequest(c, errors.New("csv body is empty"))
		return
	}

	res := importer.ImportCSVFromReader(bytes.NewReader(data), importer.DetectCSVDelimiter(data))
	resp := ImportResponse{
		Measurements: res.Measurements,
		Errors:       res.Errors,
		Warnings:     res.Warnings,
	}
	if resp.Measurements == nil {
		resp.Measurements = []model.Measurement{}
	}
	if resp.Errors == nil {
		resp.Errors = []string{}
	}
	if resp.Warnings == nil {
		resp.Warnings = []string{}
	}

	status := http.StatusOK
	if len(res.Measurements) == 0 && len(res.Errors) > 0 {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, resp)
}

func (s *Server) listConfigs(c *gin.Context) {
	if !s.requireStore(c) {
		return
	}
	configs, err := s.store.List(c.Request.Context())
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"configs": configs})
}

func (s *Server) saveConfig(c *gin.Context) {
	if !s.requireStore(c) {
		return
	}
	var req SaveConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.badRequest(c, fmt.Errorf("decode saved config: %w", err))
		return
	}
	fillMissingIDs(&req.Config)
	if err := req.Config.Validate(); err != nil {
		s.badRequest(c, err)
		return
	}

	saved, err := s.store.Save(c.Request.Context(), model.NewSavedConfig(req.Name, req.Description, req.Config))
	if err != nil {
		s.storeError(c, err)
		return
	}
	s.logger.Info("configuration saved", "name", saved.Name, "measurements", len(saved.Config.Measurements))
	c.JSON(http.StatusCreated, saved)
}

func (s *Server) getConfig(c *gin.Context) {
	if !s.requireStore(c) {
		return
	}
	sc, err := s.store.Get(c.Request.Context(), c.Param("name"))
	if err != nil {
		s.storeError(c, err)
		return
	}
	c.JSON(http.StatusOK, sc)
}

func (s *Server) deleteConfig(c *gin.Context) {
	if !s.requireStore(c) {
		return
	}
	if err := s.store.Delete(c.Request.Context(), c.Param("name")); err != nil {
		s.storeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (s *Server) requireStore(c *gin.Context) bool {
	if s.store != nil {
		return true
	}
	c.JSON(http.StatusServiceUnavailable, errorResponse{Error: "saved configurations are not available"})
	return false
}

func (s *Server) badRequest(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
}

func (s *Server) storeError(c *gin.Context, err error) {
	_ = c.Error(err)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorResponse{Error: err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, errorResponse{Error: err.Error()})
}

func planOutcome(result model.PlanResult, warnings []string) string {
	switch {
	case len(result.Unplaced) > 0:
		return "unplaced"
	case len(warnings) > 0:
		return "no_stock"
	default:
		return "ok"
	}
}

// fillMissingIDs gives every measurement without an ID a generated one.
func fillMissingIDs(cfg *model.PlanConfig) {
	for i, m := range cfg.Measurements {
		if m.ID == "" {
			cfg.Measurements[i].ID = model.NewMeasurement(m.Length, m.Room, m.Wall).ID
		}
	}
}
