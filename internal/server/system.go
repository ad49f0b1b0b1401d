package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hydromon/internal/model"
	"hydromon/internal/ranges"
)

// dedupeIDs drops repeated ids, keeping first-seen order.
func dedupeIDs(ids []uint64) []uint64 {
	seen := make(map[uint64]struct{}, len(ids))
	unique := make([]uint64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	return unique
}

// resolveMultiplant recomputes the overlap of the selected profiles. On a
// feasible selection the multiplant profile is upserted; on an infeasible
// one nothing is persisted, so a previously stored multiplant profile stays
// as it was.
func (s *Server) resolveMultiplant(c *gin.Context) {
	var in model.MultiplantInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	ids := dedupeIDs(in.PlantIDs)
	if len(ids) < 2 {
		fail(c, http.StatusBadRequest, "at least two plant ids are required", nil)
		return
	}

	plants, err := s.store.PlantsByIDs(c.Request.Context(), ids)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load plant profiles", err)
		return
	}
	if len(plants) != len(ids) {
		fail(c, http.StatusBadRequest, "unknown plant id in selection", nil)
		return
	}

	result, err := ranges.Resolve(plants)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error(), nil)
		return
	}
	if !result.Compatible {
		fail(c, http.StatusConflict, "selected plants have no compatible range", nil)
		return
	}

	multi := model.MultiplantProfile{
		Name:  model.MultiplantName,
		PHMin: result.PHMin,
		PHMax: result.PHMax,
		ECMin: result.ECMin,
		ECMax: result.ECMax,
	}
	if err := s.store.UpsertMultiplant(c.Request.Context(), &multi); err != nil {
		fail(c, http.StatusInternalServerError, "failed to save multiplant profile", err)
		return
	}

	stored, err := s.store.GetMultiplant(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load multiplant profile", err)
		return
	}
	c.JSON(http.StatusOK, stored)
}

func (s *Server) getSystemConfig(c *gin.Context) {
	cfg, err := s.store.GetSystemConfig(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load system config", err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

func (s *Server) setSystemConfig(c *gin.Context) {
	var in model.SystemConfigInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if in.SelectedPlantID == nil {
		fail(c, http.StatusBadRequest, "selected_plant_id is required", nil)
		return
	}

	if err := s.store.SetSelectedPlant(c.Request.Context(), *in.SelectedPlantID); err != nil {
		fail(c, http.StatusInternalServerError, "failed to update system config", err)
		return
	}

	cfg, err := s.store.GetSystemConfig(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load system config", err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}
