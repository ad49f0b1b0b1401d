package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hydromon/internal/model"
)

func validatePlantInput(in *model.PlantProfileInput) string {
	if in.Name == "" {
		return "name is required"
	}
	if in.PHMin == nil || in.PHMax == nil || in.ECMin == nil || in.ECMax == nil {
		return "ph_min, ph_max, ec_min and ec_max are required"
	}
	if *in.PHMin > *in.PHMax {
		return "ph_min must not exceed ph_max"
	}
	if *in.ECMin > *in.ECMax {
		return "ec_min must not exceed ec_max"
	}
	return ""
}

func plantID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		fail(c, http.StatusBadRequest, "invalid plant id", err)
		return 0, false
	}
	return id, true
}

func (s *Server) createPlant(c *gin.Context) {
	var in model.PlantProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if msg := validatePlantInput(&in); msg != "" {
		fail(c, http.StatusBadRequest, msg, nil)
		return
	}

	plant := model.PlantProfile{
		Name:     in.Name,
		PHMin:    *in.PHMin,
		PHMax:    *in.PHMax,
		ECMin:    *in.ECMin,
		ECMax:    *in.ECMax,
		ImageURL: in.ImageURL,
	}
	if err := s.store.CreatePlant(c.Request.Context(), &plant); err != nil {
		fail(c, http.StatusInternalServerError, "failed to create plant profile", err)
		return
	}
	c.JSON(http.StatusCreated, plant)
}

func (s *Server) listPlants(c *gin.Context) {
	plants, err := s.store.ListPlants(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to list plant profiles", err)
		return
	}
	c.JSON(http.StatusOK, plants)
}

func (s *Server) getPlant(c *gin.Context) {
	id, ok := plantID(c)
	if !ok {
		return
	}
	plant, err := s.store.GetPlant(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "plant profile not found", nil)
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load plant profile", err)
		return
	}
	c.JSON(http.StatusOK, plant)
}

func (s *Server) updatePlant(c *gin.Context) {
	id, ok := plantID(c)
	if !ok {
		return
	}

	var in model.PlantProfileInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if msg := validatePlantInput(&in); msg != "" {
		fail(c, http.StatusBadRequest, msg, nil)
		return
	}

	plant, err := s.store.GetPlant(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "plant profile not found", nil)
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load plant profile", err)
		return
	}

	plant.Name = in.Name
	plant.PHMin = *in.PHMin
	plant.PHMax = *in.PHMax
	plant.ECMin = *in.ECMin
	plant.ECMax = *in.ECMax
	plant.ImageURL = in.ImageURL
	if err := s.store.UpdatePlant(c.Request.Context(), plant); err != nil {
		fail(c, http.StatusInternalServerError, "failed to update plant profile", err)
		return
	}
	c.JSON(http.StatusOK, plant)
}

func (s *Server) deletePlant(c *gin.Context) {
	id, ok := plantID(c)
	if !ok {
		return
	}
	if err := s.store.DeletePlant(c.Request.Context(), id); err != nil {
		fail(c, http.StatusInternalServerError, "failed to delete plant profile", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
