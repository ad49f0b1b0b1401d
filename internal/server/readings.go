package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"hydromon/internal/model"
)

func (s *Server) deleteReadings(c *gin.Context) {
	var in model.DeleteReadingsInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if len(in.IDs) == 0 {
		fail(c, http.StatusBadRequest, "ids are required", nil)
		return
	}

	deleted, err := s.store.DeleteReadings(c.Request.Context(), in.IDs)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to delete sensor data", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}

func (s *Server) latestReading(c *gin.Context) {
	reading, err := s.store.LatestReading(c.Request.Context())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "no sensor data", nil)
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load sensor data", err)
		return
	}
	c.JSON(http.StatusOK, reading)
}
