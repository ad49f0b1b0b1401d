package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"hydromon/internal/model"
)

// User create/update/delete are two dependent writes: the identity record
// first, then the profile row. A failure of the second write is surfaced
// and logged but not rolled back, leaving the two stores inconsistent.
func (s *Server) createUser(c *gin.Context) {
	var in model.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if in.Email == "" || in.Password == "" {
		fail(c, http.StatusBadRequest, "email and password are required", nil)
		return
	}

	identityUser, err := s.identity.CreateUser(c.Request.Context(), in.Email, in.Password)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to create user", err)
		return
	}

	user := model.UserProfile{
		ID:       identityUser.ID,
		Email:    in.Email,
		FullName: in.FullName,
		Role:     in.Role,
	}
	if err := s.store.CreateUserProfile(c.Request.Context(), &user); err != nil {
		s.log.Error("identity record created but profile write failed",
			zap.String("user_id", identityUser.ID),
			zap.Error(err),
		)
		fail(c, http.StatusInternalServerError, "failed to create user profile", err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (s *Server) listUsers(c *gin.Context) {
	users, err := s.store.ListUserProfiles(c.Request.Context())
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to list users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (s *Server) getUser(c *gin.Context) {
	user, err := s.store.GetUserProfile(c.Request.Context(), c.Param("id"))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "user not found", nil)
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load user", err)
		return
	}
	c.JSON(http.StatusOK, user)
}

func (s *Server) updateUser(c *gin.Context) {
	id := c.Param("id")

	var in model.UserInput
	if err := c.ShouldBindJSON(&in); err != nil {
		fail(c, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if in.Email == "" {
		fail(c, http.StatusBadRequest, "email is required", nil)
		return
	}

	user, err := s.store.GetUserProfile(c.Request.Context(), id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		fail(c, http.StatusNotFound, "user not found", nil)
		return
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to load user", err)
		return
	}

	if err := s.identity.UpdateUser(c.Request.Context(), id, in.Email, in.Password); err != nil {
		fail(c, http.StatusInternalServerError, "failed to update user", err)
		return
	}

	user.Email = in.Email
	user.FullName = in.FullName
	user.Role = in.Role
	if err := s.store.UpdateUserProfile(c.Request.Context(), user); err != nil {
		s.log.Error("identity record updated but profile write failed",
			zap.String("user_id", id),
			zap.Error(err),
		)
		fail(c, http.StatusInternalServerError, "failed to update user profile", err)
		return
	}

	c.JSON(http.StatusOK, user)
}

func (s *Server) deleteUser(c *gin.Context) {
	id := c.Param("id")

	if err := s.identity.DeleteUser(c.Request.Context(), id); err != nil {
		fail(c, http.StatusInternalServerError, "failed to delete user", err)
		return
	}
	if err := s.store.DeleteUserProfile(c.Request.Context(), id); err != nil {
		s.log.Error("identity record deleted but profile delete failed",
			zap.String("user_id", id),
			zap.Error(err),
		)
		fail(c, http.StatusInternalServerError, "failed to delete user profile", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": id})
}
