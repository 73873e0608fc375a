package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

type SocialHandler struct {
	svc *services.SocialService
}

func NewSocialHandler(svc *services.SocialService) *SocialHandler {
	return &SocialHandler{svc: svc}
}

type friendRequest struct {
	Email string `json:"email"`
}

func (h *SocialHandler) RegisterRoutes(r *gin.RouterGroup) {
	social := r.Group("/social")
	{
		social.GET("/me", h.Me)
		social.GET("/friends", h.Friends)
		social.GET("/leaderboard", h.Leaderboard)
		social.POST("/friends/requests", h.SendRequest)
		social.POST("/friends/requests/:id/accept", h.AcceptRequest)
		social.POST("/friends/:id/message", h.Message)
	}
}

// Me godoc
// @Summary Current user profile
// @Tags social
// @Produce json
// @Success 200 {object} domain.User
// @Router /social/me [get]
func (h *SocialHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.CurrentUser())
}

// Friends godoc
// @Summary List friends
// @Tags social
// @Produce json
// @Success 200 {array} domain.User
// @Router /social/friends [get]
func (h *SocialHandler) Friends(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Friends())
}

// Leaderboard godoc
// @Summary Friends ranked by streak score
// @Tags social
// @Produce json
// @Success 200 {array} domain.LeaderboardRow
// @Router /social/leaderboard [get]
func (h *SocialHandler) Leaderboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Leaderboard())
}

// SendRequest godoc
// @Summary Send a friend request
// @Tags social
// @Accept json
// @Param body body friendRequest true "Friend email"
// @Success 202
// @Failure 400 {object} errorResponse
// @Router /social/friends/requests [post]
func (h *SocialHandler) SendRequest(c *gin.Context) {
	var req friendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := h.svc.SendFriendRequest(c.Request.Context(), req.Email); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// AcceptRequest godoc
// @Summary Accept a pending friend request
// @Tags social
// @Param id path string true "Requesting user ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /social/friends/requests/{id}/accept [post]
func (h *SocialHandler) AcceptRequest(c *gin.Context) {
	if err := h.svc.AcceptRequest(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Message godoc
// @Summary Message a friend
// @Tags social
// @Param id path string true "Friend ID"
// @Success 202
// @Failure 404 {object} errorResponse
// @Router /social/friends/{id}/message [post]
func (h *SocialHandler) Message(c *gin.Context) {
	if err := h.svc.Message(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}
