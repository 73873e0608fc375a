package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/comitanigiacomo/kanso-habits/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habits/internal/core/services"
)

type HabitHandler struct {
	tracker   *services.TrackerService
	templates *services.TemplateService
}

func NewHabitHandler(tracker *services.TrackerService, templates *services.TemplateService) *HabitHandler {
	return &HabitHandler{
		tracker:   tracker,
		templates: templates,
	}
}

type createHabitRequest struct {
	Label string `json:"label" binding:"required"`
}

type templateHabitRequest struct {
	Category string `json:"category" binding:"required"`
	Label    string `json:"label" binding:"required"`
}

type editBufferRequest struct {
	Label string `json:"label"`
}

type shareResponse struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.GET("", h.List)
		habits.POST("", h.Create)
		habits.POST("/from-template", h.CreateFromTemplate)

		habits.GET("/undo", h.UndoStatus)
		habits.POST("/undo", h.Undo)

		habits.GET("/edit", h.CurrentEdit)
		habits.PUT("/edit", h.UpdateEdit)
		habits.POST("/edit/commit", h.CommitEdit)

		habits.GET("/:id", h.Get)
		habits.DELETE("/:id", h.Delete)
		habits.POST("/:id/toggle", h.Toggle)
		habits.POST("/:id/edit", h.BeginEdit)
		habits.GET("/:id/share", h.Share)
	}

	router.GET("/templates", h.ListTemplates)
}

// List godoc
// @Summary List habits
// @Tags habits
// @Produce json
// @Success 200 {array} domain.HabitEntry
// @Router /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.Snapshot())
}

// Create godoc
// @Summary Add a habit
// @Tags habits
// @Accept json
// @Produce json
// @Param body body createHabitRequest true "Habit label"
// @Success 201 {object} domain.HabitEntry
// @Failure 400 {object} errorResponse
// @Router /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	entry, err := h.tracker.AddEntry(c.Request.Context(), req.Label)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// CreateFromTemplate godoc
// @Summary Add a habit from a suggested template
// @Tags habits
// @Accept json
// @Produce json
// @Param body body templateHabitRequest true "Template category and label"
// @Success 201 {object} domain.HabitEntry
// @Failure 404 {object} errorResponse
// @Router /habits/from-template [post]
func (h *HabitHandler) CreateFromTemplate(c *gin.Context) {
	var req templateHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	tmpl, err := h.templates.Find(req.Category, req.Label)
	if err != nil {
		respondError(c, err)
		return
	}

	entry, err := h.tracker.AddEntry(c.Request.Context(), tmpl.Label)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// Get godoc
// @Summary Get a habit
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} domain.HabitEntry
// @Failure 404 {object} errorResponse
// @Router /habits/{id} [get]
func (h *HabitHandler) Get(c *gin.Context) {
	entry, err := h.tracker.Get(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Toggle godoc
// @Summary Toggle a habit's checked state
// @Description Checking increments the streak and records today. The habit unchecks itself after a short delay.
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} domain.HabitEntry
// @Failure 404 {object} errorResponse
// @Router /habits/{id}/toggle [post]
func (h *HabitHandler) Toggle(c *gin.Context) {
	entry, err := h.tracker.ToggleCheck(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// Delete godoc
// @Summary Delete a habit
// @Description The habit can be restored through /habits/undo for a short window.
// @Tags habits
// @Param id path string true "Habit ID"
// @Success 204
// @Failure 404 {object} errorResponse
// @Router /habits/{id} [delete]
func (h *HabitHandler) Delete(c *gin.Context) {
	if err := h.tracker.DeleteEntry(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// UndoStatus godoc
// @Summary Report whether a deleted habit can be restored
// @Tags habits
// @Produce json
// @Success 200 {object} map[string]bool
// @Router /habits/undo [get]
func (h *HabitHandler) UndoStatus(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"available": h.tracker.UndoAvailable()})
}

// Undo godoc
// @Summary Restore the most recently deleted habit
// @Tags habits
// @Produce json
// @Success 200 {object} domain.HabitEntry
// @Failure 409 {object} errorResponse
// @Router /habits/undo [post]
func (h *HabitHandler) Undo(c *gin.Context) {
	entry, err := h.tracker.RestoreLastDeleted(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entry)
}

// BeginEdit godoc
// @Summary Open an edit session on a habit
// @Tags edit
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} services.EditSession
// @Failure 404 {object} errorResponse
// @Router /habits/{id}/edit [post]
func (h *HabitHandler) BeginEdit(c *gin.Context) {
	session, err := h.tracker.BeginEdit(c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// CurrentEdit godoc
// @Summary Show the open edit session
// @Tags edit
// @Produce json
// @Success 200 {object} services.EditSession
// @Failure 409 {object} errorResponse
// @Router /habits/edit [get]
func (h *HabitHandler) CurrentEdit(c *gin.Context) {
	session, ok := h.tracker.EditSession()
	if !ok {
		respondError(c, domain.ErrNoEditSession)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateEdit godoc
// @Summary Replace the edit buffer
// @Tags edit
// @Accept json
// @Param body body editBufferRequest true "New label text"
// @Success 204
// @Failure 409 {object} errorResponse
// @Router /habits/edit [put]
func (h *HabitHandler) UpdateEdit(c *gin.Context) {
	var req editBufferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := h.tracker.UpdateEditBuffer(req.Label); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// CommitEdit godoc
// @Summary Request a debounced commit of the edit buffer
// @Tags edit
// @Success 202
// @Failure 409 {object} errorResponse
// @Router /habits/edit/commit [post]
func (h *HabitHandler) CommitEdit(c *gin.Context) {
	if err := h.tracker.RequestCommit(); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusAccepted)
}

// Share godoc
// @Summary Share a habit's streak
// @Tags habits
// @Produce json
// @Param id path string true "Habit ID"
// @Success 200 {object} shareResponse
// @Failure 404 {object} errorResponse
// @Router /habits/{id}/share [get]
func (h *HabitHandler) Share(c *gin.Context) {
	text, err := h.tracker.ShareProgress(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, shareResponse{Title: "Habit Progress", Text: text})
}

// ListTemplates godoc
// @Summary List suggested habit templates
// @Tags templates
// @Produce json
// @Success 200 {array} domain.HabitTemplate
// @Router /templates [get]
func (h *HabitHandler) ListTemplates(c *gin.Context) {
	c.JSON(http.StatusOK, h.templates.List())
}
