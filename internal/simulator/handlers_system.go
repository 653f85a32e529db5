package simulator

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// @Summary      Get the program catalog
// @Tags         programs
// @Produce      json
// @Success      200  {object}  models.ProgramCatalog
// @Router       /api/v1/programs [get]
func (h *Handler) getPrograms(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Programs())
}

// @Summary      List favorites
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/favorites [get]
func (h *Handler) getFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"favorites": h.svc.Favorites()})
}

// @Summary      List known favorites
// @Tags         favorites
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/favorites/known [get]
func (h *Handler) getKnownFavorites(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"known_favorites": h.svc.Favorites()})
}

// @Summary      Get system status
// @Tags         system
// @Produce      json
// @Success      200  {object}  models.SystemStatus
// @Router       /api/v1/system/status [get]
func (h *Handler) getSystemStatus(c *gin.Context) {
	st, err := h.svc.SystemStatus(c.Request.Context())
	if err != nil {
		h.detail(c, http.StatusInternalServerError, "failed to read system status", "system_status_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Get recent execution logs
// @Tags         system
// @Produce      json
// @Param        limit  query  int  false  "Max entries"  default(50)
// @Success      200  {object}  map[string]interface{}
// @Router       /api/v1/system/logs [get]
func (h *Handler) getExecutionLogs(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			limit = n
		}
	}
	logs, err := h.svc.ExecutionLogs(c.Request.Context(), limit)
	if err != nil {
		h.detail(c, http.StatusInternalServerError, "failed to read logs", "system_logs_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// @Summary      Get fire show mode status
// @Tags         system
// @Produce      json
// @Success      200  {object}  models.FireShowMode
// @Router       /api/v1/system/fire-show-mode [get]
func (h *Handler) getFireShowMode(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.FireShowStatus())
}

// @Summary      Enable fire show mode
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/system/fire-show-mode/enable [post]
func (h *Handler) enableFireShowMode(c *gin.Context) {
	if err := h.svc.EnableFireShow(c.Request.Context()); err != nil {
		h.detail(c, http.StatusInternalServerError, "failed to enable fire show mode", "fire_show_enable_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "enabled", "message": "Fire Show Mode enabled"})
}

// @Summary      Disable fire show mode
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/system/fire-show-mode/disable [post]
func (h *Handler) disableFireShowMode(c *gin.Context) {
	if err := h.svc.DisableFireShow(c.Request.Context()); err != nil {
		h.detail(c, http.StatusInternalServerError, "failed to disable fire show mode", "fire_show_disable_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "disabled", "message": "Fire Show Mode disabled"})
}

// @Summary      Toggle fire show mode
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/system/fire-show-mode/toggle [post]
func (h *Handler) toggleFireShowMode(c *gin.Context) {
	if err := h.svc.ToggleFireShow(c.Request.Context()); err != nil {
		h.detail(c, http.StatusInternalServerError, "failed to toggle fire show mode", "fire_show_toggle_failed", err)
		return
	}
	c.JSON(http.StatusOK, h.svc.FireShowStatus())
}
