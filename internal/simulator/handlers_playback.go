package simulator

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"soundctl/internal/models"
)

// @Summary      Get playback status
// @Tags         playback
// @Produce      json
// @Success      200  {object}  models.PlaybackStatus
// @Router       /api/v1/playback/status [get]
func (h *Handler) getPlaybackStatus(c *gin.Context) {
	st, err := h.svc.PlaybackStatus(c.Request.Context())
	if err != nil {
		h.detail(c, http.StatusInternalServerError, "failed to read playback status", "playback_status_failed", err)
		return
	}
	c.JSON(http.StatusOK, st)
}

// @Summary      Start playback, a program, or a favorite
// @Tags         playback
// @Accept       json
// @Produce      json
// @Param        body  body  models.PlaybackCommand  false  "Optional program or favorite"
// @Success      200   {object}  map[string]string
// @Router       /api/v1/playback/play [post]
func (h *Handler) play(c *gin.Context) {
	var cmd models.PlaybackCommand
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&cmd); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid body: " + err.Error()})
			return
		}
	}
	if err := h.svc.Play(c.Request.Context(), cmd); err != nil {
		h.detail(c, http.StatusInternalServerError, "failed to start playback", "playback_play_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Playback started"})
}

// @Summary      Pause playback until midnight
// @Tags         playback
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/playback/pause [post]
func (h *Handler) pause(c *gin.Context) {
	if err := h.svc.Pause(c.Request.Context()); err != nil {
		h.detail(c, http.StatusInternalServerError, "failed to pause", "playback_pause_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Playback paused"})
}

// @Summary      Set master volume
// @Tags         playback
// @Accept       json
// @Produce      json
// @Param        body  body  models.VolumeCommand  true  "Volume 0-100"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/playback/volume [post]
func (h *Handler) setVolume(c *gin.Context) {
	var cmd models.VolumeCommand
	if err := c.ShouldBindJSON(&cmd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid body: " + err.Error()})
		return
	}
	if err := h.svc.SetMasterVolume(cmd.Volume); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Volume set"})
}

// @Summary      Run a program immediately
// @Tags         playback
// @Produce      json
// @Param        programName  path  string  true  "Script name, e.g. 85adfire.py"
// @Success      200  {object}  map[string]string
// @Router       /api/v1/playback/run-program/{programName} [post]
func (h *Handler) runProgram(c *gin.Context) {
	name := c.Param("programName")
	if err := h.svc.RunProgram(c.Request.Context(), name); err != nil {
		h.detail(c, http.StatusInternalServerError, "failed to run program", "playback_run_failed", err, "program", name)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Running program: " + name})
}
