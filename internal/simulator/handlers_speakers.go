package simulator

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"soundctl/internal/models"
)

// @Summary      List speakers
// @Tags         speakers
// @Produce      json
// @Success      200  {array}  models.Speaker
// @Router       /api/v1/speakers [get]
func (h *Handler) getSpeakers(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Speakers())
}

// @Summary      Get the speaker layout grid
// @Tags         speakers
// @Produce      json
// @Success      200  {object}  models.SpeakerLayout
// @Router       /api/v1/speakers/config/layout [get]
func (h *Handler) getSpeakerLayout(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Layout())
}

// @Summary      Group all speakers
// @Tags         speakers
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/speakers/group [post]
func (h *Handler) groupAllSpeakers(c *gin.Context) {
	groupID := h.svc.GroupAll()
	c.JSON(http.StatusOK, gin.H{"message": "All speakers grouped", "group_id": groupID})
}

// @Summary      Set one speaker's volume
// @Tags         speakers
// @Accept       json
// @Produce      json
// @Param        speakerName  path  string                true  "Speaker name"
// @Param        body         body  models.SpeakerVolume  true  "Volume 0-100"
// @Success      200  {object}  map[string]string
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/speakers/{speakerName}/volume [put]
func (h *Handler) setSpeakerVolume(c *gin.Context) {
	name := strings.ToUpper(c.Param("speakerName"))
	var body models.SpeakerVolume
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid body: " + err.Error()})
		return
	}
	if err := h.svc.SetSpeakerVolume(name, body.Volume); err != nil {
		code := http.StatusBadRequest
		if strings.Contains(err.Error(), "not found") {
			code = http.StatusNotFound
		}
		c.JSON(code, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Volume set for " + name})
}

// @Summary      Set every speaker's volume
// @Tags         speakers
// @Accept       json
// @Produce      json
// @Param        body  body  models.AllSpeakersVolume  true  "Volume 0-100"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/speakers/volume/all [post]
func (h *Handler) setAllSpeakersVolume(c *gin.Context) {
	var body models.AllSpeakersVolume
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid body: " + err.Error()})
		return
	}
	if err := h.svc.SetMasterVolume(body.Volume); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All speakers set"})
}
