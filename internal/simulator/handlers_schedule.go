package simulator

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"soundctl/internal/models"
	"soundctl/internal/simulator/repository"
)

var validDays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

func dayParam(c *gin.Context) (string, bool) {
	day := strings.ToLower(c.Param("day"))
	if !validDays[day] {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Unknown day: " + day})
		return "", false
	}
	return day, true
}

func slotIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("slotId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Invalid slot id"})
		return 0, false
	}
	return id, true
}

// @Summary      Get the full week schedule
// @Tags         schedule
// @Produce      json
// @Success      200  {object}  models.WeekSchedule
// @Router       /api/v1/schedule [get]
func (h *Handler) getWeekSchedule(c *gin.Context) {
	week, err := h.svc.WeekSchedule(c.Request.Context())
	if err != nil {
		h.detail(c, http.StatusInternalServerError, "failed to load schedule", "schedule_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, week)
}

// @Summary      Get one day's schedule
// @Tags         schedule
// @Produce      json
// @Param        day  path  string  true  "Weekday (monday..sunday)"
// @Success      200  {object}  models.DaySchedule
// @Failure      404  {object}  map[string]string
// @Router       /api/v1/schedule/{day} [get]
func (h *Handler) getDaySchedule(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	ds, err := h.svc.DaySchedule(c.Request.Context(), day)
	if err != nil {
		h.detail(c, http.StatusInternalServerError, "failed to load schedule", "schedule_day_failed", err, "day", day)
		return
	}
	c.JSON(http.StatusOK, ds)
}

// @Summary      Add a schedule slot
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        day   path  string                     true  "Weekday"
// @Param        body  body  models.ScheduleSlotCreate  true  "Slot"
// @Success      200   {object}  models.ScheduleSlot
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/schedule/{day} [post]
func (h *Handler) addScheduleSlot(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	var req models.ScheduleSlotCreate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid body: " + err.Error()})
		return
	}
	created, err := h.svc.AddSlot(c.Request.Context(), day, req)
	if err != nil {
		h.detail(c, http.StatusInternalServerError, "failed to add slot", "schedule_add_failed", err, "day", day)
		return
	}
	c.JSON(http.StatusOK, created)
}

// @Summary      Update a schedule slot
// @Tags         schedule
// @Accept       json
// @Produce      json
// @Param        day     path  string                     true  "Weekday"
// @Param        slotId  path  int                        true  "Slot id"
// @Param        body    body  models.ScheduleSlotUpdate  true  "Fields to change"
// @Success      200     {object}  models.ScheduleSlot
// @Failure      404     {object}  map[string]string
// @Router       /api/v1/schedule/{day}/{slotId} [put]
func (h *Handler) updateScheduleSlot(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	slotID, ok := slotIDParam(c)
	if !ok {
		return
	}
	var req models.ScheduleSlotUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid body: " + err.Error()})
		return
	}
	updated, err := h.svc.UpdateSlot(c.Request.Context(), day, slotID, req)
	if err != nil {
		if errors.Is(err, repository.ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Slot not found"})
			return
		}
		h.detail(c, http.StatusInternalServerError, "failed to update slot", "schedule_update_failed", err, "day", day, "slot", slotID)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete a schedule slot
// @Tags         schedule
// @Produce      json
// @Param        day     path  string  true  "Weekday"
// @Param        slotId  path  int     true  "Slot id"
// @Success      200     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /api/v1/schedule/{day}/{slotId} [delete]
func (h *Handler) deleteScheduleSlot(c *gin.Context) {
	day, ok := dayParam(c)
	if !ok {
		return
	}
	slotID, ok := slotIDParam(c)
	if !ok {
		return
	}
	if err := h.svc.DeleteSlot(c.Request.Context(), day, slotID); err != nil {
		if errors.Is(err, repository.ErrSlotNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Slot not found"})
			return
		}
		h.detail(c, http.StatusInternalServerError, "failed to delete slot", "schedule_delete_failed", err, "day", day, "slot", slotID)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Slot deleted"})
}

// @Summary      Reset the schedule to factory defaults
// @Tags         schedule
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /api/v1/schedule/reset [post]
func (h *Handler) resetSchedule(c *gin.Context) {
	if err := h.svc.ResetSchedule(c.Request.Context()); err != nil {
		h.detail(c, http.StatusInternalServerError, "failed to reset schedule", "schedule_reset_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Schedule reset to defaults"})
}
