package client

import (
	"context"
	"fmt"

	"soundctl/internal/models"
)

// Schedule

func (c *Client) GetSchedule(ctx context.Context) (models.WeekSchedule, error) {
	var week models.WeekSchedule
	if err := c.get(ctx, "/schedule", &week); err != nil {
		return nil, err
	}
	return week, nil
}

func (c *Client) GetDaySchedule(ctx context.Context, day string) (models.DaySchedule, error) {
	var ds models.DaySchedule
	err := c.get(ctx, "/schedule/"+day, &ds)
	return ds, err
}

func (c *Client) AddScheduleSlot(ctx context.Context, day string, slot models.ScheduleSlotCreate) (models.ScheduleSlot, error) {
	var created models.ScheduleSlot
	err := c.post(ctx, "/schedule/"+day, slot, &created)
	return created, err
}

func (c *Client) UpdateScheduleSlot(ctx context.Context, day string, slotID int, upd models.ScheduleSlotUpdate) (models.ScheduleSlot, error) {
	var updated models.ScheduleSlot
	err := c.put(ctx, fmt.Sprintf("/schedule/%s/%d", day, slotID), upd, &updated)
	return updated, err
}

func (c *Client) DeleteScheduleSlot(ctx context.Context, day string, slotID int) error {
	return c.delete(ctx, fmt.Sprintf("/schedule/%s/%d", day, slotID))
}

func (c *Client) ResetSchedule(ctx context.Context) error {
	return c.post(ctx, "/schedule/reset", nil, nil)
}

// Playback

func (c *Client) GetPlaybackStatus(ctx context.Context) (models.PlaybackStatus, error) {
	var st models.PlaybackStatus
	err := c.get(ctx, "/playback/status", &st)
	return st, err
}

func (c *Client) Play(ctx context.Context, cmd models.PlaybackCommand) error {
	return c.post(ctx, "/playback/play", cmd, nil)
}

func (c *Client) Pause(ctx context.Context) error {
	return c.post(ctx, "/playback/pause", nil, nil)
}

func (c *Client) SetVolume(ctx context.Context, volume int) error {
	return c.post(ctx, "/playback/volume", models.VolumeCommand{Volume: volume}, nil)
}

func (c *Client) RunProgram(ctx context.Context, programName string) error {
	return c.post(ctx, "/playback/run-program/"+programName, nil, nil)
}

// Speakers

func (c *Client) GetSpeakers(ctx context.Context) ([]models.Speaker, error) {
	var speakers []models.Speaker
	if err := c.get(ctx, "/speakers", &speakers); err != nil {
		return nil, err
	}
	return speakers, nil
}

func (c *Client) GetSpeakerLayout(ctx context.Context) (models.SpeakerLayout, error) {
	var layout models.SpeakerLayout
	err := c.get(ctx, "/speakers/config/layout", &layout)
	return layout, err
}

func (c *Client) GroupAllSpeakers(ctx context.Context) error {
	return c.post(ctx, "/speakers/group", nil, nil)
}

func (c *Client) SetSpeakerVolume(ctx context.Context, speakerName, speakerID string, volume int) error {
	body := models.SpeakerVolume{SpeakerID: speakerID, Volume: volume}
	return c.put(ctx, "/speakers/"+speakerName+"/volume", body, nil)
}

func (c *Client) SetAllSpeakersVolume(ctx context.Context, volume int) error {
	return c.post(ctx, "/speakers/volume/all", models.AllSpeakersVolume{Volume: volume}, nil)
}

// Favorites

func (c *Client) GetFavorites(ctx context.Context) ([]models.Favorite, error) {
	var resp struct {
		Favorites []models.Favorite `json:"favorites"`
	}
	if err := c.get(ctx, "/favorites", &resp); err != nil {
		return nil, err
	}
	return resp.Favorites, nil
}

func (c *Client) GetKnownFavorites(ctx context.Context) ([]models.Favorite, error) {
	var resp struct {
		KnownFavorites []models.Favorite `json:"known_favorites"`
	}
	if err := c.get(ctx, "/favorites/known", &resp); err != nil {
		return nil, err
	}
	return resp.KnownFavorites, nil
}

// Programs

func (c *Client) GetPrograms(ctx context.Context) (models.ProgramCatalog, error) {
	var catalog models.ProgramCatalog
	err := c.get(ctx, "/programs", &catalog)
	return catalog, err
}

// System

func (c *Client) GetSystemStatus(ctx context.Context) (models.SystemStatus, error) {
	var st models.SystemStatus
	err := c.get(ctx, "/system/status", &st)
	return st, err
}

func (c *Client) GetExecutionLogs(ctx context.Context, limit int) ([]models.ExecutionLog, error) {
	var resp struct {
		Logs []models.ExecutionLog `json:"logs"`
	}
	if err := c.get(ctx, fmt.Sprintf("/system/logs?limit=%d", limit), &resp); err != nil {
		return nil, err
	}
	return resp.Logs, nil
}

// Fire show mode

func (c *Client) GetFireShowMode(ctx context.Context) (models.FireShowMode, error) {
	var mode models.FireShowMode
	err := c.get(ctx, "/system/fire-show-mode", &mode)
	return mode, err
}

func (c *Client) EnableFireShowMode(ctx context.Context) error {
	return c.post(ctx, "/system/fire-show-mode/enable", nil, nil)
}

func (c *Client) DisableFireShowMode(ctx context.Context) error {
	return c.post(ctx, "/system/fire-show-mode/disable", nil, nil)
}

func (c *Client) ToggleFireShowMode(ctx context.Context) error {
	return c.post(ctx, "/system/fire-show-mode/toggle", nil, nil)
}
