package simulator

import (
	"net/http"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"soundctl/internal/logger"
)

// Handler wires the HTTP layer to the simulated venue service.
type Handler struct {
	svc *Service
	log *logger.Logger
}

func NewHandler(svc *Service, log *logger.Logger) *Handler {
	return &Handler{svc: svc, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	api := router.Group("/api/v1")
	{
		h.registerScheduleRoutes(api)
		h.registerPlaybackRoutes(api)
		h.registerSpeakerRoutes(api)
		h.registerProgramRoutes(api)
		h.registerSystemRoutes(api)
	}

	return router
}

func (h *Handler) registerScheduleRoutes(api *gin.RouterGroup) {
	schedule := api.Group("/schedule")
	{
		schedule.GET("", h.getWeekSchedule)
		schedule.POST("/reset", h.resetSchedule)
		schedule.GET("/:day", h.getDaySchedule)
		schedule.POST("/:day", h.addScheduleSlot)
		schedule.PUT("/:day/:slotId", h.updateScheduleSlot)
		schedule.DELETE("/:day/:slotId", h.deleteScheduleSlot)
	}
}

func (h *Handler) registerPlaybackRoutes(api *gin.RouterGroup) {
	playback := api.Group("/playback")
	{
		playback.GET("/status", h.getPlaybackStatus)
		playback.POST("/play", h.play)
		playback.POST("/pause", h.pause)
		playback.POST("/volume", h.setVolume)
		playback.POST("/run-program/:programName", h.runProgram)
	}
}

func (h *Handler) registerSpeakerRoutes(api *gin.RouterGroup) {
	speakers := api.Group("/speakers")
	{
		speakers.GET("", h.getSpeakers)
		speakers.GET("/config/layout", h.getSpeakerLayout)
		speakers.POST("/group", h.groupAllSpeakers)
		speakers.POST("/volume/all", h.setAllSpeakersVolume)
		speakers.PUT("/:speakerName/volume", h.setSpeakerVolume)
	}
}

func (h *Handler) registerProgramRoutes(api *gin.RouterGroup) {
	api.GET("/programs", h.getPrograms)

	favorites := api.Group("/favorites")
	{
		favorites.GET("", h.getFavorites)
		favorites.GET("/known", h.getKnownFavorites)
	}
}

func (h *Handler) registerSystemRoutes(api *gin.RouterGroup) {
	system := api.Group("/system")
	{
		system.GET("/status", h.getSystemStatus)
		system.GET("/logs", h.getExecutionLogs)
		system.GET("/fire-show-mode", h.getFireShowMode)
		system.POST("/fire-show-mode/enable", h.enableFireShowMode)
		system.POST("/fire-show-mode/disable", h.disableFireShowMode)
		system.POST("/fire-show-mode/toggle", h.toggleFireShowMode)
	}
}

// detail writes the error shape the console client expects and logs it.
func (h *Handler) detail(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"detail": userMsg})
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
