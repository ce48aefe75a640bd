package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/services"
	"github.com/RedPanda-08/AI-Content-Generator-sub000/internal/transport/httpdto"
)

type CronHandler struct {
	watchdog *services.WatchdogService
}

func NewCronHandler(watchdog *services.WatchdogService) *CronHandler {
	return &CronHandler{watchdog: watchdog}
}

// CheckSchedule runs one watchdog pass. Nothing due is a normal outcome and
// is reported distinctly from an error.
func (h *CronHandler) CheckSchedule(c *gin.Context) {
	summary, err := h.watchdog.Run(c.Request.Context(), time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	resp := httpdto.WatchdogResponse{
		Due:       summary.Due,
		Processed: summary.Processed,
	}
	if summary.Due == 0 {
		resp.Message = "nothing due"
	}
	c.JSON(http.StatusOK, httpdto.NewSuccessResponse(resp))
}
