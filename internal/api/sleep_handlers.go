package api

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yourname/sleeplog/internal/service"
)

func GetSleep(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		log, err := app.SleepRepo().Load(c.Request.Context())
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to fetch logs")
			return
		}
		HandleSuccess(c, app.Logger(), log, map[string]any{"total": len(log)})
	}
}

func GetSleepStats(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		window, err := windowParam(c, app.Window())
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid window")
			return
		}

		sum, err := service.History(c.Request.Context(), app.SleepRepo(), window)
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to compute stats")
			return
		}

		meta := map[string]any{
			"average_hours": sum.Average,
			"window":        sum.Window,
			"count":         len(sum.Entries),
			"total":         sum.Total,
		}
		HandleSuccess(c, app.Logger(), sum.Entries, meta)
	}
}

func GetSleepAdvice(app App) gin.HandlerFunc {
	return func(c *gin.Context) {
		window, err := windowParam(c, app.Window())
		if err != nil {
			HandleError(c, app.Logger(), err, 400, "Invalid window")
			return
		}

		adv, err := service.Advise(c.Request.Context(), app.SleepRepo(), window)
		if err != nil {
			HandleError(c, app.Logger(), err, statusFor(err), "Failed to compute advice")
			return
		}

		meta := map[string]any{
			"category":      adv.Category.String(),
			"advice":        adv.Text,
			"average_hours": adv.Average,
			"count":         adv.Count,
		}
		HandleSuccess(c, app.Logger(), nil, meta)
	}
}

func windowParam(c *gin.Context, fallback int) (int, error) {
	raw := c.Query("window")
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, err
	}
	if n <= 0 {
		return 0, strconv.ErrRange
	}
	return n, nil
}
