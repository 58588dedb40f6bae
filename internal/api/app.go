package api

import (
	"github.com/gin-gonic/gin"
	"github.com/yourname/sleeplog/internal"
	"github.com/yourname/sleeplog/internal/storage"
)

type App interface {
	Logger() internal.Logger
	SleepRepo() storage.SleepLogRepository
	Window() int
}

type app struct {
	logger internal.Logger
	repo   storage.SleepLogRepository
	window int
}

func NewApp(logger internal.Logger, repo storage.SleepLogRepository, window int) App {
	return &app{logger: logger, repo: repo, window: window}
}

func (a *app) Logger() internal.Logger               { return a.logger }
func (a *app) SleepRepo() storage.SleepLogRepository { return a.repo }
func (a *app) Window() int                           { return a.window }

// NewRouter wires the read-only view of the sleep log. Nothing here writes
// to the store.
func NewRouter(app App) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), RequestIDMiddleware())

	r.GET("/sleep", GetSleep(app))
	r.GET("/sleep/stats", GetSleepStats(app))
	r.GET("/sleep/advice", GetSleepAdvice(app))
	return r
}
