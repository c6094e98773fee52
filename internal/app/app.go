package app

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/config"
	httpx "github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/http"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/http/handlers"
	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/internal/http/middleware"
)

func Run(cfg *config.Config) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	container, err := NewContainer(cfg)
	if err != nil {
		return err
	}
	defer container.Close()

	if err := container.RedisClient.Ping(context.Background()).Err(); err != nil {
		return err
	}

	accountH := handlers.NewAccountHandlers(container.AccountSvc)
	medH := handlers.NewMedicationHandlers(container.MedRepo, container.SearchSvc, cfg.StaticDir)
	sessMW := middleware.NewSessionMW(container.SessionSvc)

	r := httpx.BuildRouter(accountH, medH, sessMW)

	// Session expiry sweep runs on its own schedule, never per-request
	sweeper := cron.New()
	if _, err := sweeper.AddFunc("@every "+cfg.SweepInterval.String(), func() {
		if err := container.SessionSvc.Sweep(context.Background()); err != nil {
			log.Printf("SESSION_SWEEP_FAILED: error=%q", err.Error())
		}
	}); err != nil {
		return err
	}
	sweeper.Start()
	defer sweeper.Stop()

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	return http.ListenAndServe(addr, r)
}
