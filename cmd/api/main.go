package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	httpadp "loanintake-backend/internal/adapter/http"
	mw "loanintake-backend/internal/adapter/middleware"
	"loanintake-backend/internal/adapter/repository"
	"loanintake-backend/internal/config"
	"loanintake-backend/internal/infrastructure/cache"
	appuc "loanintake-backend/internal/usecase/application"
	"loanintake-backend/internal/usecase/auth"
)

func main() {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()

	// one backend selection point; fatal if the store cannot be opened
	backend, err := repository.Open(ctx, cfg)
	if err != nil {
		log.Fatal(err)
	}

	gate := auth.NewGate(backend.Sessions, cfg.ManagerUser, cfg.ManagerPass)
	if err := gate.Restore(ctx); err != nil {
		log.Printf("session restore failed, starting logged out: %v", err)
	}

	uc := appuc.NewUsecase(backend.Applications)
	cv := httpadp.NewValidator()

	h := httpadp.NewHandler(cfg.StorageBackend)
	appH := httpadp.NewApplicationHandler(uc, cv)
	authH := httpadp.NewAuthHandler(gate)
	reportH := httpadp.NewReportHandler(backend.Applications)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Logger(), middleware.Recover())

	e.GET("/health", h.Health)

	// auth
	e.POST("/login", authH.Login)
	e.POST("/logout", authH.Logout)
	e.GET("/session", authH.Session)

	// applicant-facing; double-submit protection only when redis is around
	intake := e.Group("")
	if cfg.RedisAddr != "" {
		rdb, err := cache.OpenRedis(cfg.RedisAddr, cfg.RedisDB)
		if err != nil {
			log.Fatal(err)
		}
		intake.Use(mw.Dedupe(rdb, time.Duration(cfg.DedupeTTLSecs)*time.Second))
	}
	intake.POST("/applications", appH.Submit)
	e.GET("/applications/search", appH.SearchByEmail)

	// manager-facing, gated on the auth marker
	mgr := e.Group("/manager", mw.RequireLogin(gate))
	mgr.GET("/applications", appH.List)
	mgr.GET("/applications/report", reportH.Export)
	mgr.GET("/applications/:id", appH.Get)
	mgr.PUT("/applications/:id", appH.Update)
	mgr.POST("/applications/:id/approve", appH.Approve)
	mgr.POST("/applications/:id/reject", appH.Reject)
	mgr.DELETE("/applications/:id/paysheet", appH.RemovePaysheet)
	mgr.DELETE("/applications/:id", appH.Delete)
	mgr.DELETE("/applications", appH.DeleteAll)

	addr := ":" + cfg.AppPort
	log.Printf("listening on %s (backend=%s)", addr, cfg.StorageBackend)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
