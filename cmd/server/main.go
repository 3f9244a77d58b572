package main

import (
	"log"
	"os"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"petrolog/config"
	"petrolog/database"
	"petrolog/router"

	"petrolog/pkg/ai"

	authCtrlImp "petrolog/pkg/auth/controllerImp"
	authRepoImp "petrolog/pkg/auth/repositoryImp"

	wellCtrlImp "petrolog/pkg/well/controllerImp"
	wellRepoImp "petrolog/pkg/well/repositoryImp"

	logCtrlImp "petrolog/pkg/welllog/controllerImp"
	logRepoImp "petrolog/pkg/welllog/repositoryImp"

	anaCtrlImp "petrolog/pkg/analysis/controllerImp"
	anaRepoImp "petrolog/pkg/analysis/repositoryImp"
	anaSvcImp "petrolog/pkg/analysis/serviceImp"

	reportCtrlImp "petrolog/pkg/report/controllerImp"

	kbCtrlImp "petrolog/pkg/kb/controllerImp"
	kbEmbedder "petrolog/pkg/kb/embedder"
	kbRepoImp "petrolog/pkg/kb/repositoryImp"
	kbSvcImp "petrolog/pkg/kb/serviceImp"

	healthCtrlImp "petrolog/pkg/health/controllerImp"
)

func main() {
	cfg := config.Load()

	db := database.OpenSQLite(cfg.DBPath)

	e := echo.New()
	e.HideBanner = true
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.CORS())

	// LLM client, mock unless an endpoint is configured
	var llm ai.Client
	if cfg.LLMEndpoint != "" && cfg.LLMAPIKey != "" {
		llm = ai.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel)
	} else {
		llm = ai.NewMock()
	}

	// reference library
	var emb *kbEmbedder.Client
	if ep := os.Getenv("EMB_ENDPOINT"); ep != "" {
		emb = kbEmbedder.New(ep, os.Getenv("EMB_API_KEY"), os.Getenv("EMB_MODEL"))
	}
	kbSvc := kbSvcImp.New(kbRepoImp.New(db), emb)
	kbCtrl := kbCtrlImp.New(kbSvc)

	// repositories
	userRepo := authRepoImp.New(db)
	wellRepo := wellRepoImp.New(db)
	logRepo := logRepoImp.New(db)
	zoneRepo := anaRepoImp.New(db)

	// controllers
	authCtrl := authCtrlImp.New(userRepo, cfg.JWTSecret)
	wellCtrl := wellCtrlImp.New(wellRepo, logRepo)
	logCtrl := logCtrlImp.New(logRepo, wellRepo)
	anaCtrl := anaCtrlImp.New(anaSvcImp.New(logRepo, zoneRepo), wellRepo, logRepo, zoneRepo)
	reportCtrl := reportCtrlImp.New(wellRepo, logRepo, zoneRepo, llm, kbSvc)
	healthCtrl := healthCtrlImp.NewHealthCtrl(db)

	r := router.New(e, cfg.JWTSecret,
		authCtrl, wellCtrl, logCtrl, anaCtrl, reportCtrl, kbCtrl, healthCtrl)

	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
