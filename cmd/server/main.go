package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"engineview/config"
	"engineview/database"
	"engineview/router"

	authCtrlImp "engineview/pkg/auth/controllerImp"
	chartCtrlImp "engineview/pkg/chart/controllerImp"
	engineCtrlImp "engineview/pkg/engine/controllerImp"
	engineRepoImp "engineview/pkg/engine/repositoryImp"
	healthCtrlImp "engineview/pkg/health/controllerImp"
	importCtrlImp "engineview/pkg/importer/controllerImp"
	importSvcImp "engineview/pkg/importer/serviceImp"
	measCtrlImp "engineview/pkg/measurement/controllerImp"
	measRepoImp "engineview/pkg/measurement/repositoryImp"
	paramCtrlImp "engineview/pkg/parameter/controllerImp"
	paramRepoImp "engineview/pkg/parameter/repositoryImp"
	statsCtrlImp "engineview/pkg/stats/controllerImp"
	statsRepoImp "engineview/pkg/stats/repositoryImp"
	vesselCtrlImp "engineview/pkg/vessel/controllerImp"
	vesselRepoImp "engineview/pkg/vessel/repositoryImp"
)

func main() {
	// 1) Config
	cfg := config.Load()

	// 2) DB (sqlite) + automigrate + standard parameter set
	db := database.OpenSQLite(cfg.DBPath)
	if err := database.SeedParameterTypes(db); err != nil {
		log.Fatalf("seed parameter types: %v", err)
	}

	// 3) Echo
	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())

	// 4) Repositories
	vRepo := vesselRepoImp.New(db)
	eRepo := engineRepoImp.New(db)
	pRepo := paramRepoImp.New(db)
	mRepo := measRepoImp.New(db)
	sRepo := statsRepoImp.New(db)

	// 5) Import pipeline
	importSvc := importSvcImp.New(pRepo, mRepo, eRepo)

	// 6) Controllers
	vCtrl := vesselCtrlImp.New(vRepo)
	eCtrl := engineCtrlImp.New(eRepo, vRepo)
	pCtrl := paramCtrlImp.New(pRepo)
	mCtrl := measCtrlImp.New(mRepo, pRepo)
	iCtrl := importCtrlImp.New(importSvc)
	cCtrl := chartCtrlImp.New(mRepo, pRepo)
	sCtrl := statsCtrlImp.New(sRepo)
	aCtrl := authCtrlImp.New()
	hCtrl := healthCtrlImp.NewHealthCtrl(db)

	// 7) Router
	r := router.New(e, vCtrl, eCtrl, pCtrl, mCtrl, iCtrl, cCtrl, sCtrl, aCtrl, hCtrl, cfg.EnableAuth)

	// 8) Start
	log.Printf("listening on :%s", cfg.Port)
	if err := r.Start(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
