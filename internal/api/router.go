package api

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	ginlogrus "github.com/toorop/gin-logrus"

	"cellbench/internal/api/handlers"
	"cellbench/internal/api/middleware"
	"cellbench/internal/bench"
	"cellbench/internal/config"
)

// NewRouter wires one bench session behind the HTTP surface. The engine
// owns the store and log; handlers only read snapshots and trigger
// operations, so concurrent requests serialize on the store lock.
func NewRouter(cfg *config.Config, engine *bench.Engine, src bench.Source) *gin.Engine {
	router := gin.New()
	router.Use(ginlogrus.Logger(logrus.StandardLogger()), middleware.Recovery())

	benchHandler := handlers.NewBenchHandler(engine, src)
	cellsHandler := handlers.NewCellsHandler(engine)
	analysisHandler := handlers.NewAnalysisHandler(engine, cfg.Bench)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.POST("/bench/initialize", benchHandler.Initialize)
		v1.POST("/bench/tick", benchHandler.Tick)
		v1.POST("/bench/emergency-stop", benchHandler.EmergencyStop)
		v1.POST("/bench/reset", benchHandler.Reset)

		v1.GET("/cells", cellsHandler.List)
		v1.GET("/cells/:id", cellsHandler.Get)
		v1.PUT("/cells/:id/current", benchHandler.SetCurrent)
		v1.GET("/history", cellsHandler.History)

		v1.GET("/overview", analysisHandler.Overview)
		v1.GET("/status", analysisHandler.Status)
		v1.GET("/alerts", analysisHandler.Alerts)
		v1.GET("/ranking", analysisHandler.Ranking)
		v1.GET("/summary", analysisHandler.Summary)
		v1.GET("/correlation", analysisHandler.Correlation)

		v1.GET("/export/cells.csv", cellsHandler.ExportCells)
		v1.GET("/export/history.csv", cellsHandler.ExportHistory)
	}

	return router
}
