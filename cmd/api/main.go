package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"

	"cellbench/internal/api"
	"cellbench/internal/bench"
	"cellbench/internal/config"
)

func main() {
	cfgPath := flag.String("config", "", "Path to YAML config (optional)")
	flag.Parse()

	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := config.Default()
	if *cfgPath != "" {
		loaded, err := config.Load(*cfgPath)
		if err != nil {
			logrus.WithError(err).Fatal("load config")
		}
		cfg = loaded
	}
	if addr := os.Getenv("CELLBENCH_ADDR"); addr != "" {
		cfg.Server.Addr = addr
	}

	reg, err := cfg.Registry()
	if err != nil {
		logrus.WithError(err).Fatal("build chemistry registry")
	}

	if os.Getenv("CELLBENCH_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	src := bench.NewSource(cfg.Cells.Seed)
	engine := bench.NewEngine(bench.NewStore(reg), bench.NewLog(), src)
	router := api.NewRouter(cfg, engine, src)

	// The dashboard frontend is served from another origin.
	handler := cors.Default().Handler(router)

	logrus.WithFields(logrus.Fields{
		"addr":        cfg.Server.Addr,
		"chemistries": reg.Tags(),
	}).Info("cellbench api listening")
	if err := http.ListenAndServe(cfg.Server.Addr, handler); err != nil {
		logrus.WithError(err).Fatal("http server")
	}
}
