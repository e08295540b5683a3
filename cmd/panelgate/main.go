package main

import (
	"flag"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/panelgate-dev/panelgate/internal/config"
	"github.com/panelgate-dev/panelgate/internal/logger"
	"github.com/panelgate-dev/panelgate/internal/router"
	"github.com/panelgate-dev/panelgate/internal/setup"
)

const (
	defaultReadTimeout  = 5 * time.Second
	defaultWriteTimeout = 10 * time.Second
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.Log.Level, cfg.Public.Log.JSON)

	deps := setup.SetupDependencies(cfg)
	srv := configureServer(cfg.Public.Server, router.New(deps))

	logger.Log.Info("panelgate started", "addr", srv.Addr, "backend", cfg.Public.API.Origin)
	if err := srv.ListenAndServe(); err != nil {
		logger.Log.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func configureServer(cfg config.Server, h http.Handler) *http.Server {
	readTimeout := defaultReadTimeout
	if cfg.ReadTimeoutSeconds > 0 {
		readTimeout = time.Duration(cfg.ReadTimeoutSeconds) * time.Second
	}
	writeTimeout := defaultWriteTimeout
	if cfg.WriteTimeoutSeconds > 0 {
		writeTimeout = time.Duration(cfg.WriteTimeoutSeconds) * time.Second
	}

	return &http.Server{
		Addr:         ":" + strconv.Itoa(cfg.Port),
		Handler:      h,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
	}
}
