package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/avelasq/paycheck-planner/internal/config"
	"github.com/avelasq/paycheck-planner/internal/handler"
	"github.com/avelasq/paycheck-planner/internal/middleware"
	"github.com/avelasq/paycheck-planner/internal/service"
	"github.com/avelasq/paycheck-planner/internal/view"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func main() {
	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Initialize layers
	svc := service.NewService(logger)
	h := handler.NewHandler(svc, logger)

	// Setup router
	r := mux.NewRouter()
	r.Use(middleware.Logging(logger))
	r.HandleFunc("/", h.Index).Methods("GET")
	r.HandleFunc("/analyze", h.Analyze).Methods("POST")
	r.PathPrefix("/static/").Handler(http.FileServer(view.StaticFS()))

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	logger.Infof("Starting server on %s", addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatalf("Server failed: %v", err)
	}
}
