// Package main starts the HTTP server backing the supply-chain dashboard:
// supplier catalog, airplane assignment state, pathway screening, and a
// WebSocket feed of fleet updates.
package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/aeroscope/core/cmd/api/middleware"
	"github.com/aeroscope/core/internal/catalog"
	"github.com/aeroscope/core/internal/config"
	"github.com/aeroscope/core/internal/fleet"
	"github.com/aeroscope/core/internal/handlers"
	"github.com/aeroscope/core/internal/pathway"
	"github.com/aeroscope/core/internal/schematic"
	"github.com/aeroscope/core/internal/ws"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}
	config.InitLogger(cfg.Logging)

	cat := catalog.New()
	store := fleet.NewStore(cat)
	engine := pathway.NewEngine()
	hub := ws.NewHub()
	go hub.Run()

	schematics := schematic.NewService(os.Getenv(cfg.Schematic.APIKeyEnv))
	delay := time.Duration(cfg.Analysis.SimulatedDelayMS) * time.Millisecond
	api := handlers.New(cat, store, engine, hub, schematics, delay)

	mux := http.NewServeMux()
	mux.HandleFunc("/health", api.Health)
	mux.HandleFunc("/api/suppliers", api.Suppliers)
	mux.HandleFunc("/api/components", api.Components)
	mux.HandleFunc("/api/airplanes", api.Airplanes)
	mux.HandleFunc("/api/airplanes/risk", api.RiskRows)
	mux.HandleFunc("/api/airplanes/select", api.SelectAirplane)
	mux.HandleFunc("/api/airplanes/reassign", api.ReassignSupplier)
	mux.HandleFunc("/api/airplanes/replace", api.ReplaceComponent)
	mux.HandleFunc("/api/analysis", api.RunAnalysis)
	mux.HandleFunc("/api/dashboard", api.Dashboard)
	mux.HandleFunc("/api/schematic", api.Schematic)
	mux.HandleFunc("/ws", hub.HandleWebSocket)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logrus.WithField("addr", addr).Info("🚀 Server starting")
	logrus.Fatal(http.ListenAndServe(addr, middleware.Cors(cfg.CORS.AllowedOrigin)(mux)))
}
