package main

import (
	"log"

	"github.com/vikasgautam18/mcp-example/internal/application/shop"
	"github.com/vikasgautam18/mcp-example/internal/config"
	ginserver "github.com/vikasgautam18/mcp-example/internal/infrastructure/http/gin"
	"github.com/vikasgautam18/mcp-example/internal/interfaces/http/handler"
	"github.com/vikasgautam18/mcp-example/internal/interfaces/http/router"
	"github.com/vikasgautam18/mcp-example/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	lg, err := logger.NewZapLogger(cfg.App.Env)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	// The demo backend ships with the sample catalog and the two
	// historical orders so agents always have data to find.
	svc := shop.NewService(shop.WithSeedOrders(), shop.WithLogger(lg))

	engine := ginserver.NewEngine()
	router.RegisterRoutes(engine, handler.NewProductHandler(svc), handler.NewOrderHandler(svc))

	server := ginserver.NewServer(cfg.Server, engine)
	lg.Info("mock shop api listening", logger.String("addr", cfg.Server.Address()))
	if err := server.Run(); err != nil {
		lg.Fatal("server run failed", logger.Error(err))
	}
}
