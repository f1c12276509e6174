package main

import (
	"context"
	"encoding/json"
	"log"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/vikasgautam18/mcp-example/internal/application/shop"
	"github.com/vikasgautam18/mcp-example/internal/config"
	"github.com/vikasgautam18/mcp-example/internal/infrastructure/http/shopapi"
	"github.com/vikasgautam18/mcp-example/internal/tools"
)

const serverVersion = "1.0.0"

// The tool-server speaks MCP over stdio: stdout carries the protocol,
// so all diagnostics go to stderr (the std log default).
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	// Bind in-process by default; point SHOP_API_BASE_URL at a running
	// mock API to proxy over HTTP instead.
	var backend tools.Backend
	if cfg.ShopAPI.BaseURL != "" {
		log.Printf("tool-server backend: %s", cfg.ShopAPI.BaseURL)
		backend = shopapi.NewClient(cfg.ShopAPI)
	} else {
		log.Printf("tool-server backend: in-process")
		backend = shop.NewService(shop.WithSeedOrders())
	}

	srv := server.NewMCPServer("shop-mcp-server", serverVersion)
	for _, def := range tools.Registry(backend) {
		raw, err := def.RawSchema()
		if err != nil {
			log.Fatalf("schema for %s failed: %v", def.Name, err)
		}
		srv.AddTool(mcp.NewToolWithRawSchema(def.Name, def.Description, raw), adaptHandler(def))
	}

	if err := server.ServeStdio(srv); err != nil {
		log.Fatalf("tool-server stopped: %v", err)
	}
}

// adaptHandler bridges one registry entry into an MCP tool handler.
// Business failures become error-flagged tool results so the calling
// agent can read the message; only transport problems surface as
// protocol errors.
func adaptHandler(def tools.ToolDefinition) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, err := json.Marshal(req.GetArguments())
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		out, err := def.Handler(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(out), nil
	}
}
