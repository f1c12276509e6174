package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServerConfig_Address(t *testing.T) {
	tests := []struct {
		name   string
		server ServerConfig
		want   string
	}{
		{
			name: "loopback default port",
			server: ServerConfig{
				Host: "127.0.0.1",
				Port: 5000,
			},
			want: "127.0.0.1:5000",
		},
		{
			name: "bind all interfaces",
			server: ServerConfig{
				Host: "0.0.0.0",
				Port: 8080,
			},
			want: "0.0.0.0:8080",
		},
		{
			name: "custom host and port",
			server: ServerConfig{
				Host: "api.internal",
				Port: 9000,
			},
			want: "api.internal:9000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			address := tt.server.Address()
			assert.Equal(t, tt.want, address)
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "mcp-example", cfg.App.Name)
	assert.Positive(t, cfg.Server.Port)
	assert.Positive(t, cfg.ShopAPI.TimeoutMS)
}

func TestLoad_ShopAPIBaseURL(t *testing.T) {
	t.Setenv("SHOP_API_BASE_URL", "http://127.0.0.1:5000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:5000", cfg.ShopAPI.BaseURL)
}
