package config

import (
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, common.HexToAddress("0x55bDaFa6b9E7762684305615828A49589f4D7Ee5"), cfg.Chain.Contract)
	assert.Equal(t, int64(11155111), cfg.Chain.ExpectedChain().Int64())
	assert.Equal(t, 30*time.Second, cfg.Chain.RefreshInterval)
	assert.Equal(t, "text", cfg.Log.SlogFormat())
	assert.Empty(t, cfg.HTTP.AllowedOrigins)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("CHAIN_RPC_URL", "http://localhost:8545")
	t.Setenv("CHAIN_CONTRACT_ADDRESS", "0x1111111111111111111111111111111111111111")
	t.Setenv("CHAIN_EXPECTED_CHAIN_ID", "0")
	t.Setenv("CHAIN_FETCH_CONCURRENCY", "2")
	t.Setenv("AUTH_JWT_SECRET", "s3cret")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("HTTP_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "http://localhost:8545", cfg.Chain.RPCURL)
	assert.Equal(t, common.HexToAddress("0x1111111111111111111111111111111111111111"), cfg.Chain.Contract)
	assert.Nil(t, cfg.Chain.ExpectedChain())
	assert.Equal(t, 2, cfg.Chain.FetchConcurrency)
	assert.Equal(t, "s3cret", cfg.Auth.Secret)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.HTTP.AllowedOrigins)
}

func TestLoadRejectsBadAddress(t *testing.T) {
	t.Setenv("CHAIN_CONTRACT_ADDRESS", "not-an-address")
	_, err := Load()
	assert.Error(t, err)
}
