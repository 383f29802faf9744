package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/assetchain/asset-registry/internal/config"
)

const testRPCURL = "https://evm-t3.cronos.org"

func setRequiredEnv(t *testing.T) {
	t.Setenv("ASSET_REGISTRY_ETHEREUM_RPC_URL", testRPCURL)
	t.Setenv("ASSET_REGISTRY_ETHEREUM_CONTRACT_ADDRESS", "0x1111111111111111111111111111111111111111")
}

func TestLoadAPIConfig_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.False(t, cfg.Debug)
	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "mongodb://127.0.0.1:27017", cfg.Mongo.URI)
	assert.Equal(t, "blockchain_assets", cfg.Mongo.Database)
	assert.Equal(t, 10*time.Second, cfg.Mongo.ConnectTimeout)
	assert.Equal(t, uint64(338), cfg.Ethereum.ChainID)
	assert.Equal(t, uint64(20000), cfg.Ethereum.LookbackBlocks)
	assert.Equal(t, uint64(2000), cfg.Ethereum.MaxBlockRange)
	assert.Equal(t, []string{"https://gateway.pinata.cloud", "https://ipfs.io"}, cfg.URI.IPFSGateways)
	assert.Equal(t, 8, cfg.Worker.PoolSize)
	assert.Equal(t, testRPCURL, cfg.Ethereum.RPCURL)
}

func TestLoadAPIConfig_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("ASSET_REGISTRY_DEBUG", "true")
	t.Setenv("ASSET_REGISTRY_SERVER_PORT", "8080")
	t.Setenv("ASSET_REGISTRY_SERVER_CORS_ALLOW_ORIGIN", "https://app.example.com")
	t.Setenv("ASSET_REGISTRY_MONGO_DATABASE", "assets_staging")
	t.Setenv("ASSET_REGISTRY_ETHEREUM_MAX_BLOCK_RANGE", "1999")

	cfg, err := config.LoadAPIConfig("", t.TempDir())
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "https://app.example.com", cfg.Server.CORSAllowOrigin)
	assert.Equal(t, "assets_staging", cfg.Mongo.Database)
	assert.Equal(t, uint64(1999), cfg.Ethereum.MaxBlockRange)
}

func TestLoadAPIConfig_RequiredFields(t *testing.T) {
	t.Setenv("ASSET_REGISTRY_ETHEREUM_RPC_URL", "")
	t.Setenv("ASSET_REGISTRY_ETHEREUM_CONTRACT_ADDRESS", "")

	_, err := config.LoadAPIConfig("", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rpc_url")

	t.Setenv("ASSET_REGISTRY_ETHEREUM_RPC_URL", testRPCURL)
	_, err = config.LoadAPIConfig("", t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "contract_address")
}

func TestLoadAPIConfig_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := `
debug: true
server:
  port: 9000
mongo:
  database: assets_from_file
ethereum:
  rpc_url: https://evm.cronos.org
  chain_id: 25
  contract_address: "0x2222222222222222222222222222222222222222"
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	cfg, err := config.LoadAPIConfig(configPath, dir)
	require.NoError(t, err)

	assert.True(t, cfg.Debug)
	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "assets_from_file", cfg.Mongo.Database)
	assert.Equal(t, uint64(25), cfg.Ethereum.ChainID)
	// defaults still fill what the file leaves out
	assert.Equal(t, uint64(2000), cfg.Ethereum.MaxBlockRange)
}
