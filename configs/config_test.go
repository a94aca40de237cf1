package configs

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	base := `
app:
  name: storefront-api
  http_addr: ":8080"
  log_file: ./logs/app.log
mysql:
  dsn: ""
  max_open_conns: 16
redis:
  addr: "localhost:6379"
cart:
  ttl: 0s
checkout:
  guard_ttl: 30s
kafka:
  brokers: ["localhost:9092"]
  payments_topic: payments.status.changed
  group_id: storefront-api
`
	dev := `
mysql:
  dsn: "aurea:aurea@tcp(localhost:3306)/aurea?parseTime=true"
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "base.yaml"), []byte(base), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dev.yaml"), []byte(dev), 0o644))
	return dir
}

func TestLoadLayersEnvFileOverBase(t *testing.T) {
	dir := writeConfigDir(t)

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.App.HTTPAddr)
	assert.Contains(t, cfg.MySQL.DSN, "tcp(localhost:3306)")
	assert.Equal(t, 16, cfg.MySQL.MaxOpenConns)
	assert.Equal(t, 30*time.Second, cfg.Checkout.GuardTTL)
	assert.Equal(t, time.Duration(0), cfg.Cart.TTL)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
}

func TestLoadEnvVarsWin(t *testing.T) {
	dir := writeConfigDir(t)
	t.Setenv("AUREA_MYSQL__DSN", "root:secret@tcp(db:3306)/shop")
	t.Setenv("AUREA_REDIS__PASSWORD", "hunter2")

	cfg, err := Load(dir, "dev")
	require.NoError(t, err)

	assert.Equal(t, "root:secret@tcp(db:3306)/shop", cfg.MySQL.DSN)
	assert.Equal(t, "hunter2", cfg.Redis.Password)
}

func TestLoadMissingEnvFileFallsBackToBase(t *testing.T) {
	dir := writeConfigDir(t)
	t.Setenv("AUREA_MYSQL__DSN", "root:secret@tcp(db:3306)/shop")

	cfg, err := Load(dir, "staging")
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.App.HTTPAddr)
}

func TestLoadRejectsMissingDSN(t *testing.T) {
	dir := writeConfigDir(t)

	// base.yaml leaves mysql.dsn empty and there is no staging.yaml
	_, err := Load(dir, "staging")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql.dsn")
}
