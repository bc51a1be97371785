package configwatcher

import (
	"context"
	"fmt"
	"homework_check_backend/internal/config"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configTemplate = `
server:
  port: "8080"
  mode: test
jwt:
  secret: test-secret
auth:
  teacher_password_hash: "$2a$10$abcdefghijklmnopqrstuuJ6tHxaMjnCBUeBXpNxJkoBKaVaD4iWu"
cors:
  allowed_origins:
    - %s
`

func writeConfig(t *testing.T, dir, origin string) {
	t.Helper()
	body := fmt.Sprintf(configTemplate, origin)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
}

func TestWatchConfigReloadsOnWrite(t *testing.T) {
	Debounce = 50 * time.Millisecond
	dir := t.TempDir()
	writeConfig(t, dir, "http://a.example")

	var latest atomic.Value
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- WatchConfig(ctx, filepath.Join(dir, "config.yaml"), func(cfg *config.Config) {
			latest.Store(cfg.CORS.AllowedOrigins)
		})
	}()

	// 给 watcher 启动留出时间
	time.Sleep(100 * time.Millisecond)
	writeConfig(t, dir, "http://b.example")

	assert.Eventually(t, func() bool {
		origins, _ := latest.Load().([]string)
		return len(origins) == 1 && origins[0] == "http://b.example"
	}, 5*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop")
	}
}
