package gui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ycsun666/MTH9815-Final/internal/history"
	"github.com/ycsun666/MTH9815-Final/internal/model"
)

func testPrice(mid float64) model.Price {
	return model.Price{
		Product: model.Bond{CUSIP: "9128283H1"},
		Mid:     mid,
		Spread:  2.0 / 256,
	}
}

func TestThrottleDropsRapidUpdates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gui.txt")
	out, err := history.OpenAppender(path)
	require.NoError(t, err)

	svc := New(out, 300*time.Millisecond)
	clock := time.Date(2026, 8, 31, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	svc.PublishThrottledPrice(testPrice(99.5))

	// Within the window: dropped, not queued.
	clock = clock.Add(100 * time.Millisecond)
	svc.PublishThrottledPrice(testPrice(99.75))

	// Past the window: published.
	clock = clock.Add(301 * time.Millisecond)
	svc.PublishThrottledPrice(testPrice(100.0))

	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "99-160")
	assert.Contains(t, lines[1], "100-000")

	stored, ok := svc.GetData("9128283H1")
	require.True(t, ok)
	assert.Equal(t, 100.0, stored.Mid)
}

func TestFirstPriceAlwaysPublishes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gui.txt")
	out, err := history.OpenAppender(path)
	require.NoError(t, err)

	svc := New(out, DefaultThrottle)
	svc.PublishThrottledPrice(testPrice(99.5))
	require.NoError(t, out.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "9128283H1,99-160")
}
