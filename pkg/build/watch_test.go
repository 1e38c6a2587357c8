package build_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garagekit/motodb/pkg/catalog"
)

func TestWatchRebuildsOnChange(t *testing.T) {
	p, src, out := newFixture(t, map[string]string{
		"a.json": `{"motorcycles":[{"name":"A","description":"da"}]}`,
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- p.Watch(ctx, 50*time.Millisecond)
	}()

	// Initial build.
	require.Eventually(t, func() bool {
		_, err := os.Stat(filepath.Join(out, "index.json"))
		return err == nil
	}, 5*time.Second, 20*time.Millisecond, "initial build never completed")

	// A new source document triggers a rebuild that includes it.
	writeFile(t, src, "b.json", `{"motorcycles":[{"name":"B","description":"db"}]}`)
	require.Eventually(t, func() bool {
		entries, err := catalog.ReadIndex(filepath.Join(out, "index.json"))
		if err != nil {
			return false
		}
		_, ok := entries["B"]
		return ok
	}, 5*time.Second, 20*time.Millisecond, "rebuild never picked up b.json")

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("watch did not stop after cancellation")
	}
}
