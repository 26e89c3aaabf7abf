package idgen

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSonyflake_UniqueAcrossGoroutines(t *testing.T) {
	g, err := NewSonyflake(3)
	require.NoError(t, err)

	const workers, perWorker = 8, 200
	var (
		mu   sync.Mutex
		seen = make(map[string]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id, err := g.NextID()
				assert.NoError(t, err)
				mu.Lock()
				seen[id] = struct{}{}
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Len(t, seen, workers*perWorker)
}

func TestSonyflake_IDsAreDecimalStrings(t *testing.T) {
	g, err := NewSonyflake(0)
	require.NoError(t, err)

	id, err := g.NextID()
	require.NoError(t, err)
	require.NotEmpty(t, id)
	for _, r := range id {
		assert.True(t, r >= '0' && r <= '9', "unexpected rune %q in %s", r, id)
	}
}
