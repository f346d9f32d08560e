package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/informed/core"
)

// TestConcurrentAddAndSuccessors runs writers and readers together; run with -race.
func TestConcurrentAddAndSuccessors(t *testing.T) {
	g := core.NewGraph(core.WithMultiEdges())
	require.NoError(t, g.AddVertex("root"))

	const writers, perWriter = 8, 100
	var wg sync.WaitGroup
	for w := 0; w < writers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := g.AddEdge("root", fmt.Sprintf("v%d_%d", w, i), float64(i))
				require.NoError(t, err)
			}
		}(w)
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perWriter; i++ {
				_, err := g.Successors("root")
				require.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	succ, err := g.Successors("root")
	require.NoError(t, err)
	require.Len(t, succ, writers*perWriter)
	require.Equal(t, writers*perWriter+1, g.VertexCount())
}
