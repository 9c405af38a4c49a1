// Package builder - ingestion from explicit edge lists.
package builder

import (
	"fmt"

	"github.com/katalvlaran/phlite/core"
)

// FromEdgeList builds a graph from unordered vertex-ID pairs. Duplicate
// pairs collapse (the store keeps graphs simple); an empty endpoint or a
// self-loop entry fails the whole build with ErrBadEdgeList.
// Complexity: O(len(edges)).
func FromEdgeList(edges [][2]string) (*core.Graph, error) {
	g := core.NewGraph()
	for i, e := range edges {
		if err := g.AddEdge(e[0], e[1]); err != nil {
			return nil, fmt.Errorf("%w: entry %d (%q,%q): %v", ErrBadEdgeList, i, e[0], e[1], err)
		}
	}

	return g, nil
}
