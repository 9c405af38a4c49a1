package builder_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/katalvlaran/phlite/builder"
)

// TestDeterministicFamilies checks vertex/edge counts of every fixed family.
func TestDeterministicFamilies(t *testing.T) {
	p, err := builder.Path(4)
	if err != nil {
		t.Fatalf("Path: %v", err)
	}
	if p.VertexCount() != 4 || p.EdgeCount() != 3 {
		t.Errorf("Path(4) = %d nodes/%d edges; want 4/3", p.VertexCount(), p.EdgeCount())
	}

	c, err := builder.Cycle(5)
	if err != nil {
		t.Fatalf("Cycle: %v", err)
	}
	if c.VertexCount() != 5 || c.EdgeCount() != 5 {
		t.Errorf("Cycle(5) = %d/%d; want 5/5", c.VertexCount(), c.EdgeCount())
	}

	k, err := builder.Complete(5)
	if err != nil {
		t.Fatalf("Complete: %v", err)
	}
	if k.VertexCount() != 5 || k.EdgeCount() != 10 {
		t.Errorf("Complete(5) = %d/%d; want 5/10", k.VertexCount(), k.EdgeCount())
	}
	if sum := k.TriangleDegreeSum(); sum != 30 {
		t.Errorf("K5 triangle degree sum = %d; want 30 (3×10 triangles)", sum)
	}

	s, err := builder.Star(6)
	if err != nil {
		t.Fatalf("Star: %v", err)
	}
	if s.VertexCount() != 7 || s.EdgeCount() != 6 {
		t.Errorf("Star(6) = %d/%d; want 7/6", s.VertexCount(), s.EdgeCount())
	}
	if d, _ := s.Degree("0"); d != 6 {
		t.Errorf("Star hub degree = %d; want 6", d)
	}

	w, err := builder.Wheel(5)
	if err != nil {
		t.Fatalf("Wheel: %v", err)
	}
	if w.VertexCount() != 6 || w.EdgeCount() != 10 {
		t.Errorf("Wheel(5) = %d/%d; want 6/10", w.VertexCount(), w.EdgeCount())
	}

	grid, err := builder.Grid(3, 4)
	if err != nil {
		t.Fatalf("Grid: %v", err)
	}
	if grid.VertexCount() != 12 || grid.EdgeCount() != 17 {
		t.Errorf("Grid(3,4) = %d/%d; want 12/17", grid.VertexCount(), grid.EdgeCount())
	}
}

// TestSizeValidation rejects too-small families eagerly.
func TestSizeValidation(t *testing.T) {
	if _, err := builder.Path(0); !errors.Is(err, builder.ErrTooFewVertices) {
		t.Errorf("Path(0): want ErrTooFewVertices, got %v", err)
	}
	if _, err := builder.Cycle(2); !errors.Is(err, builder.ErrTooFewVertices) {
		t.Errorf("Cycle(2): want ErrTooFewVertices, got %v", err)
	}
	if _, err := builder.Wheel(2); !errors.Is(err, builder.ErrTooFewVertices) {
		t.Errorf("Wheel(2): want ErrTooFewVertices, got %v", err)
	}
	if _, err := builder.Grid(0, 3); !errors.Is(err, builder.ErrTooFewVertices) {
		t.Errorf("Grid(0,3): want ErrTooFewVertices, got %v", err)
	}
}

// TestRandomSparse covers probability extremes, validation and seed
// determinism.
func TestRandomSparse(t *testing.T) {
	empty, err := builder.RandomSparse(10, 0)
	if err != nil {
		t.Fatal(err)
	}
	if empty.EdgeCount() != 0 {
		t.Errorf("p=0 must yield no edges, got %d", empty.EdgeCount())
	}

	full, err := builder.RandomSparse(10, 1)
	if err != nil {
		t.Fatal(err)
	}
	if full.EdgeCount() != 45 {
		t.Errorf("p=1 must yield K10's 45 edges, got %d", full.EdgeCount())
	}

	if _, err = builder.RandomSparse(10, 1.5); !errors.Is(err, builder.ErrInvalidProbability) {
		t.Errorf("p=1.5: want ErrInvalidProbability, got %v", err)
	}

	a, err := builder.RandomSparse(30, 0.3, builder.WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	b, err := builder.RandomSparse(30, 0.3, builder.WithSeed(7))
	if err != nil {
		t.Fatal(err)
	}
	if a.EdgeCount() != b.EdgeCount() {
		t.Fatalf("same seed must reproduce the same graph: %d vs %d edges", a.EdgeCount(), b.EdgeCount())
	}
	for _, id := range a.Vertices() {
		na, _ := a.Neighbors(id)
		nb, _ := b.Neighbors(id)
		if fmt.Sprint(na) != fmt.Sprint(nb) {
			t.Fatalf("same seed, different adjacency at %s: %v vs %v", id, na, nb)
		}
	}
}

// TestRandomRegular checks regularity, parameter validation and seed
// determinism.
func TestRandomRegular(t *testing.T) {
	g, err := builder.RandomRegular(12, 3, builder.WithSeed(42))
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 12 {
		t.Fatalf("want 12 vertices, got %d", g.VertexCount())
	}
	for _, id := range g.Vertices() {
		if d, _ := g.Degree(id); d != 3 {
			t.Errorf("vertex %s degree = %d; want 3", id, d)
		}
	}

	if _, err = builder.RandomRegular(5, 3); !errors.Is(err, builder.ErrBadDegree) {
		t.Errorf("odd n·d: want ErrBadDegree, got %v", err)
	}
	if _, err = builder.RandomRegular(4, 4); !errors.Is(err, builder.ErrBadDegree) {
		t.Errorf("d ≥ n: want ErrBadDegree, got %v", err)
	}

	a, _ := builder.RandomRegular(12, 3, builder.WithSeed(42))
	if a.EdgeCount() != g.EdgeCount() {
		t.Errorf("same seed must reproduce the same pairing")
	}
}

// TestFromEdgeList covers ingestion plus the malformed-entry error.
func TestFromEdgeList(t *testing.T) {
	g, err := builder.FromEdgeList([][2]string{{"a", "b"}, {"b", "c"}, {"a", "b"}})
	if err != nil {
		t.Fatal(err)
	}
	if g.VertexCount() != 3 || g.EdgeCount() != 2 {
		t.Errorf("got %d/%d; want 3 vertices, 2 edges (duplicate collapses)", g.VertexCount(), g.EdgeCount())
	}

	if _, err = builder.FromEdgeList([][2]string{{"a", "a"}}); !errors.Is(err, builder.ErrBadEdgeList) {
		t.Errorf("self-loop entry: want ErrBadEdgeList, got %v", err)
	}
	if _, err = builder.FromEdgeList([][2]string{{"", "b"}}); !errors.Is(err, builder.ErrBadEdgeList) {
		t.Errorf("empty endpoint: want ErrBadEdgeList, got %v", err)
	}
}

// TestWithIDScheme labels vertices through a custom scheme.
func TestWithIDScheme(t *testing.T) {
	g, err := builder.Path(3, builder.WithIDScheme(func(i int) string { return fmt.Sprintf("n%02d", i) }))
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"n00", "n01", "n02"}
	got := g.Vertices()
	if fmt.Sprint(got) != fmt.Sprint(want) {
		t.Errorf("Vertices = %v; want %v", got, want)
	}
}
