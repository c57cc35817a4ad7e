package graph

import (
	"testing"
)

func triangleWithTail(t *testing.T, directed bool) *Graph {
	t.Helper()
	g, err := New(4, directed, []Edge{{0, 1}, {1, 2}, {2, 0}, {2, 3}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	return g
}

func TestNew(t *testing.T) {
	g := triangleWithTail(t, false)

	if g.VertexCount() != 4 {
		t.Errorf("VertexCount() = %d, want 4", g.VertexCount())
	}
	if g.EdgeCount() != 4 {
		t.Errorf("EdgeCount() = %d, want 4", g.EdgeCount())
	}
	if g.Directed() {
		t.Error("Directed() = true, want false")
	}
	if e := g.Edge(3); e != (Edge{2, 3}) {
		t.Errorf("Edge(3) = %v, want {2 3}", e)
	}
}

func TestNew_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		n     int
		edges []Edge
	}{
		{"negative vertex count", -1, nil},
		{"endpoint too large", 3, []Edge{{0, 3}}},
		{"negative endpoint", 3, []Edge{{-1, 0}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.n, false, tt.edges)
			if !IsInvalidParameter(err) {
				t.Errorf("New() error = %v, want invalid parameter", err)
			}
		})
	}
}

func TestEdges_ReturnsCopy(t *testing.T) {
	g := triangleWithTail(t, false)

	edges := g.Edges()
	edges[0] = Edge{3, 3}

	if g.Edge(0) != (Edge{0, 1}) {
		t.Error("modifying Edges() result changed the graph")
	}
}

func TestIncident(t *testing.T) {
	g := triangleWithTail(t, true)

	if got := len(g.Incident(2, Out)); got != 2 {
		t.Errorf("out-incident of 2 = %d, want 2", got)
	}
	if got := len(g.Incident(2, In)); got != 1 {
		t.Errorf("in-incident of 2 = %d, want 1", got)
	}
	if got := len(g.Incident(2, All)); got != 3 {
		t.Errorf("all-incident of 2 = %d, want 3", got)
	}

	u := triangleWithTail(t, false)
	if got := len(u.Incident(2, Out)); got != 3 {
		t.Errorf("undirected incident of 2 = %d, want 3", got)
	}
	if other := u.Other(3, 3); other != 2 {
		t.Errorf("Other(3, 3) = %d, want 2", other)
	}
}

func TestDegree(t *testing.T) {
	g, err := New(3, false, []Edge{{0, 1}, {1, 1}})
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	deg, err := g.Degree(All)
	if err != nil {
		t.Fatalf("Degree() error: %v", err)
	}

	// The self-loop counts twice.
	want := []int{1, 3, 0}
	for v := range want {
		if deg[v] != want[v] {
			t.Errorf("degree[%d] = %d, want %d", v, deg[v], want[v])
		}
	}

	if _, err := g.Degree(NeighborMode(9)); !IsInvalidParameter(err) {
		t.Errorf("Degree(9) error = %v, want invalid parameter", err)
	}
}

func TestStrength_NilWeightsEqualsDegree(t *testing.T) {
	for _, directed := range []bool{false, true} {
		g := triangleWithTail(t, directed)
		for _, mode := range []NeighborMode{Out, In, All} {
			deg, err := g.Degree(mode)
			if err != nil {
				t.Fatalf("Degree(%v) error: %v", mode, err)
			}
			str, err := g.Strength(nil, mode)
			if err != nil {
				t.Fatalf("Strength(%v) error: %v", mode, err)
			}
			for v := range deg {
				if str[v] != float64(deg[v]) {
					t.Errorf("directed=%v mode=%v: strength[%d] = %v, degree = %d", directed, mode, v, str[v], deg[v])
				}
			}
		}
	}
}

func TestStrength_Weighted(t *testing.T) {
	g := triangleWithTail(t, false)
	weights := []float64{0.5, 0.25, 0.125, 1}

	str, err := g.Strength(weights, All)
	if err != nil {
		t.Fatalf("Strength() error: %v", err)
	}

	want := []float64{0.625, 0.75, 1.375, 1}
	for v := range want {
		if str[v] != want[v] {
			t.Errorf("strength[%d] = %v, want %v", v, str[v], want[v])
		}
	}

	if _, err := g.Strength(weights[:2], All); !IsInvalidParameter(err) {
		t.Errorf("short weights error = %v, want invalid parameter", err)
	}
}

func TestTotalWeight(t *testing.T) {
	g := triangleWithTail(t, false)

	total, err := g.TotalWeight(nil)
	if err != nil || total != 4 {
		t.Errorf("TotalWeight(nil) = %v, %v; want 4, nil", total, err)
	}

	total, err = g.TotalWeight([]float64{0.5, 0.5, 1, 2})
	if err != nil || total != 4 {
		t.Errorf("TotalWeight() = %v, %v; want 4, nil", total, err)
	}

	if _, err := g.TotalWeight([]float64{1}); !IsInvalidParameter(err) {
		t.Errorf("TotalWeight(short) error = %v, want invalid parameter", err)
	}
}

func TestValidateWeights(t *testing.T) {
	g := triangleWithTail(t, false)

	tests := []struct {
		name    string
		weights []float64
		wantErr bool
	}{
		{"nil", nil, false},
		{"valid", []float64{0, 0.5, 1, 2}, false},
		{"short", []float64{1, 1}, true},
		{"negative", []float64{1, -1, 1, 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := g.ValidateWeights("test", tt.weights)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateWeights() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
