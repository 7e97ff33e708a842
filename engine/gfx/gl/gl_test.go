package glbackend

import (
	"math"
	"testing"
)

func TestTriangleRotate(t *testing.T) {
	tests := []struct {
		name  string
		angle float32
		want  [3][2]float32
	}{
		{"identity", 0, trianglePos},
		{"quarter turn", math.Pi / 2, [3][2]float32{{-0.6, 0}, {0.6, -0.6}, {0.6, 0.6}}},
		{"half turn", math.Pi, [3][2]float32{{0, -0.6}, {0.6, 0.6}, {-0.6, 0.6}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var tri Triangle
			tri.rotate(tt.angle)
			for i, w := range tt.want {
				v := tri.verts[i*5 : i*5+5]
				if !near(v[0], w[0]) || !near(v[1], w[1]) {
					t.Errorf("vertex %d = (%v, %v), want (%v, %v)", i, v[0], v[1], w[0], w[1])
				}
				if c := triangleColor[i]; v[2] != c[0] || v[3] != c[1] || v[4] != c[2] {
					t.Errorf("vertex %d color = %v, want %v", i, v[2:], c)
				}
			}
		})
	}
}

func near(a, b float32) bool { return math.Abs(float64(a-b)) < 1e-5 }
