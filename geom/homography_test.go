package geom

import "testing"

func TestHomographyFixture(t *testing.T) {
	src := [4][2]float64{{3.5, 3.5}, {21.5, 3.5}, {18.5, 18.5}, {3.5, 21.5}}
	dst := [4][2]float64{{75, 75}, {255, 75}, {225, 225}, {75, 255}}

	h, err := ComputeHomography(src, dst)
	if err != nil {
		t.Fatalf("ComputeHomography() error = %v", err)
	}

	pts := [][2]float64{{7, 7}, {25, 0}, {25, 25}, {0, 25}}
	want := []Point{{X: 110, Y: 110}, {X: 290, Y: 40}, {X: 290, Y: 290}, {X: 40, Y: 290}}

	for i, pt := range pts {
		got, err := h.Map(pt[0], pt[1])
		if err != nil {
			t.Fatalf("Map(%v) error = %v", pt, err)
		}
		if got != want[i] {
			t.Errorf("Map(%v) = %v, want %v", pt, got, want[i])
		}
	}
}
