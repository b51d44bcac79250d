package qrbinarize

import (
	"testing"

	"github.com/qrpix/qrpix/eclevel"
	"github.com/qrpix/qrpix/qrbuilder"
	"github.com/qrpix/qrpix/qrrender"
)

func TestBinarizeAndFloodFillFindsFinderRegion(t *testing.T) {
	q, err := qrbuilder.New([]byte("Hello, world!")).ECLevel(eclevel.Low).Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	img := qrrender.RenderScaled(q, 4)
	bi := Binarize(img, 1)

	var area Area
	region, ok := bi.FloodFill(0, 0, &area)
	if !ok {
		t.Fatalf("expected quiet-zone flood fill to succeed")
	}
	if region.Color {
		t.Fatalf("quiet zone region should be light, got dark")
	}
	if area.Total == 0 {
		t.Fatalf("expected non-zero quiet-zone area")
	}
}

func TestRegionTableEvictsLRU(t *testing.T) {
	q, err := qrbuilder.New([]byte("Hello, world!")).ECLevel(eclevel.Low).Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	img := qrrender.RenderScaled(q, 2)
	bi := Binarize(img, 1)
	bi.regions = newRegionTable(1)

	r1, ok := bi.FloodFill(0, 0, nil)
	if !ok {
		t.Fatalf("first fill failed")
	}
	if _, ok := bi.RegionByID(r1.ID); !ok {
		t.Fatalf("region %d should still be resident", r1.ID)
	}

	darkX, darkY := -1, -1
	qz := 4 * 2 // 4-module quiet zone at scale 2
	for y := qz; y < qz+8 && darkX < 0; y++ {
		for x := qz; x < qz+8; x++ {
			if bi.At(x, y).Color.IsDark() && bi.At(x, y).Tag == Unvisited {
				darkX, darkY = x, y
				break
			}
		}
	}
	if darkX < 0 {
		t.Skip("no unvisited dark pixel found near finder to seed second fill")
	}
	if _, ok := bi.FloodFill(darkX, darkY, nil); !ok {
		t.Fatalf("second fill failed")
	}
	if _, ok := bi.RegionByID(r1.ID); ok {
		t.Fatalf("region %d should have been evicted", r1.ID)
	}
}
