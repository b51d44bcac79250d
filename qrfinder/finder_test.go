package qrfinder

import (
	"testing"

	"github.com/qrpix/qrpix/eclevel"
	"github.com/qrpix/qrpix/qrbinarize"
	"github.com/qrpix/qrpix/qrbuilder"
	"github.com/qrpix/qrpix/qrrender"
)

func TestLocateFindsThreeFinderStones(t *testing.T) {
	q, err := qrbuilder.New([]byte("Hello, world!")).ECLevel(eclevel.Low).Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	img := qrrender.RenderScaled(q, 4)
	bi := qrbinarize.Binarize(img, 1)

	finders := Locate(bi)
	if len(finders) < 3 {
		t.Fatalf("expected at least 3 finder stones, got %d", len(finders))
	}
}

func TestGroupFindersProducesAGroup(t *testing.T) {
	q, err := qrbuilder.New([]byte("Hello, world!")).ECLevel(eclevel.Low).Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	img := qrrender.RenderScaled(q, 4)
	bi := qrbinarize.Binarize(img, 1)

	finders := Locate(bi)
	groups := GroupFinders(finders)
	if len(groups) == 0 {
		t.Fatalf("expected at least one finder group from %d candidates", len(finders))
	}
	g := groups[0]
	if g.EstimatedWidth < 17 {
		t.Fatalf("estimated width %d below minimum legal grid width", g.EstimatedWidth)
	}
}
