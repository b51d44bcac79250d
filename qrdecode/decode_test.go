package qrdecode

import (
	"testing"

	"github.com/qrpix/qrpix/eclevel"
	"github.com/qrpix/qrpix/geom"
	"github.com/qrpix/qrpix/palette"
	"github.com/qrpix/qrpix/qrbuilder"
	"github.com/qrpix/qrpix/qrrender"
)

func TestDetectorRoundTripMono(t *testing.T) {
	const want = "Hello, world!"
	q, err := qrbuilder.New([]byte(want)).ECLevel(eclevel.Low).Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	img := qrrender.RenderScaled(q, 6)

	var det Detector
	result, err := det.Detect(img, 1)
	if err != nil {
		t.Fatalf("Detect error: %v", err)
	}
	if len(result.Symbols) == 0 {
		t.Fatalf("expected at least one symbol")
	}

	var lastErr error
	for _, sym := range result.Symbols {
		meta, got, err := sym.Decode()
		if err != nil {
			lastErr = err
			continue
		}
		if got != want {
			t.Fatalf("decoded %q, want %q", got, want)
		}
		if meta.ECLevel == nil || *meta.ECLevel != eclevel.Low {
			t.Fatalf("metadata ec level = %v, want Low", meta.ECLevel)
		}
		if meta.Palette == nil || *meta.Palette != palette.Mono {
			t.Fatalf("metadata palette = %v, want Mono", meta.Palette)
		}
		return
	}
	t.Fatalf("no symbol decoded successfully, last error: %v", lastErr)
}

func TestDetectorRoundTripPoly(t *testing.T) {
	const want = "RedGreenBlueChannels"
	q, err := qrbuilder.New([]byte(want)).ECLevel(eclevel.Low).Palette(palette.Poly).Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	img := qrrender.RenderScaled(q, 6)

	var det Detector
	result, err := det.Detect(img, palette.Poly.Channels())
	if err != nil {
		t.Fatalf("Detect error: %v", err)
	}
	if len(result.Symbols) == 0 {
		t.Fatalf("expected at least one symbol")
	}

	var lastErr error
	for _, sym := range result.Symbols {
		meta, got, err := sym.Decode()
		if err != nil {
			lastErr = err
			continue
		}
		if got != want {
			t.Fatalf("decoded %q, want %q", got, want)
		}
		if meta.Palette == nil || *meta.Palette != palette.Poly {
			t.Fatalf("metadata palette = %v, want Poly", meta.Palette)
		}
		return
	}
	t.Fatalf("no symbol decoded successfully, last error: %v", lastErr)
}

func TestScoreCornersWithinTolerance(t *testing.T) {
	want := [4]geom.Point{{X: 10, Y: 10}, {X: 100, Y: 10}, {X: 100, Y: 100}, {X: 10, Y: 100}}
	got := [4]geom.Point{{X: 11, Y: 9}, {X: 105, Y: 11}, {X: 96, Y: 108}, {X: 9, Y: 95}}
	if !ScoreCorners(got, want) {
		t.Fatalf("expected corners within 10%% tolerance to match")
	}

	farOff := [4]geom.Point{{X: 30, Y: 10}, {X: 100, Y: 10}, {X: 100, Y: 100}, {X: 10, Y: 100}}
	if ScoreCorners(farOff, want) {
		t.Fatalf("expected corner 200%% off to fail tolerance check")
	}
}
