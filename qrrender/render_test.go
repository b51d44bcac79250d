package qrrender

import (
	"image/color"
	"testing"

	"github.com/qrpix/qrpix/eclevel"
	"github.com/qrpix/qrpix/qrbuilder"
)

func TestRenderMonoHasQuietZoneBorder(t *testing.T) {
	q, err := qrbuilder.New([]byte("Hello, world!")).ECLevel(eclevel.Low).Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	img := Render(q)
	b := img.Bounds()
	wantSide := int(q.Width) + 2*quietZoneNormal
	if b.Dx() != wantSide || b.Dy() != wantSide {
		t.Fatalf("image size %dx%d, want %dx%d", b.Dx(), b.Dy(), wantSide, wantSide)
	}
	corner := img.At(0, 0)
	r, g, bl, _ := corner.RGBA()
	if r != 0xffff || g != 0xffff || bl != 0xffff {
		t.Fatalf("corner pixel = %v, want white", corner)
	}
}

func TestRenderScaledUpsizesByFactor(t *testing.T) {
	q, err := qrbuilder.New([]byte("12345")).ECLevel(eclevel.Low).Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	base := Render(q)
	scaled := RenderScaled(q, 4)
	bb, sb := base.Bounds(), scaled.Bounds()
	if sb.Dx() != bb.Dx()*4 || sb.Dy() != bb.Dy()*4 {
		t.Fatalf("scaled size %dx%d, want %dx%d", sb.Dx(), sb.Dy(), bb.Dx()*4, bb.Dy()*4)
	}
}

func TestRenderProducesDarkModules(t *testing.T) {
	q, err := qrbuilder.New([]byte("Hello, world!")).
		ECLevel(eclevel.Low).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	img := Render(q)
	found := false
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y && !found; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if c, ok := img.At(x, y).(color.Gray); ok && c.Y == 0 {
				found = true
				break
			}
		}
	}
	if !found {
		t.Fatalf("expected at least one dark module in rendered image")
	}
}
