package qrbuilder

import (
	"testing"

	"github.com/qrpix/qrpix/eclevel"
	"github.com/qrpix/qrpix/mask"
	"github.com/qrpix/qrpix/palette"
	"github.com/qrpix/qrpix/qrerr"
	"github.com/qrpix/qrpix/version"
)

func TestBuildEmptyDataRejected(t *testing.T) {
	_, err := New(nil).Build()
	if err != qrerr.ErrEmptyData {
		t.Fatalf("got %v, want ErrEmptyData", err)
	}
}

func TestBuildHelloWorldMono(t *testing.T) {
	q, err := New([]byte("Hello, world!")).ECLevel(eclevel.Low).Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if q.Palette != palette.Mono {
		t.Fatalf("palette = %v, want Mono", q.Palette)
	}
	if q.Ver.Value() != 1 {
		t.Fatalf("version = %d, want 1", q.Ver.Value())
	}
}

func TestBuildRejectsMicroVersion(t *testing.T) {
	_, err := New([]byte("hi")).Version(version.NewMicro(1)).Build()
	if err != qrerr.ErrMicroQRUnsupported {
		t.Fatalf("got %v, want ErrMicroQRUnsupported", err)
	}
}

func TestBuildExplicitVersionOverflow(t *testing.T) {
	big := make([]byte, 3000)
	for i := range big {
		big[i] = 'a'
	}
	_, err := New(big).Version(version.New(1)).Build()
	if err != qrerr.ErrCapacityOverflow {
		t.Fatalf("got %v, want ErrCapacityOverflow", err)
	}
}

func TestBuildPolyPalette(t *testing.T) {
	q, err := New([]byte("Hello, world!\xf0\x9f\x8c\x8e")).
		ECLevel(eclevel.Low).
		Palette(palette.Poly).
		Version(version.New(2)).
		Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if q.Palette != palette.Poly {
		t.Fatalf("palette = %v, want Poly", q.Palette)
	}
}

func TestBuildPinnedMask(t *testing.T) {
	q, err := New([]byte("12345")).Mask(mask.New(5)).Build()
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	if q.Mask.Value() != 5 {
		t.Fatalf("mask = %d, want 5", q.Mask.Value())
	}
}
