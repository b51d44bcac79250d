package qrsegment

import (
	"strings"
	"testing"

	"github.com/qrpix/qrpix/eclevel"
	"github.com/qrpix/qrpix/version"
)

func modes(segs []Segment) []Mode {
	out := make([]Mode, len(segs))
	for i, s := range segs {
		out[i] = s.Mode
	}
	return out
}

func lens(segs []Segment) []int {
	out := make([]int, len(segs))
	for i, s := range segs {
		out[i] = len(s.Data)
	}
	return out
}

func TestOptimalSegmentationSingleByte(t *testing.T) {
	segs := ComputeOptimalSegments([]byte("aaa1111A"), version.New(1))
	if len(segs) != 1 || segs[0].Mode != ModeByte {
		t.Fatalf("got modes=%v lens=%v, want single Byte segment", modes(segs), lens(segs))
	}
}

func TestOptimalSegmentationByteThenAlphanumeric(t *testing.T) {
	segs := ComputeOptimalSegments([]byte("aaa1111AA"), version.New(1))
	wantModes := []Mode{ModeByte, ModeAlphanumeric}
	wantLens := []int{3, 6}
	if !equalModes(modes(segs), wantModes) || !equalInts(lens(segs), wantLens) {
		t.Fatalf("got modes=%v lens=%v, want %v %v", modes(segs), lens(segs), wantModes, wantLens)
	}
}

func TestOptimalSegmentationByteNumericAlphanumeric(t *testing.T) {
	segs := ComputeOptimalSegments([]byte("aaa1111111AA"), version.New(1))
	wantModes := []Mode{ModeByte, ModeNumeric, ModeAlphanumeric}
	wantLens := []int{3, 7, 2}
	if !equalModes(modes(segs), wantModes) || !equalInts(lens(segs), wantLens) {
		t.Fatalf("got modes=%v lens=%v, want %v %v", modes(segs), lens(segs), wantModes, wantLens)
	}
}

func TestVersionSelection(t *testing.T) {
	cap1 := func(v version.Version) uint { return v.DataBitCapacity(eclevel.Low, 1) }

	cases := []struct {
		data    string
		wantVer uint8
	}{
		{"aaaaa11111AAA", 1},
		{strings.Repeat("A11111111111111", 2), 2},
		{strings.Repeat("A11111111111111", 4), 3},
		{strings.Repeat("a", 2953), 40},
	}
	for _, c := range cases {
		ver, _, ok := FindOptimalVersionAndSegments([]byte(c.data), version.MaxNormal, cap1)
		if !ok {
			t.Fatalf("data len %d: no version fits", len(c.data))
		}
		if ver.Value() != c.wantVer {
			t.Errorf("data len %d: version = %d, want %d", len(c.data), ver.Value(), c.wantVer)
		}
	}

	_, _, ok := FindOptimalVersionAndSegments([]byte(strings.Repeat("a", 2954)), version.MaxNormal, cap1)
	if ok {
		t.Errorf("2954 'a's: expected no version to fit, but one did")
	}
}

func equalModes(a, b []Mode) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestWriteReadPayloadRoundTrip(t *testing.T) {
	ver := version.New(4)
	for _, input := range []string{"Hello, world!", "12345", "ABC123 XYZ", "aB3!"} {
		segs := ComputeOptimalSegments([]byte(input), ver)
		var buf BitBuffer
		WritePayload(&buf, segs, ver)
		PushTerminatorAndPad(&buf, ver.DataBitCapacity(eclevel.Low, 1))

		reader := NewBitBufferFromBytes(buf.Bytes())
		got, err := ReadPayload(reader, ver)
		if err != nil {
			t.Fatalf("ReadPayload(%q) error = %v", input, err)
		}
		if got != input {
			t.Errorf("round trip %q got %q", input, got)
		}
	}
}
