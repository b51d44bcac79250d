package reedsolomon

import (
	"bytes"
	"errors"
	"testing"

	"github.com/qrpix/qrpix/qrerr"
)

func TestComputeRemainder(t *testing.T) {
	data := []byte(" [\x0bx\xd1r\xdcMC@\xec\x11\xec\x11\xec\x11")
	want := []byte("\xc4\x23\x27\x77\xeb\xd7\xe7\xe2\x5d\x17")
	got := ComputeRemainder(data, ComputeDivisor(10))
	if !bytes.Equal(got, want) {
		t.Fatalf("ComputeRemainder() = %x, want %x", got, want)
	}
}

func TestBlockRectifyWithinCapacity(t *testing.T) {
	data := []byte{32, 91, 11, 45, 89, 123, 77, 44, 56, 99, 202}
	cases := [][]byte{
		{32, 91, 11, 45, 89, 46, 77, 44, 56, 99, 202},
		{32, 91, 11, 45, 89, 46, 77, 44, 56, 99, 249},
	}
	for _, bad := range cases {
		blk := NewBlock(data, 15)
		copy(blk.Data[:11], bad)
		got, err := blk.Rectify()
		if err != nil {
			t.Fatalf("Rectify() error = %v", err)
		}
		if !bytes.Equal(got, data) {
			t.Fatalf("Rectify() = %v, want %v", got, data)
		}
	}
}

func TestBlockRectifyTooManyErrors(t *testing.T) {
	data := []byte{32, 91, 11, 45, 89, 123, 77, 44, 56, 99, 202}
	bad := []byte{138, 91, 161, 45, 243, 46, 231, 44, 146, 99, 202}
	blk := NewBlock(data, 15)
	copy(blk.Data[:11], bad)
	_, err := blk.Rectify()
	if !errors.Is(err, qrerr.ErrTooManyErrors) {
		t.Fatalf("Rectify() error = %v, want ErrTooManyErrors", err)
	}
}

func TestBlockRectifySevenOfFifteen(t *testing.T) {
	data := []byte{10, 20, 30, 40, 50}
	blk := NewBlock(data, 15) // ecc len 10, capacity 5
	bad := append([]byte(nil), blk.Data...)
	for i := 0; i < 7; i++ {
		bad[i] ^= 0xFF
	}
	blk2 := Block{Data: bad, DLen: 5}
	_, err := blk2.Rectify()
	if !errors.Is(err, qrerr.ErrTooManyErrors) {
		t.Fatalf("Rectify() error = %v, want ErrTooManyErrors for 7 corrupted bytes out of 15", err)
	}
}

func TestGF256MulDivRoundTrip(t *testing.T) {
	for a := 1; a < 256; a++ {
		for _, b := range []int{1, 2, 7, 99, 255} {
			prod := GF(a).Mul(GF(b))
			if prod.Div(GF(b)) != GF(a) {
				t.Fatalf("(%d*%d)/%d = %d, want %d", a, b, b, prod.Div(GF(b)), a)
			}
		}
	}
}
