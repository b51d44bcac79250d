// Package mask implements the eight boolean data-masking functions a QR
// symbol's data modules may be XORed against. Selection by penalty score
// lives in qrmatrix.SelectBestMask.
package mask

// Pattern is a number between 0 and 7 (inclusive) selecting one of the
// eight masking predicates below.
type Pattern uint8

// New creates a mask pattern object from the given number.
//
// Panics if the number is outside the range [0, 7].
func New(m uint8) Pattern {
	if m > 7 {
		panic("mask: value out of range")
	}
	return Pattern(m)
}

// Value returns the value, which is in the range [0, 7].
func (m Pattern) Value() uint8 { return uint8(m) }

// Apply evaluates this mask's predicate at (row, col): true means the
// module's colour should be flipped.
func (m Pattern) Apply(row, col int32) bool {
	switch m {
	case 0:
		return (row+col)%2 == 0
	case 1:
		return row%2 == 0
	case 2:
		return col%3 == 0
	case 3:
		return (row+col)%3 == 0
	case 4:
		return (row/2+col/3)%2 == 0
	case 5:
		return (row*col)%2+(row*col)%3 == 0
	case 6:
		return ((row*col)%2+(row*col)%3)%2 == 0
	case 7:
		return ((row+col)%2+(row*col)%3)%2 == 0
	default:
		panic("mask: value out of range")
	}
}

// All8 returns every mask pattern in ascending order, for a caller that
// wants to try each one and score the result.
func All8() [8]Pattern {
	return [8]Pattern{0, 1, 2, 3, 4, 5, 6, 7}
}
