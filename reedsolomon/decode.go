package reedsolomon

import "github.com/qrpix/qrpix/qrerr"

// Block is one Reed-Solomon codeword block: a data prefix of length
// dlen followed by an error-correction suffix, total length len(Data).
// Capacity tolerates floor((len-dlen)/2) byte errors.
type Block struct {
	Data []byte
	DLen int
}

// NewBlock builds a block from data bytes, computing and appending the
// ECC suffix to reach totalLen.
func NewBlock(data []byte, totalLen int) Block {
	eccLen := totalLen - len(data)
	divisor := ComputeDivisor(uint(eccLen))
	ecc := ComputeRemainder(data, divisor)
	full := make([]byte, 0, totalLen)
	full = append(full, data...)
	full = append(full, ecc...)
	return Block{Data: full, DLen: len(data)}
}

// WithEncoded wraps an already-encoded (data+ecc) buffer as a block.
func WithEncoded(full []byte, dlen int) Block {
	return Block{Data: append([]byte(nil), full...), DLen: dlen}
}

// DataBytes returns the data prefix.
func (b Block) DataBytes() []byte { return b.Data[:b.DLen] }

// ECC returns the error-correction suffix.
func (b Block) ECC() []byte { return b.Data[b.DLen:] }

// Capacity returns the number of byte errors this block can correct.
func (b Block) Capacity() int { return (len(b.Data) - b.DLen) / 2 }

// Rectify attempts to correct errors in place and returns the corrected
// data prefix, or ErrTooManyErrors if correction fails.
func (b *Block) Rectify() ([]byte, error) {
	synd, ok := b.syndromes()
	if ok {
		return b.DataBytes(), nil
	}

	sigma := b.berlekampMassey(synd)
	errLoc := b.chienSearch(sigma)

	eccLen := len(b.Data) - b.DLen
	dsig := make([]GF, eccLen)
	for i := 1; i < eccLen; i += 2 {
		dsig[i-1] = sigma[i]
	}

	omega := b.omega(synd, sigma)
	mag := b.forney(omega, dsig, errLoc)

	for i, g := range mag {
		if g != 0 {
			b.Data[i] = byte(GF(b.Data[i]).Add(g))
		}
	}

	if _, ok := b.syndromes(); ok {
		return b.DataBytes(), nil
	}
	return nil, qrerr.ErrTooManyErrors
}

// syndromes evaluates the received codeword at alpha^0..alpha^(eccLen-1).
// All-zero syndromes mean no errors were detected.
func (b *Block) syndromes() ([]GF, bool) {
	eccLen := len(b.Data) - b.DLen
	synd := make([]GF, eccLen)
	gdata := make([]GF, len(b.Data))
	for i, v := range b.Data {
		gdata[i] = GF(v)
	}
	allZero := true
	for i := 0; i < eccLen; i++ {
		synd[i] = evalPolyRev(gdata, Pow(i))
		if synd[i] != 0 {
			allZero = false
		}
	}
	return synd, allZero
}

// evalPolyRev evaluates a polynomial whose coefficients are given
// highest-degree-first (as the raw codeword is) at x, via Horner's rule
// read in reverse (lowest degree first), matching the Rust reference.
func evalPolyRev(coeffsHighFirst []GF, x GF) GF {
	var res GF
	var xpow GF = 1
	for i := len(coeffsHighFirst) - 1; i >= 0; i-- {
		res = res.Add(coeffsHighFirst[i].Mul(xpow))
		xpow = xpow.Mul(x)
	}
	return res
}

func evalPoly(coeffsLowFirst []GF, x GF) GF {
	var res GF
	var xpow GF = 1
	for _, c := range coeffsLowFirst {
		res = res.Add(c.Mul(xpow))
		xpow = xpow.Mul(x)
	}
	return res
}

// berlekampMassey synthesises the shortest LFSR (error locator
// polynomial sigma) that generates the syndrome sequence.
func (b *Block) berlekampMassey(synd []GF) []GF {
	maxLen := len(b.Data) - b.DLen
	l, m := 0, 1
	bCoef := GF(1)
	cx := make([]GF, maxLen)
	bx := make([]GF, maxLen)
	tx := make([]GF, maxLen)
	cx[0] = 1
	bx[0] = 1
	deg := len(b.Data) - b.DLen

	for n := 0; n < deg; n++ {
		d := synd[n]
		for i := 1; i <= l; i++ {
			d = d.Add(cx[i].Mul(synd[n-i]))
		}

		if d != 0 {
			copy(tx, cx)
			scale := d.Div(bCoef)

			for i := 0; i < maxLen-m; i++ {
				cx[i+m] = cx[i+m].Add(scale.Mul(bx[i]))
			}

			if 2*l <= n {
				copy(bx, tx)
				l = n + 1 - l
				bCoef = d
				m = 1
			} else {
				m++
			}
		} else {
			m++
		}
	}
	return cx
}

// chienSearch finds, for every codeword position, whether that position
// is an error location, by testing sigma(alpha^-i) == 0.
func (b *Block) chienSearch(sigma []GF) []bool {
	deg := len(b.Data) - b.DLen
	n := len(b.Data)
	errLoc := make([]bool, n)
	for i := 0; i < n; i++ {
		pos := n - 1 - i
		errLoc[pos] = evalPoly(sigma[:deg], Pow(255-i)) == 0
	}
	return errLoc
}

// omega computes the error evaluator polynomial Omega = (S * sigma) mod x^t.
func (b *Block) omega(synd, sigma []GF) []GF {
	t := len(b.Data) - b.DLen - 1
	maxLen := len(b.Data) - b.DLen
	omg := make([]GF, maxLen)
	for i := 0; i < t; i++ {
		sy := synd[i+1]
		for j := 0; j < t-i; j++ {
			si := sigma[j]
			omg[i+j] = omg[i+j].Add(sy.Mul(si))
		}
	}
	return omg
}

// forney computes error magnitudes at each located error position.
func (b *Block) forney(omega, dsig []GF, errLoc []bool) []GF {
	n := len(b.Data)
	mag := make([]GF, n)
	for i := 0; i < n; i++ {
		pos := n - 1 - i
		if !errLoc[pos] {
			continue
		}
		xinv := Pow(255 - i)
		omgX := evalPoly(omega, xinv)
		sigX := evalPoly(dsig, xinv)
		mag[pos] = mag[pos].Add(omgX.Div(sigX))
	}
	return mag
}

// RectifyInfo chooses, from validNumbers, the word of minimum Hamming
// distance to info; it succeeds iff that distance is at most errCapacity.
// Used for format (15-bit, capacity 3) and version (18-bit, capacity 3)
// information rectification.
func RectifyInfo(info uint32, validNumbers []uint32, errCapacity uint32) (uint32, error) {
	best := validNumbers[0]
	bestDist := popcount(info ^ best)
	for _, n := range validNumbers[1:] {
		d := popcount(info ^ n)
		if d < bestDist {
			bestDist = d
			best = n
		}
	}
	if bestDist <= errCapacity {
		return best, nil
	}
	return 0, qrerr.ErrInvalidInfo
}

func popcount(x uint32) uint32 {
	var n uint32
	for x != 0 {
		n++
		x &= x - 1
	}
	return n
}
