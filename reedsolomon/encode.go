package reedsolomon

// ComputeDivisor returns the generator polynomial of the given degree,
// as coefficients stored high-to-low excluding the leading term (which
// is always 1): degree d produces d coefficients.
//
// The generator is the product (x-a^0)(x-a^1)...(x-a^{d-1}) where a=0x02
// is a generator element of GF(2^8)/0x11D.
func ComputeDivisor(degree uint) []uint8 {
	if degree < 1 || degree > 255 {
		panic("reedsolomon: degree out of range")
	}
	result := make([]uint8, degree-1, degree)
	result = append(result, 1)

	root := uint8(1)
	for i := uint(0); i < degree; i++ {
		for j := uint(0); j < degree; j++ {
			result[j] = Multiply(result[j], root)
			if j+1 < uint(len(result)) {
				result[j] ^= result[j+1]
			}
		}
		root = Multiply(root, 0x02)
	}
	return result
}

// ComputeRemainder performs polynomial long division of data (padded
// with len(divisor) zero bytes) by divisor, returning the len(divisor)
// remainder bytes: the error correction codewords for data.
func ComputeRemainder(data []uint8, divisor []uint8) []uint8 {
	result := make([]uint8, len(divisor))
	for _, b := range data {
		factor := b ^ result[0]
		copy(result, result[1:])
		result[len(result)-1] = 0
		for i, coef := range divisor {
			result[i] ^= Multiply(coef, factor)
		}
	}
	return result
}
