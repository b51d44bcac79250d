package geom

import (
	"math"

	"github.com/qrpix/qrpix/qrerr"
)

// Homography is an 8-DOF projective map (h33 implicitly 1) from logical
// module space to image space, fit from four point correspondences and
// solved by Gaussian elimination with partial pivoting.
type Homography [8]float64

// ComputeHomography fits the map sending src[i] to dst[i] for i in 0..4.
func ComputeHomography(src, dst [4][2]float64) (Homography, error) {
	var a [8][8]float64
	var b [8]float64

	for i := 0; i < 4; i++ {
		x, y := src[i][0], src[i][1]
		xp, yp := dst[i][0], dst[i][1]

		a[2*i][0] = -x
		a[2*i][1] = -y
		a[2*i][2] = -1
		a[2*i][6] = xp * x
		a[2*i][7] = xp * y
		b[2*i] = -xp

		a[2*i+1][3] = -x
		a[2*i+1][4] = -y
		a[2*i+1][5] = -1
		a[2*i+1][6] = yp * x
		a[2*i+1][7] = yp * y
		b[2*i+1] = -yp
	}

	h, err := solveLinearSystem(a, b)
	if err != nil {
		return Homography{}, err
	}
	return Homography(h), nil
}

func solveLinearSystem(a [8][8]float64, b [8]float64) ([8]float64, error) {
	for i := 0; i < 8; i++ {
		maxRow := i
		maxVal := math.Abs(a[i][i])
		for r := i + 1; r < 8; r++ {
			if math.Abs(a[r][i]) > maxVal {
				maxVal = math.Abs(a[r][i])
				maxRow = r
			}
		}
		if maxRow != i {
			a[i], a[maxRow] = a[maxRow], a[i]
			b[i], b[maxRow] = b[maxRow], b[i]
		}

		if math.Abs(a[i][i]) < 2.220446049250313e-16 {
			return [8]float64{}, qrerr.ErrSingularMatrix
		}

		pivot := a[i][i]
		for c := i; c < 8; c++ {
			a[i][c] /= pivot
		}
		b[i] /= pivot

		for r := i + 1; r < 8; r++ {
			factor := a[r][i]
			for c := i; c < 8; c++ {
				a[r][c] -= factor * a[i][c]
			}
			b[r] -= factor * b[i]
		}
	}

	var x [8]float64
	for r := 7; r >= 0; r-- {
		sum := 0.0
		for c := r + 1; c < 8; c++ {
			sum += a[r][c] * x[c]
		}
		x[r] = (b[r] - sum) / a[r][r]
	}
	return x, nil
}

// Map projects the logical point (x, y) into image space, rounding to
// the nearest integer pixel.
func (h Homography) Map(x, y float64) (Point, error) {
	xp := h[0]*x + h[1]*y + h[2]
	yp := h[3]*x + h[4]*y + h[5]
	w := h[6]*x + h[7]*y + 1.0

	if math.Abs(w) <= 2.220446049250313e-16 {
		return Point{}, qrerr.ErrPointAtInfinity
	}

	rx := math.Round(xp / w)
	ry := math.Round(yp / w)
	return Point{X: int32(rx), Y: int32(ry)}, nil
}
