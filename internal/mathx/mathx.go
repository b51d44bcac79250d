package mathx

func AbsInt32(x int32) int32 {
	if x < 0 {
		return -x
	}
	return x
}
