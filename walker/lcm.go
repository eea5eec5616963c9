package walker

// GCD returns the greatest common divisor of |a| and |b|; GCD(0, 0) == 0.
func GCD(a, b int64) int64 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// LCM returns the least common multiple of |a| and |b|; LCM(0, x) == 0.
func LCM(a, b int64) int64 {
	if a == 0 || b == 0 {
		return 0
	}
	l := a / GCD(a, b) * b
	if l < 0 {
		return -l
	}

	return l
}

// LCMAll left-folds LCM over vals starting from 1, so LCMAll() == 1.
func LCMAll(vals ...int64) int64 {
	acc := int64(1)
	for _, v := range vals {
		acc = LCM(acc, v)
	}

	return acc
}
