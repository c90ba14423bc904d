package int10

// minKaratsubaThreshold is the smallest threshold MulKaratsuba honors. Below
// it the sum of two halves can be as long as the operand it came from, and the
// recursion would not shrink.
const minKaratsubaThreshold = 4

// MulKaratsuba returns a*b. Operands that both have at most threshold digits
// are multiplied using schoolbook multiplication; for longer operands the
// Karatsuba algorithm is used, recursing until the halves fall under the
// threshold. A threshold <= 0 disables Karatsuba entirely.
func (a Int) MulKaratsuba(b Int, threshold int) Int {
	if threshold <= 0 {
		return a.Mul(b)
	}
	if threshold < minKaratsubaThreshold {
		threshold = minKaratsubaThreshold
	}
	return karatsuba(a.Norm(), b.Norm(), threshold)
}

func karatsuba(a, b Int, threshold int) Int {
	n := max(len(a), len(b))
	if n <= threshold {
		return a.Mul(b)
	}
	if a.Zero() || b.Zero() {
		return nil
	}

	k := n / 2
	aHigh, aLow := a.Split(k)
	bHigh, bLow := b.Split(k)

	p1 := karatsuba(aHigh, bHigh, threshold)
	p2 := karatsuba(aLow, bLow, threshold)

	var aSum, bSum Int
	aSum.Add(aHigh, aLow)
	bSum.Add(bHigh, bLow)
	p3 := karatsuba(aSum, bSum, threshold)

	// mid = p3 - p1 - p2 = aHigh*bLow + aLow*bHigh, never negative.
	var mid Int
	mid.Sub(p3, p1)
	mid.Sub(mid, p2)

	p1.Mul10(2 * k)
	mid.Mul10(k)

	var z Int
	z.Add(p1, mid)
	z.Add(z, p2)
	return z
}
