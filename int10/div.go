package int10

// QuoRem returns the quotient a/b and the remainder a%b using long division:
// the digits of a are brought down one at a time, most significant first, and
// each quotient digit is the number of times b can be subtracted from the
// running remainder. QuoRem panics if b is zero.
func (a Int) QuoRem(b Int) (q, r Int) {
	b = b.Norm()
	if b.Zero() {
		panic("int10: division by zero")
	}
	a = a.Norm()
	if a.Cmp(b) < 0 {
		return nil, a.Clone()
	}

	// Quotient digits are produced most significant first.
	digits := make(Int, len(a))
	for i := len(a) - 1; i >= 0; i-- {
		r.shiftIn(a[i])
		var d Word
		for r.Cmp(b) >= 0 {
			r.Sub(r, b)
			d++
		}
		digits[i] = d
	}
	return digits.Norm(), r
}

// Quo returns a/b, truncated. See QuoRem.
func (a Int) Quo(b Int) Int {
	q, _ := a.QuoRem(b)
	return q
}

// shiftIn sets z to z*10 + d.
func (z *Int) shiftIn(d Word) {
	if len(*z) == 0 {
		if d == 0 {
			*z = nil
		} else {
			*z = Int{d}
		}
		return
	}
	s := make(Int, 1, len(*z)+1)
	s[0] = d
	*z = append(s, *z...)
}
