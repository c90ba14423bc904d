package int10

import (
	"math"
	"math/big"
	"strings"
)

// Int represents an unsigned, base-10, multi-precision integer. Each index is
// a single base-10 digit, in reverse order as written. That is, [0] is the 1s
// digit, [1] 10s, [2] 100s, etc. 0 is represented by nil or an empty slice.
type Int []Word

// Word is a single decimal digit.
type Word uint8

const base = 10

// NewInt makes a new Int with value x.
func NewInt(x uint64) Int {
	if x == 0 {
		return nil
	}
	var arr [20]Word
	i := 0
	for ; x != 0; i++ {
		arr[i] = Word(x % base)
		x /= base
	}
	a := make(Int, i)
	copy(a, arr[:i])
	return a
}

// NewInt64 makes a new Int with value abs(x).
func NewInt64(x int64) Int {
	switch {
	case x >= 0:
		return NewInt(uint64(x))
	case x == math.MinInt64:
		return NewInt(uint64(math.MaxInt64) + 1)
	default:
		return NewInt(uint64(-x))
	}
}

// NewIntBig makes a new Int with value abs(x).
func NewIntBig(x *big.Int) Int {
	s := strings.TrimPrefix(x.String(), "-")
	i, _ := NewIntString(s)
	return i
}

// NewIntString makes a new Int with value s. s must contain only characters
// 0-9. The second return value is false otherwise.
func NewIntString(s string) (Int, bool) {
	s = strings.TrimLeft(s, "0")
	if s == "" {
		return nil, true
	}
	x := make(Int, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, false
		}
		x[len(x)-i-1] = Word(c - '0')
	}
	return x, true
}

// Big returns a as a new big.Int.
func (a Int) Big() *big.Int {
	b, _ := new(big.Int).SetString(a.String(), 10)
	return b
}

// Set sets z to a copy of x and returns z. z never shares storage with x.
func (z *Int) Set(x Int) *Int {
	if len(x) == 0 {
		*z = nil
		return z
	}
	c := make(Int, len(x))
	copy(c, x)
	*z = c
	return z
}

// Clone returns a copy of a that does not share storage with it.
func (a Int) Clone() Int {
	var c Int
	c.Set(a)
	return c
}

// Uint64 returns a as a uint64. If a cannot be represented in a uint64, it is
// undefined.
func (a Int) Uint64() uint64 {
	var x uint64
	var m uint64 = 1
	for _, d := range a {
		x += uint64(d) * m
		m *= base
	}
	return x
}

// Int64 returns a as a int64. If a cannot be represented in a int64, it is
// undefined.
func (a Int) Int64() int64 {
	return int64(a.Uint64())
}

// Len returns the number of digits in a. Zero has no digits.
func (a Int) Len() int {
	return len(a)
}

// Cmp compares the magnitudes of a and b and returns -1, 0 or 1. Both are
// required to not have leading zeros.
func (a Int) Cmp(b Int) int {
	if len(a) > len(b) {
		return 1
	}
	if len(b) > len(a) {
		return -1
	}
	for i := len(a) - 1; i >= 0; i-- {
		if a[i] > b[i] {
			return 1
		}
		if a[i] < b[i] {
			return -1
		}
	}
	return 0
}

// Zero returns whether z is 0.
func (z Int) Zero() bool {
	for _, d := range z {
		if d != 0 {
			return false
		}
	}
	return true
}

// Equal returns whether a == b. a and b are required to not have any leading 0s.
func (a Int) Equal(b Int) bool {
	return a.Cmp(b) == 0
}

// Norm returns a with its leading (most significant) zero digits removed. The
// result shares storage with a.
func (a Int) Norm() Int {
	n := len(a)
	for n > 0 && a[n-1] == 0 {
		n--
	}
	if n == 0 {
		return nil
	}
	return a[:n]
}

func (z Int) String() string {
	if len(z) == 0 {
		return "0"
	}
	b := make([]byte, len(z))
	for i, v := range z {
		b[len(b)-i-1] = byte(v + '0')
	}
	return string(b)
}

// AddCarry sets z to x+y, with carry bit d. That is, x+y = z+d*10^n where n is
// the length of the longer operand.
func (z *Int) AddCarry(x, y Int) (d bool) {
	return z.add(x, y, false)
}

// Add sets z to x+y.
func (z *Int) Add(x, y Int) {
	n := max(len(x), len(y))
	if d := z.AddCarry(x, y); d {
		// add trims leading zeros, which are significant below the carry.
		*z = append(*z, make(Int, n-len(*z))...)
		*z = append(*z, 1)
	}
}

// Sub sets z to x-y. d is the borrow bit; z is only meaningful when d is
// false.
func (z *Int) Sub(x, y Int) (d bool) {
	return z.add(x, y, true)
}

// Diff sets z to the difference of x and y. That is, |x-y|. d is true if
// x-y < 0.
func (z *Int) Diff(x, y Int) (d bool) {
	if x.Cmp(y) < 0 {
		x, y = y, x
		d = true
	}
	z.add(x, y, true)
	return d
}

// add computes x+y or x-y digit by digit. z may alias x or y: digit i of the
// result is written only after digit i of both operands has been read.
func (z *Int) add(x, y Int, sub bool) (d bool) {
	n := max(len(x), len(y))
	var r Int
	if cap(*z) >= n {
		r = (*z)[:0]
	} else {
		r = make(Int, 0, n)
	}
	var carry int16
	lastNonzero := -1
	for i := 0; i < n; i++ {
		var s int16
		if i < len(x) {
			s = int16(x[i])
		}
		if i < len(y) {
			if sub {
				s -= int16(y[i])
			} else {
				s += int16(y[i])
			}
		}
		s += carry
		switch {
		case s < 0:
			s += base
			carry = -1
		case s >= base:
			s -= base
			carry = 1
		default:
			carry = 0
		}
		if s != 0 {
			lastNonzero = i
		}
		r = append(r, Word(s))
	}
	*z = r[:lastNonzero+1]
	if len(*z) == 0 {
		*z = nil
	}
	return carry != 0
}

// Mul returns a*b using schoolbook multiplication.
func (a Int) Mul(b Int) Int {
	if a.Zero() || b.Zero() {
		return nil
	}
	var c Int
	for i, d := range b {
		if d == 0 {
			continue
		}
		t := a.mulWord(d)
		t.Mul10(i)
		c.Add(c, t)
	}
	return c
}

// mulWord returns a*w for a single digit w, propagating the carry across a.
func (a Int) mulWord(w Word) Int {
	if w == 0 || len(a) == 0 {
		return nil
	}
	c := make(Int, 0, len(a)+1)
	var carry Word
	for _, d := range a {
		p := d*w + carry
		c = append(c, p%base)
		carry = p / base
	}
	if carry != 0 {
		c = append(c, carry)
	}
	return c.Norm()
}

// Mul10 multiplies a by 10^n in place and returns a. If n < 0, a is truncated.
// The shifted value never shares storage with the original.
func (a *Int) Mul10(n int) *Int {
	switch {
	case a.Zero():
		*a = nil
	case n > 0:
		s := make(Int, n, n+len(*a))
		*a = append(s, *a...)
	case n <= -len(*a):
		*a = nil
	case n < 0:
		*a = (*a)[-n:].Clone()
	}
	return a
}

// Split sets frac to the lowest n digits of a and integ to the remainder. If
// n >= len(a), frac is set to a and integ is nil. integ and frac are shallow
// copies of a; frac is normalized, so it may be shorter than n.
func (a Int) Split(n int) (integ, frac Int) {
	if n >= len(a) {
		return nil, a
	}
	return a[n:], a[:n].Norm()
}

// High returns the highest digit of a.
func (a Int) High() Word {
	if len(a) == 0 {
		return 0
	}
	return a[len(a)-1]
}

// Low returns the lowest digit of a.
func (a Int) Low() Word {
	if len(a) == 0 {
		return 0
	}
	return a[0]
}
