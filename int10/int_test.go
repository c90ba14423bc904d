package int10

import (
	"fmt"
	"math"
	"math/big"
	"strings"
	"testing"
)

// V fails t if z has an out-of-range digit or a leading zero.
func (z Int) V(t *testing.T) {
	t.Helper()
	for _, d := range z {
		if d >= base {
			t.Fatalf("bad digit: %d", d)
		}
	}
	if len(z) > 0 && z[len(z)-1] == 0 {
		t.Fatalf("leading zero: %v", []Word(z))
	}
}

func mustInt(t *testing.T, s string) Int {
	t.Helper()
	i, ok := NewIntString(s)
	if !ok {
		t.Fatalf("bad int: %q", s)
	}
	return i
}

func TestNewInt(t *testing.T) {
	tests := []uint64{0, 1, 9, 10, 100, 234567, math.MaxUint64}
	for _, tc := range tests {
		t.Run(fmt.Sprint(tc), func(t *testing.T) {
			a := NewInt(tc)
			a.V(t)
			if i := a.Uint64(); i != tc {
				t.Fatalf("got %d (%v), expected %v", i, a, tc)
			}
			if got, s := a.String(), fmt.Sprint(tc); s != got {
				t.Fatalf("got %s, expected %s", got, s)
			}
		})
	}
}

func TestNewInt64(t *testing.T) {
	tests := map[int64]string{
		0:             "0",
		-1:            "1",
		1:             "1",
		math.MaxInt64: "9223372036854775807",
		math.MinInt64: "9223372036854775808",
	}
	for tc, expect := range tests {
		t.Run(fmt.Sprint(tc), func(t *testing.T) {
			a := NewInt64(tc)
			a.V(t)
			if s := a.String(); s != expect {
				t.Fatalf("got %s, expected %s", s, expect)
			}
		})
	}
}

func TestNewIntBig(t *testing.T) {
	tests := map[string]string{
		"0":  "0",
		"-0": "0",
		"-1": "1",
		"1234145435656745634324524536456745634": "1234145435656745634324524536456745634",
	}
	for tc, expect := range tests {
		t.Run(tc, func(t *testing.T) {
			b, ok := new(big.Int).SetString(tc, 10)
			if !ok {
				t.Fatal("bad string")
			}
			a := NewIntBig(b)
			a.V(t)
			if s := a.String(); s != expect {
				t.Fatalf("got %s, expected %s", s, expect)
			}
			if a.Big().CmpAbs(b) != 0 {
				t.Fatalf("Big: got %s, expected %s", a.Big(), expect)
			}
		})
	}
}

func TestNewIntString(t *testing.T) {
	tests := []struct {
		s      string
		expect string
		err    bool
	}{
		{s: "0", expect: "0"},
		{s: "000", expect: "0"},
		{s: "0012", expect: "12"},
		{s: "349857598452734538945230", expect: "349857598452734538945230"},
		{s: "-1", err: true},
		{s: "e", err: true},
	}
	for _, tc := range tests {
		t.Run(tc.s, func(t *testing.T) {
			i, ok := NewIntString(tc.s)
			if !ok {
				if !tc.err {
					t.Fatal("unexpected error")
				}
				return
			}
			if tc.err {
				t.Fatal("expected error")
			}
			i.V(t)
			if s := i.String(); s != tc.expect {
				t.Fatalf("got %s, expected %s", s, tc.expect)
			}
		})
	}
}

func TestIntAddCarry(t *testing.T) {
	tests := []struct {
		a, b, c uint64
		d       bool
	}{
		{a: 0, b: 0, c: 0},
		{a: 1, c: 1},
		{a: 349482367, b: 23442, c: 349505809},
		{a: 321, b: 148247592, c: 148247913},
		{a: 9, b: 9, c: 8, d: true},
		{a: 9999, b: 1, c: 0, d: true},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d+%d", tc.a, tc.b), func(t *testing.T) {
			a := NewInt(tc.a)
			b := NewInt(tc.b)
			d := a.AddCarry(a, b)
			a.V(t)
			if c := NewInt(tc.c); !a.Equal(c) {
				t.Fatalf("%s != %s", a, c)
			}
			if d != tc.d {
				t.Fatalf("%t != %t", d, tc.d)
			}
		})
	}
}

func TestIntAdd(t *testing.T) {
	tests := []struct {
		a, b, c uint64
	}{
		{a: 0, b: 0, c: 0},
		{a: 10, b: 1, c: 11},
		{a: 9, b: 9, c: 18},
		{a: 1000, b: 9000, c: 10000},
		{a: 9999, b: 1, c: 10000},
		{a: 1, b: 99999, c: 100000},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d+%d", tc.a, tc.b), func(t *testing.T) {
			var z Int
			z.Add(NewInt(tc.a), NewInt(tc.b))
			z.V(t)
			if c := NewInt(tc.c); !z.Equal(c) {
				t.Fatalf("got %s, expected %s", z, c)
			}
		})
	}
}

func TestIntSub(t *testing.T) {
	tests := []struct {
		a, b, c uint64
		d       bool
	}{
		{a: 0, b: 0, c: 0},
		{a: 1, c: 1},
		{a: 349482367, b: 23442, c: 349458925},
		{a: 321, b: 148247592, c: 851752729, d: true},
		{a: 9, b: 9, c: 0},
		{a: 20, b: 32, c: 88, d: true},
		{a: 0, b: 1, c: 9, d: true},
		{a: 1000, b: 1, c: 999},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d-%d", tc.a, tc.b), func(t *testing.T) {
			var z Int
			d := z.Sub(NewInt(tc.a), NewInt(tc.b))
			z.V(t)
			if c := NewInt(tc.c); !z.Equal(c) {
				t.Fatalf("%s != %s", z, c)
			}
			if d != tc.d {
				t.Fatalf("%t != %t", d, tc.d)
			}
		})
	}
}

func TestIntDiff(t *testing.T) {
	tests := []struct {
		a, b, c uint64
		neg     bool
	}{
		{a: 0, b: 0, c: 0},
		{a: 5, b: 3, c: 2},
		{a: 3, b: 5, c: 2, neg: true},
		{a: 321, b: 148247592, c: 148247271, neg: true},
		{a: 1000, b: 999, c: 1},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("|%d-%d|", tc.a, tc.b), func(t *testing.T) {
			var z Int
			neg := z.Diff(NewInt(tc.a), NewInt(tc.b))
			z.V(t)
			if c := NewInt(tc.c); !z.Equal(c) {
				t.Fatalf("%s != %s", z, c)
			}
			if neg != tc.neg {
				t.Fatalf("%t != %t", neg, tc.neg)
			}
		})
	}
}

func TestIntMul(t *testing.T) {
	tests := []struct {
		a, b, c uint64
	}{
		{a: 0, b: 0, c: 0},
		{a: 1, b: 0, c: 0},
		{a: 10, b: 1, c: 10},
		{a: 10, b: 100, c: 1000},
		{a: 9, b: 9, c: 81},
		{a: 20, b: 32, c: 640},
		{a: 46820, b: 56282, c: 2635123240},
		{a: 99999, b: 99999, c: 9999800001},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d*%d", tc.a, tc.b), func(t *testing.T) {
			a := NewInt(tc.a)
			b := NewInt(tc.b)
			c := NewInt(tc.c)
			res := a.Mul(b)
			res.V(t)
			if !res.Equal(c) {
				t.Fatalf("%s != %s", res, c)
			}
			for _, threshold := range []int{1, 4, 50} {
				if k := a.MulKaratsuba(b, threshold); !k.Equal(c) {
					t.Fatalf("threshold %d: %s != %s", threshold, k, c)
				}
			}
		})
	}
}

func TestIntMulKaratsuba(t *testing.T) {
	nines := func(n int) string { return strings.Repeat("9", n) }
	tests := []struct {
		a, b string
	}{
		{a: nines(51), b: nines(51)},
		{a: nines(120), b: "7"},
		{a: "1" + strings.Repeat("0", 99) + "1", b: nines(75)},
		{a: "31415926535897932384626433832795028841971693993751058209749445923078164062862", b: "27182818284590452353602874713526624977572470936999595749669676277240766303535"},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d*%d digits", len(tc.a), len(tc.b)), func(t *testing.T) {
			a := mustInt(t, tc.a)
			b := mustInt(t, tc.b)
			want := new(big.Int).Mul(a.Big(), b.Big()).String()
			for _, threshold := range []int{0, 4, 10, 50} {
				got := a.MulKaratsuba(b, threshold)
				got.V(t)
				if got.String() != want {
					t.Fatalf("threshold %d: got %s, want %s", threshold, got, want)
				}
			}
			if a.String() != tc.a || b.String() != tc.b {
				t.Fatal("operands were modified")
			}
		})
	}
}

func TestIntQuoRem(t *testing.T) {
	tests := []struct {
		a, b, q, r uint64
	}{
		{a: 0, b: 1, q: 0, r: 0},
		{a: 7, b: 7, q: 1, r: 0},
		{a: 3, b: 7, q: 0, r: 3},
		{a: 100, b: 7, q: 14, r: 2},
		{a: 999, b: 7, q: 142, r: 5},
		{a: 1000000, b: 1000, q: 1000, r: 0},
		{a: 1234567890123, b: 987654, q: 1250000, r: 390123},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d/%d", tc.a, tc.b), func(t *testing.T) {
			a := NewInt(tc.a)
			q, r := a.QuoRem(NewInt(tc.b))
			q.V(t)
			r.V(t)
			if q.Uint64() != tc.q {
				t.Fatalf("quotient: got %s, expected %d", q, tc.q)
			}
			if r.Uint64() != tc.r {
				t.Fatalf("remainder: got %s, expected %d", r, tc.r)
			}
			if a.Uint64() != tc.a {
				t.Fatal("dividend was modified")
			}
		})
	}
}

func TestIntQuoRemZero(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	NewInt(1).QuoRem(nil)
}

func TestIntMul10(t *testing.T) {
	tests := []struct {
		a, c uint64
		b    int
	}{
		{a: 0, b: 0, c: 0},
		{a: 0, b: 1, c: 0},
		{a: 1, b: 1, c: 10},
		{a: 10, b: 10, c: 100000000000},
		{a: 1234, b: -1, c: 123},
		{a: 1234, b: -3, c: 1},
		{a: 1234, b: 0, c: 1234},
		{a: 1234, b: -4, c: 0},
		{a: 1234, b: -5, c: 0},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d*10^%d", tc.a, tc.b), func(t *testing.T) {
			a := NewInt(tc.a)
			orig := a
			a.Mul10(tc.b)
			a.V(t)
			if c := NewInt(tc.c); !a.Equal(c) {
				t.Fatalf("got %s, expected %s", a, c)
			}
			if tc.b != 0 && orig.Uint64() != tc.a {
				t.Fatal("shift wrote into the original storage")
			}
		})
	}
}

func TestIntCmp(t *testing.T) {
	tests := []struct {
		a, b uint64
		c    int
	}{
		{a: 0, b: 0, c: 0},
		{a: 1, b: 0, c: 1},
		{a: 1, b: 1, c: 0},
		{a: 1, b: 10, c: -1},
		{a: 10, b: 1, c: 1},
		{a: 2, b: 1, c: 1},
		{a: 129, b: 131, c: -1},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d, %d", tc.a, tc.b), func(t *testing.T) {
			if c := NewInt(tc.a).Cmp(NewInt(tc.b)); tc.c != c {
				t.Fatalf("got %d, expected %d", c, tc.c)
			}
		})
	}
}

func TestIntSplit(t *testing.T) {
	tests := []struct {
		a, integ, frac uint64
		n              int
	}{
		{a: 123456, n: 2, integ: 1234, frac: 56},
		{a: 123456, n: 10, frac: 123456},
		{a: 1000001, n: 3, integ: 1000, frac: 1},
		{a: 0, n: 1},
		{a: 1, n: 0, integ: 1},
		{a: 1, n: 1, frac: 1},
	}
	for _, tc := range tests {
		t.Run(fmt.Sprintf("%d, %d", tc.a, tc.n), func(t *testing.T) {
			integ, frac := NewInt(tc.a).Split(tc.n)
			integ.V(t)
			frac.V(t)
			if integ.Uint64() != tc.integ {
				t.Fatalf("got %s, expected %d", integ, tc.integ)
			}
			if frac.Uint64() != tc.frac {
				t.Fatalf("got %s, expected %d", frac, tc.frac)
			}
		})
	}
}

func TestIntSet(t *testing.T) {
	a := NewInt(12345)
	var b Int
	b.Set(a)
	b[0] = 9
	if a.Uint64() != 12345 {
		t.Fatalf("Set shares storage: %s", a)
	}
	if c := a.Clone(); &c[0] == &a[0] {
		t.Fatal("Clone shares storage")
	}
}
