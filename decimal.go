// Copyright 2016 The Cockroach Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or
// implied. See the License for the specific language governing
// permissions and limitations under the License.

package bignum

import (
	"fmt"
	"math"
	"strings"

	"github.com/mpcalc/bignum/int10"
	"github.com/pkg/errors"
)

// Decimal is an arbitrary-precision decimal. Its value is:
//
//	(-1)^Negative * Coeff * 10^-Scale
//
// Coeff holds the digits least significant first. A Decimal returned by this
// package is canonical: Coeff has no leading zeros, a fractional part has no
// trailing zeros, Scale is not negative, and zero is represented by a nil
// Coeff, a false Negative and a zero Scale.
//
// The zero value is 0 and is ready to use.
type Decimal struct {
	Coeff    int10.Int
	Negative bool
	Scale    int32
}

var (
	// ErrDivisionByZero is returned by Quo and Rem for a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidExponent is returned by Pow for a negative exponent.
	ErrInvalidExponent = errors.New("negative exponent not supported")
	// ErrOverflow is returned by Int64 when the value does not fit.
	ErrOverflow = errors.New("value out of range")
	// ErrExponentOutOfRange is returned when decoding a value whose positive
	// exponent exceeds MaxExponent.
	ErrExponentOutOfRange = errors.New("exponent out of range")
	// ErrScaleOutOfRange is returned when the scale of a product or quotient
	// does not fit in an int32, or when a quotient would need more than
	// MaxExponent trailing zeros.
	ErrScaleOutOfRange = errors.New("scale out of range")
)

// MaxExponent is the largest power of ten accepted when decoding scientific
// notation or composed parts, and the largest left shift a quotient may need.
const MaxExponent = 100000

// resultScale returns s as the scale of an arithmetic result.
func resultScale(s int64) (int32, error) {
	if s > math.MaxInt32 || s < -MaxExponent {
		return 0, ErrScaleOutOfRange
	}
	return int32(s), nil
}

// New creates a new decimal with the given coefficient and scale. For
// example, New(-1234, 2) is -12.34. A negative scale multiplies by a power of
// ten.
func New(coeff int64, scale int32) *Decimal {
	return NewFromInt10(int10.NewInt64(coeff), coeff < 0, scale)
}

// NewFromInt10 creates a new decimal from a magnitude, a sign and a scale.
// The magnitude is copied.
func NewFromInt10(coeff int10.Int, negative bool, scale int32) *Decimal {
	d := &Decimal{
		Coeff:    coeff.Clone(),
		Negative: negative,
		Scale:    scale,
	}
	return d.reduce()
}

// NewFromString creates a new decimal from s. See SetString.
func NewFromString(s string) *Decimal {
	return new(Decimal).SetString(s)
}

// SetString sets d to the value of s and returns d. s is scanned left to
// right: a '-' makes the value negative, a '.' starts the fractional part,
// and digits are collected. Every other character is ignored, and a string
// without digits is 0. SetString never fails; syntax checking belongs to the
// caller.
func (d *Decimal) SetString(s string) *Decimal {
	var (
		neg      bool
		fraction bool
		scale    int32
		digits   = make([]byte, 0, len(s))
	)
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c == '-':
			neg = true
		case c == '.':
			fraction = true
		case c >= '0' && c <= '9':
			digits = append(digits, c)
			if fraction {
				scale++
			}
		}
	}
	coeff, _ := int10.NewIntString(string(digits))
	d.Coeff = coeff
	d.Negative = neg
	d.Scale = scale
	d.reduce()
	return d
}

// SetInt64 sets d to x and returns d.
func (d *Decimal) SetInt64(x int64) *Decimal {
	d.Coeff = int10.NewInt64(x)
	d.Negative = x < 0
	d.Scale = 0
	return d
}

// Set sets d's value to x and returns d. d does not share storage with x.
func (d *Decimal) Set(x *Decimal) *Decimal {
	if d == x {
		return d
	}
	d.Coeff.Set(x.Coeff)
	d.Negative = x.Negative
	d.Scale = x.Scale
	return d
}

// reduce puts d in canonical form and returns d.
func (d *Decimal) reduce() *Decimal {
	d.Coeff = d.Coeff.Norm()
	if d.Scale < 0 {
		d.Coeff.Mul10(-int(d.Scale))
		d.Scale = 0
	}
	n := 0
	for n < int(d.Scale) && n < len(d.Coeff) && d.Coeff[n] == 0 {
		n++
	}
	if n > 0 {
		d.Coeff = d.Coeff[n:]
		d.Scale -= int32(n)
	}
	if len(d.Coeff) == 0 {
		d.Coeff = nil
		d.Negative = false
		d.Scale = 0
	}
	return d
}

// String formats d as a plain decimal string without exponent.
func (d *Decimal) String() string {
	if d.IsZero() {
		return "0"
	}
	s := d.Coeff.String()
	if scale := int(d.Scale); scale > 0 {
		if pad := scale - len(s); pad >= 0 {
			s = "0." + strings.Repeat("0", pad) + s
		} else {
			s = s[:len(s)-scale] + "." + s[len(s)-scale:]
		}
	}
	if d.Negative {
		s = "-" + s
	}
	return s
}

// GoString formats the parts of d.
func (d *Decimal) GoString() string {
	return fmt.Sprintf(`{Coeff: %s, Negative: %t, Scale: %d}`, d.Coeff, d.Negative, d.Scale)
}

// IsZero reports whether d is 0.
func (d *Decimal) IsZero() bool {
	return d.Coeff.Zero()
}

// Sign returns, if d < 0: -1; if d == 0: 0; if d > 0: 1.
func (d *Decimal) Sign() int {
	switch {
	case d.IsZero():
		return 0
	case d.Negative:
		return -1
	default:
		return 1
	}
}

// NumDigits returns the number of decimal digits of d.Coeff. Zero has one
// digit.
func (d *Decimal) NumDigits() int {
	if n := d.Coeff.Len(); n > 0 {
		return n
	}
	return 1
}

// CmpAbs compares the magnitudes of d's and x's coefficients and returns -1,
// 0 or 1. Signs and scales are ignored: the digit count decides first, then
// the digits from most to least significant.
func (d *Decimal) CmpAbs(x *Decimal) int {
	return d.Coeff.Norm().Cmp(x.Coeff.Norm())
}

// Cmp compares d and x and returns:
//
//	-1 if d <  x
//	 0 if d == x
//	+1 if d >  x
func (d *Decimal) Cmp(x *Decimal) int {
	ds, xs := d.Sign(), x.Sign()
	switch {
	case ds < xs:
		return -1
	case ds > xs:
		return 1
	case ds == 0:
		return 0
	}
	a, b, _ := align(d, x)
	c := a.Cmp(b)
	if ds < 0 {
		c = -c
	}
	return c
}

// Int64 returns the integer value of d, truncating any fractional part. An
// error is returned if the result does not fit in an int64.
func (d *Decimal) Int64() (int64, error) {
	integ := d.Coeff.Norm()
	if d.Scale < 0 {
		if integ.Len() > 0 && integ.Len()-int(d.Scale) > 19 {
			return 0, ErrOverflow
		}
		integ.Mul10(-int(d.Scale))
	} else {
		integ, _ = integ.Split(int(d.Scale))
	}
	if integ.Len() > 19 {
		return 0, ErrOverflow
	}
	v := integ.Uint64()
	if d.Negative {
		if v > uint64(math.MaxInt64)+1 {
			return 0, ErrOverflow
		}
		return -int64(v), nil
	}
	if v > math.MaxInt64 {
		return 0, ErrOverflow
	}
	return int64(v), nil
}

// align returns copies of the coefficients of x and y padded with trailing
// zeros so that both have the larger of the two scales, and that scale.
// Neither x nor y is modified.
func align(x, y *Decimal) (a, b int10.Int, scale int32) {
	a = x.Coeff.Norm().Clone()
	b = y.Coeff.Norm().Clone()
	scale = max(x.Scale, y.Scale)
	a.Mul10(int(scale) - int(x.Scale))
	b.Mul10(int(scale) - int(y.Scale))
	return a, b, scale
}

// Add sets d to the sum x+y and returns d.
func (d *Decimal) Add(x, y *Decimal) (*Decimal, error) {
	return d, BaseContext.Add(d, x, y)
}

// Sub sets d to the difference x-y and returns d.
func (d *Decimal) Sub(x, y *Decimal) (*Decimal, error) {
	return d, BaseContext.Sub(d, x, y)
}

// Mul sets d to the product x*y and returns d.
func (d *Decimal) Mul(x, y *Decimal) (*Decimal, error) {
	return d, BaseContext.Mul(d, x, y)
}

// Quo sets d to the truncated quotient x/y and returns d.
func (d *Decimal) Quo(x, y *Decimal) (*Decimal, error) {
	return d, BaseContext.Quo(d, x, y)
}

// Rem sets d to the remainder x-(x/y)*y and returns d.
func (d *Decimal) Rem(x, y *Decimal) (*Decimal, error) {
	return d, BaseContext.Rem(d, x, y)
}

// Pow sets d to x**n and returns d.
func (d *Decimal) Pow(x *Decimal, n int64) (*Decimal, error) {
	return d, BaseContext.Pow(d, x, n)
}

// Neg sets d to -x and returns d.
func (d *Decimal) Neg(x *Decimal) *Decimal {
	d.Set(x)
	d.Negative = !d.Negative
	return d.reduce()
}

// Abs sets d to |x| and returns d.
func (d *Decimal) Abs(x *Decimal) *Decimal {
	d.Set(x)
	d.Negative = false
	return d
}
