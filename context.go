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

import "github.com/mpcalc/bignum/int10"

// DefaultKaratsubaThreshold is the operand length, in digits, above which
// BaseContext multiplies using the Karatsuba algorithm.
const DefaultKaratsubaThreshold = 50

// Context maintains options for Decimal operations. Operations store their
// result in their first argument, which may be one of the operands; the
// operands themselves are never modified.
type Context struct {
	// KaratsubaThreshold is the largest operand length, in digits, that is
	// multiplied with schoolbook multiplication. Longer operands use the
	// Karatsuba algorithm. Zero disables Karatsuba.
	KaratsubaThreshold int
}

// BaseContext is a useful default Context.
var BaseContext = Context{
	KaratsubaThreshold: DefaultKaratsubaThreshold,
}

// WithKaratsubaThreshold returns a copy of c but with the specified
// Karatsuba threshold.
func (c *Context) WithKaratsubaThreshold(n int) Context {
	r := *c
	r.KaratsubaThreshold = n
	return r
}

// Add sets d to the sum x+y.
func (c *Context) Add(d, x, y *Decimal) error {
	if x.Negative != y.Negative {
		return c.Sub(d, x, negated(y))
	}
	a, b, s := align(x, y)
	var z int10.Int
	z.Add(a, b)
	d.Coeff = z
	d.Negative = x.Negative
	d.Scale = s
	d.reduce()
	return nil
}

// Sub sets d to the difference x-y.
func (c *Context) Sub(d, x, y *Decimal) error {
	if x.Negative != y.Negative {
		return c.Add(d, x, negated(y))
	}
	a, b, s := align(x, y)
	var z int10.Int
	// Diff reports whether |x| < |y|, which flips the shared sign.
	smaller := z.Diff(a, b)
	d.Coeff = z
	d.Negative = smaller != x.Negative
	d.Scale = s
	d.reduce()
	return nil
}

// Mul sets d to the product x*y. ErrScaleOutOfRange is returned when the sum
// of the scales does not fit in an int32.
func (c *Context) Mul(d, x, y *Decimal) error {
	neg := x.Negative != y.Negative
	scale, err := resultScale(int64(x.Scale) + int64(y.Scale))
	if err != nil {
		return err
	}
	if x.IsZero() || y.IsZero() {
		d.Coeff = nil
	} else {
		d.Coeff = x.Coeff.MulKaratsuba(y.Coeff, c.KaratsubaThreshold)
	}
	d.Negative = neg
	d.Scale = scale
	d.reduce()
	return nil
}

// Quo sets d to the quotient x/y for y != 0. The quotient has x.Scale-y.Scale
// fractional digits: the digits of x.Coeff are divided by y.Coeff with long
// division and no further digits are generated, so the result is truncated
// toward zero. ErrScaleOutOfRange is returned when x.Scale-y.Scale does not
// fit in an int32 or is below -MaxExponent.
func (c *Context) Quo(d, x, y *Decimal) error {
	if y.IsZero() {
		return ErrDivisionByZero
	}
	neg := x.Negative != y.Negative
	scale, err := resultScale(int64(x.Scale) - int64(y.Scale))
	if err != nil {
		return err
	}
	var q int10.Int
	if x.CmpAbs(y) >= 0 {
		q = x.Coeff.Quo(y.Coeff)
	}
	d.Coeff = q
	d.Negative = neg
	d.Scale = scale
	d.reduce()
	return nil
}

// Rem sets d to the remainder x - (x/y)*y, using Quo's truncated quotient.
func (c *Context) Rem(d, x, y *Decimal) error {
	q, p := new(Decimal), new(Decimal)
	ed := MakeErrDecimal(c)
	ed.Quo(q, x, y)
	ed.Mul(p, q, y)
	if err := ed.Err(); err != nil {
		return err
	}
	return c.Sub(d, x, p)
}

// Pow sets d = x**n using exponentiation by squaring. n must not be negative;
// x**0 is 1 for every x.
func (c *Context) Pow(d, x *Decimal, n int64) error {
	if n < 0 {
		return ErrInvalidExponent
	}
	z := New(1, 0)
	b := new(Decimal).Set(x)
	for n > 0 {
		if n&1 == 1 {
			if err := c.Mul(z, z, b); err != nil {
				return err
			}
		}
		n >>= 1
		if n > 0 {
			if err := c.Mul(b, b, b); err != nil {
				return err
			}
		}
	}
	d.Set(z)
	return nil
}

// Neg sets d to -x.
func (c *Context) Neg(d, x *Decimal) error {
	d.Neg(x)
	return nil
}

// Abs sets d to |x| (the absolute value of x).
func (c *Context) Abs(d, x *Decimal) error {
	d.Abs(x)
	return nil
}

// negated returns a shallow copy of x with the opposite sign. The copy shares
// x's coefficient and must not be written to.
func negated(x *Decimal) *Decimal {
	return &Decimal{Coeff: x.Coeff, Negative: !x.Negative, Scale: x.Scale}
}
