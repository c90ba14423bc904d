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
	"math"
	"math/big"

	"github.com/mpcalc/bignum/int10"
	"github.com/pkg/errors"
)

// decomposer composes or decomposes a decimal value to and from individual
// parts: a form byte (finite=0, infinite=1, NaN=2), a negative flag, a base-2
// big-endian coefficient and an int32 exponent, such that
// decimal = (neg) coefficient * 10 ^ exponent. A zero length coefficient is
// zero. This is the interface database/sql drivers use to exchange decimals.
type decomposer interface {
	Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32)
	Compose(form byte, negative bool, coefficient []byte, exponent int32) error
}

var _ decomposer = &Decimal{}

const formFinite = 0

// Decompose returns the internal decimal state into parts. If the provided buf
// has sufficient capacity, buf may be returned as the coefficient with the
// value set and length set as appropriate. A Decimal is always finite.
func (d *Decimal) Decompose(buf []byte) (form byte, negative bool, coefficient []byte, exponent int32) {
	b := d.Coeff.Big()
	if n := (b.BitLen() + 7) / 8; cap(buf) >= n {
		coefficient = b.FillBytes(buf[:n])
	} else {
		coefficient = b.Bytes()
	}
	return formFinite, d.Negative, coefficient, -d.Scale
}

// Compose sets the internal decimal value from parts. Only the finite form can
// be represented; NaN and infinities return an error. The coefficient is not
// modified.
func (d *Decimal) Compose(form byte, negative bool, coefficient []byte, exponent int32) error {
	if form != formFinite {
		return errors.Errorf("Compose: unsupported form %d", form)
	}
	if exponent > MaxExponent || exponent == math.MinInt32 {
		return errors.Wrap(ErrExponentOutOfRange, "Compose")
	}
	d.Coeff = int10.NewIntBig(new(big.Int).SetBytes(coefficient))
	d.Negative = negative
	d.Scale = -exponent
	d.reduce()
	return nil
}
