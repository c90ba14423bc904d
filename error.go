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

// ErrDecimal performs operations on decimals and collects errors during
// operations. If an error is already set, the operation is skipped. Designed to
// be used for many operations in a row, with a single error check at the end.
type ErrDecimal struct {
	err error
	Ctx *Context
}

// MakeErrDecimal creates a ErrDecimal with given context.
func MakeErrDecimal(c *Context) ErrDecimal {
	return ErrDecimal{
		Ctx: c,
	}
}

// Err returns the first error encountered or nil.
func (e *ErrDecimal) Err() error {
	return e.err
}

func (e *ErrDecimal) ctx() *Context {
	if e.Ctx == nil {
		return &BaseContext
	}
	return e.Ctx
}

// Abs performs e.Ctx.Abs(d, x).
func (e *ErrDecimal) Abs(d, x *Decimal) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.ctx().Abs(d, x)
	return d
}

// Add performs e.Ctx.Add(d, x, y).
func (e *ErrDecimal) Add(d, x, y *Decimal) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.ctx().Add(d, x, y)
	return d
}

// Mul performs e.Ctx.Mul(d, x, y).
func (e *ErrDecimal) Mul(d, x, y *Decimal) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.ctx().Mul(d, x, y)
	return d
}

// Neg performs e.Ctx.Neg(d, x).
func (e *ErrDecimal) Neg(d, x *Decimal) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.ctx().Neg(d, x)
	return d
}

// Pow performs e.Ctx.Pow(d, x, n).
func (e *ErrDecimal) Pow(d, x *Decimal, n int64) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.ctx().Pow(d, x, n)
	return d
}

// Quo performs e.Ctx.Quo(d, x, y).
func (e *ErrDecimal) Quo(d, x, y *Decimal) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.ctx().Quo(d, x, y)
	return d
}

// Rem performs e.Ctx.Rem(d, x, y).
func (e *ErrDecimal) Rem(d, x, y *Decimal) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.ctx().Rem(d, x, y)
	return d
}

// Sub performs e.Ctx.Sub(d, x, y).
func (e *ErrDecimal) Sub(d, x, y *Decimal) *Decimal {
	if e.err != nil {
		return d
	}
	e.err = e.ctx().Sub(d, x, y)
	return d
}
