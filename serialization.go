package bignum

import (
	"math"
	"strconv"
	"strings"

	"github.com/globalsign/mgo/bson"
	"github.com/pkg/errors"
)

// GetBSON converts d to a BSON Decimal128. Values with more than 34
// significant digits cannot be represented and return an error.
func (d *Decimal) GetBSON() (interface{}, error) {
	v, err := bson.ParseDecimal128(d.String())
	if err != nil {
		return nil, errors.Wrap(err, "GetBSON")
	}
	return v, nil
}

// SetBSON parses d from a BSON Decimal128.
func (d *Decimal) SetBSON(raw bson.Raw) error {
	var w bson.Decimal128
	if err := raw.Unmarshal(&w); err != nil {
		return errors.Wrap(err, "SetBSON")
	}
	return errors.Wrap(d.setScientific(w.String()), "SetBSON")
}

// setScientific sets d from a finite number in plain or scientific notation,
// such as "-1.5E+3".
func (d *Decimal) setScientific(s string) error {
	mant, exp := s, int64(0)
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		var err error
		exp, err = strconv.ParseInt(s[i+1:], 10, 32)
		if err != nil {
			return errors.Wrapf(err, "parse exponent: %s", s[i+1:])
		}
		mant = s[:i]
	}
	if !isPlainNumber(mant) {
		return errors.Errorf("parse mantissa: %s", s)
	}
	var t Decimal
	t.SetString(mant)
	scale := int64(t.Scale) - exp
	if scale > math.MaxInt32 || scale < -MaxExponent {
		return errors.Wrap(ErrExponentOutOfRange, s)
	}
	t.Scale = int32(scale)
	*d = *t.reduce()
	return nil
}

// isPlainNumber reports whether s is an optionally signed run of digits with
// at most one decimal point.
func isPlainNumber(s string) bool {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "-"), "+")
	digits, points := 0, 0
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case c >= '0' && c <= '9':
			digits++
		case c == '.':
			points++
		default:
			return false
		}
	}
	return digits > 0 && points <= 1
}
