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
	"database/sql/driver"
	"strconv"

	"github.com/pkg/errors"
)

// Scan implements the sql.Scanner interface for database deserialization.
func (d *Decimal) Scan(src interface{}) error {
	switch src := src.(type) {
	case []byte:
		return errors.Wrap(d.setScientific(string(src)), "Scan")
	case string:
		return errors.Wrap(d.setScientific(src), "Scan")
	case int64:
		d.SetInt64(src)
		return nil
	case float64:
		return errors.Wrap(d.setScientific(strconv.FormatFloat(src, 'f', -1, 64)), "Scan")
	default:
		return errors.Errorf("Scan: could not convert %T to Decimal", src)
	}
}

// Value implements the database/sql/driver.Valuer interface. It converts d to a
// string.
func (d Decimal) Value() (driver.Value, error) {
	return d.String(), nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (d *Decimal) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (d *Decimal) UnmarshalText(b []byte) error {
	return errors.Wrapf(d.setScientific(string(b)), "decoding %q", b)
}
