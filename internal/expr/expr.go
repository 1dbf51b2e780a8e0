// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

// Package expr parses the two small grammars the CLI accepts from the
// command line: a numeric expression (sums of decimals, powers and
// scientific notation) and a range expression identifying an [L, R]
// interval. Both return math/big integers; the sieve core never sees
// unparsed text.
package expr

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

var (
	reDigits  = regexp.MustCompile(`^\d+$`)
	reGrouped = regexp.MustCompile(`^\d{1,3}(,\d{3})+$`)
)

// ParseDecimal parses a single Decimal production: plain digits, or digits
// grouped in 3s after an initial 1-3 digit group ("1,000,000").
func ParseDecimal(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	switch {
	case reDigits.MatchString(s):
		n, ok := new(big.Int).SetString(s, 10)
		if !ok {
			return nil, fmt.Errorf("expr: invalid decimal %q", s)
		}
		return n, nil
	case reGrouped.MatchString(s):
		n, ok := new(big.Int).SetString(strings.ReplaceAll(s, ",", ""), 10)
		if !ok {
			return nil, fmt.Errorf("expr: invalid grouped decimal %q", s)
		}
		return n, nil
	default:
		return nil, fmt.Errorf("expr: %q is not a valid decimal", s)
	}
}

// parseTerm parses a Term: Decimal, Decimal '^' Decimal, or
// Decimal ('e'|'E') Decimal.
func parseTerm(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, "^"); idx >= 0 {
		base, err := ParseDecimal(s[:idx])
		if err != nil {
			return nil, err
		}
		exp, err := ParseDecimal(s[idx+1:])
		if err != nil {
			return nil, err
		}
		return new(big.Int).Exp(base, exp, nil), nil
	}
	if idx := strings.IndexAny(s, "eE"); idx >= 0 {
		mantissa, err := ParseDecimal(s[:idx])
		if err != nil {
			return nil, err
		}
		exp, err := ParseDecimal(s[idx+1:])
		if err != nil {
			return nil, err
		}
		pow := new(big.Int).Exp(big.NewInt(10), exp, nil)
		return new(big.Int).Mul(mantissa, pow), nil
	}
	return ParseDecimal(s)
}

// ParseExpr parses Expr := Term ('+' Term)*.
func ParseExpr(s string) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("expr: empty expression")
	}
	sum := new(big.Int)
	for _, part := range strings.Split(s, "+") {
		t, err := parseTerm(part)
		if err != nil {
			return nil, err
		}
		sum.Add(sum, t)
	}
	return sum, nil
}
