// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package expr

import (
	"fmt"
	"math/big"
	"strings"
)

// ParseRange parses one of the five range syntaxes: "L,R", "[L,R]",
// "range[L,R]", "L..R", "L:R", with L and R themselves numeric
// expressions and L <= R.
func ParseRange(s string) (lo, hi *big.Int, err error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "range")
	s = strings.TrimSpace(s)

	switch {
	case strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]"):
		return parsePair(s[1:len(s)-1], ",")
	case strings.Contains(s, ".."):
		return parsePair(s, "..")
	case strings.Contains(s, ":"):
		return parsePair(s, ":")
	case strings.Contains(s, ","):
		return parsePair(s, ",")
	default:
		return nil, nil, fmt.Errorf("expr: %q is not a recognized range expression", s)
	}
}

func parsePair(s, sep string) (lo, hi *big.Int, err error) {
	parts := strings.SplitN(s, sep, 2)
	if len(parts) != 2 {
		return nil, nil, fmt.Errorf("expr: range %q missing %q separator", s, sep)
	}
	lo, err = ParseExpr(parts[0])
	if err != nil {
		return nil, nil, err
	}
	hi, err = ParseExpr(parts[1])
	if err != nil {
		return nil, nil, err
	}
	if lo.Cmp(hi) > 0 {
		return nil, nil, fmt.Errorf("expr: range %q has L > R", s)
	}
	return lo, hi, nil
}
