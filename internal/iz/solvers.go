// Copyright (C) 2025 The Sizm Authors.
//
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this file,
// You can obtain one at https://mozilla.org/MPL/2.0/.

package iz

import "github.com/sixprime/sizm/internal/oracle"

// primeCoord returns xp = (p+1)/6 and ip, the line p itself falls on
// (p ≡ 1 mod 6 => LinePlus, p ≡ 5 mod 6 => LineMinus).
func primeCoord(p uint64) (xp uint64, ip Line) {
	xp = (p + 1) / 6
	if p%6 == 1 {
		return xp, LinePlus
	}
	return xp, LineMinus
}

// normalizedXP returns xp' for the marking identity: xp if the prime's own
// line matches m, else p - xp.
func normalizedXP(p, xp uint64, ip, m Line) uint64 {
	if ip == m {
		return xp
	}
	return p - xp
}

// SolveX0 returns x0 in [0, p): the first x-index to clear on line m of
// segment y for prime p. Any x >= x0 on that line in that segment
// congruent to x0 mod p is divisible by p; at y=0 on p's own line, x0 is
// p's own position, so callers skip it to keep p itself.
func SolveX0(m Line, p, vx, y uint64) uint64 {
	xp, ip := primeCoord(p)

	if y == 0 {
		val := int64(p*xp) + int64(m)*int64(ip)*int64(xp)
		return uint64(((val % int64(p)) + int64(p)) % int64(p))
	}

	xpPrime := normalizedXP(p, xp, ip, m)
	diff := int64(y*vx) - int64(xpPrime)
	mod := diff % int64(p)
	if mod < 0 {
		mod += int64(p)
	}

	if p >= vx {
		return uint64(mod)
	}
	return (p - uint64(mod)) % p
}

// SolveX0Big is SolveX0 for an arbitrary-precision segment index y, used
// when y no longer fits in 64 bits (streaming far beyond the 64-bit range
// width but with a decimal start).
func SolveX0Big(m Line, p, vx uint64, yBig *oracle.Int) uint64 {
	xp, ip := primeCoord(p)
	xpPrime := normalizedXP(p, xp, ip, m)

	// diff = y*vx - xp'
	yVX := yBig.MulSmall(int64(vx))
	diff := yVX.SubSmall(int64(xpPrime))
	_, rem := diff.DivModSmall(int64(p))
	mod := rem // DivModSmall already normalizes to [0, p)

	if p >= vx {
		return uint64(mod)
	}
	return (p - uint64(mod)) % p
}

// SolveY0 solves (x + vx*y) ≡ xp' (mod p) for y, returning y0 in [0, p).
// ok is false when gcd(vx, p) != 1, in which case there is no solution.
func SolveY0(m Line, p, vx, x uint64) (y0 uint64, ok bool) {
	xp, ip := primeCoord(p)
	xpPrime := normalizedXP(p, xp, ip, m)

	inv, invOK := modInverse(vx%p, p)
	if !invOK {
		return 0, false
	}

	rhs := int64(xpPrime) - int64(x)
	rhs = ((rhs % int64(p)) + int64(p)) % int64(p)
	y0 = (uint64(rhs) * inv) % p
	return y0, true
}

// modInverse returns the modular inverse of a mod m via the extended
// Euclidean algorithm. ok is false when gcd(a, m) != 1.
func modInverse(a, m uint64) (inv uint64, ok bool) {
	if m == 0 {
		return 0, false
	}
	g, x, _ := extendedGCD(int64(a), int64(m))
	if g != 1 {
		return 0, false
	}
	x = ((x % int64(m)) + int64(m)) % int64(m)
	return uint64(x), true
}

// extendedGCD returns (g, x, y) such that a*x + b*y = g = gcd(a, b).
func extendedGCD(a, b int64) (g, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := extendedGCD(b, a%b)
	return g, y1, x1 - (a/b)*y1
}
