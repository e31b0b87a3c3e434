// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package address

import (
	"crypto/sha256"
	"math/big"

	lru "github.com/hashicorp/golang-lru/v2"
)

// marker is appended to every derivation hash, the same way this ecosystem's
// program-derived addresses are namespaced against plain key material so a
// derived address can never collide with an address someone actually holds
// a private key for.
const marker = "ProgramDerivedAddress"

// MaxBump is the first bump value tried; derivation walks downward from it
// looking for a candidate address that is not a valid curve point.
const MaxBump = 255

type derivationCache struct {
	cache *lru.Cache[string, cachedPDA]
}

type cachedPDA struct {
	addr Address
	bump uint8
}

var derivations *derivationCache

func init() {
	c, err := lru.New[string, cachedPDA](1024)
	if err != nil {
		panic(err)
	}
	derivations = &derivationCache{cache: c}
}

// CreateProgramAddress computes the candidate address for the given program
// id, seeds, and an explicit bump, with no validity search. It is exposed
// so a caller that already knows the bump (e.g. a Lock's stored vault_bump)
// can reconstruct the vault address without re-deriving it.
func CreateProgramAddress(programID Address, seeds [][]byte, bump uint8) Address {
	h := sha256.New()
	for _, s := range seeds {
		h.Write(s)
	}
	h.Write([]byte{bump})
	h.Write(programID[:])
	h.Write([]byte(marker))
	sum := h.Sum(nil)
	var out Address
	copy(out[:], sum)
	return out
}

// FindProgramAddress derives the unique program-owned address for the given
// seeds, searching bumps from MaxBump down to 0 and returning the first
// candidate that is not a point on the ed25519 curve (see isOnCurve): a
// derived address must not be one anybody could hold a signing key for, since
// the program's only signing capability for it is the bump itself.
//
// Pure function of (programID, seeds); memoized in an LRU cache since the
// result never changes for a given input. This does not cache any account
// state — only the address math, which spec section 9 never forbids caching.
func FindProgramAddress(programID Address, seeds ...[]byte) (Address, uint8, error) {
	key := cacheKey(programID, seeds)
	if v, ok := derivations.cache.Get(key); ok {
		return v.addr, v.bump, nil
	}
	for bump := MaxBump; bump >= 0; bump-- {
		candidate := CreateProgramAddress(programID, seeds, uint8(bump))
		if !isOnCurve(candidate) {
			derivations.cache.Add(key, cachedPDA{addr: candidate, bump: uint8(bump)})
			return candidate, uint8(bump), nil
		}
	}
	return Zero, 0, errNoValidAddress
}

func cacheKey(programID Address, seeds [][]byte) string {
	h := sha256.New()
	h.Write(programID[:])
	for _, s := range seeds {
		h.Write([]byte{0})
		h.Write(s)
	}
	return string(h.Sum(nil))
}

// edwards25519 field constants: p = 2^255 - 19, d = -121665/121666 mod p.
var (
	fieldP = mustBig("57896044618658097711785492504343953926634992332820282019728792003956564819949")
	curveD = mustBig("37095705934669439343138083508754565189542113879843219016388785533085940283555")
	one    = big.NewInt(1)
	two    = big.NewInt(2)
)

func mustBig(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("address: bad constant " + s)
	}
	return n
}

// isOnCurve reports whether b, read as a compressed edwards25519 point
// (little-endian y-coordinate with the top bit as the x sign, per RFC 8032),
// decodes to a valid curve point. A program-derived address is accepted only
// when this is false.
func isOnCurve(b Address) bool {
	y := new(big.Int)
	buf := make([]byte, Size)
	copy(buf, b[:])
	buf[31] &= 0x7f // clear the sign bit, it is not part of y
	for i, j := 0, Size-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	y.SetBytes(buf)
	if y.Cmp(fieldP) >= 0 {
		return false
	}

	ySq := new(big.Int).Mul(y, y)
	ySq.Mod(ySq, fieldP)

	u := new(big.Int).Sub(ySq, one)
	u.Mod(u, fieldP)

	v := new(big.Int).Mul(curveD, ySq)
	v.Add(v, one)
	v.Mod(v, fieldP)

	if v.Sign() == 0 {
		return false
	}

	vInv := new(big.Int).ModInverse(v, fieldP)
	if vInv == nil {
		return false
	}
	xSq := new(big.Int).Mul(u, vInv)
	xSq.Mod(xSq, fieldP)

	if xSq.Sign() == 0 {
		return true // x = 0 is a valid point
	}

	// Euler's criterion: xSq is a quadratic residue mod p iff
	// xSq^((p-1)/2) == 1 (mod p).
	exp := new(big.Int).Sub(fieldP, one)
	exp.Div(exp, two)
	residue := new(big.Int).Exp(xSq, exp, fieldP)
	return residue.Cmp(one) == 0
}
