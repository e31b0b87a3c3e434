// Copyright (C) 2025-2026, Lux Industries, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package account implements the bit-exact, little-endian byte layouts of
// the protocol's GlobalState and Lock accounts, as fixed by spec section 6,
// and the kind discriminators of all three account kinds. Vault accounts
// are token accounts held by package token, so no layout for them lives
// here. All multibyte integers are little-endian two's-complement.
package account

import "github.com/zeebo/blake3"

// DiscriminatorSize is the width of the kind tag every account begins with.
const DiscriminatorSize = 8

// Discriminator is the 8-byte kind tag at offset [0..8) of every account
// this program owns; clients memcmp against it to filter accounts by kind.
type Discriminator [DiscriminatorSize]byte

// discriminatorFor computes the stable 8-byte tag for an account kind name,
// the first 8 bytes of blake3("account:"+name). This resolves spec section
// 9's open question ("discriminator bytes are implementation-defined...
// any implementation must pick stable 8-byte tags and publish them") by
// publishing the scheme here.
func discriminatorFor(name string) Discriminator {
	sum := blake3.Sum256([]byte("account:" + name))
	var d Discriminator
	copy(d[:], sum[:DiscriminatorSize])
	return d
}

// The three published discriminators. Computed once at init so every
// account kind's tag is fixed for the lifetime of the program.
var (
	DiscriminatorGlobalState = discriminatorFor("GlobalState")
	DiscriminatorLock        = discriminatorFor("Lock")
	DiscriminatorVault       = discriminatorFor("Vault")
)

// KindOf inspects the discriminator at the start of raw account data and
// reports which kind it names, if any of the three published kinds match.
func KindOf(data []byte) (string, bool) {
	if len(data) < DiscriminatorSize {
		return "", false
	}
	var got Discriminator
	copy(got[:], data[:DiscriminatorSize])
	switch got {
	case DiscriminatorGlobalState:
		return "GlobalState", true
	case DiscriminatorLock:
		return "Lock", true
	case DiscriminatorVault:
		return "Vault", true
	default:
		return "", false
	}
}
