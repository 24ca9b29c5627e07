// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"crypto/sha256"
)

// DefaultRole - role used by login keys when none is given
const DefaultRole = "active"

// login roles
var Roles = []string{"owner", "active", "posting", "memo"}

// PrivateKeyFromSeed - sha256 of arbitrary seed text
func PrivateKeyFromSeed(seed string) (*PrivateKey, error) {
	digest := sha256.Sum256([]byte(seed))
	return PrivateKeyFromBytes(digest[:])
}

// PrivateKeyFromLogin - the deterministic key of a username, password
// and role
func PrivateKeyFromLogin(username string, password string, role string) (*PrivateKey, error) {
	if "" == role {
		role = DefaultRole
	}
	return PrivateKeyFromSeed(username + role + password)
}
