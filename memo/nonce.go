// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package memo

import (
	"crypto/rand"
	"sync"
	"time"

	"github.com/mahdiyari/hive-tx-go/counter"
)

// low 16 bits of a nonce come from the counter
const entropyModulus = 0xffff

var entropy struct {
	once    sync.Once
	counter counter.Counter
}

// milliseconds in the high bits, a randomly started process wide
// counter in the low 16 bits
func uniqueNonce() uint64 {
	entropy.once.Do(func() {
		// an unseeded counter still starts at zero
		_ = entropy.counter.Seed(rand.Reader)
	})
	ms := uint64(time.Now().UnixMilli())
	return ms<<16 | entropy.counter.Increment()%entropyModulus
}
