// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asset - chain token amounts
//
// an amount is held as a signed integer count of the smallest unit,
// the number of decimal places is fixed by the symbol
package asset
