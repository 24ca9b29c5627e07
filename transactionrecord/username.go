// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package transactionrecord

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/mahdiyari/hive-tx-go/fault"
)

// account name limits
const (
	minimumUsernameLength = 3
	maximumUsernameLength = 16
)

// ValidateUsername - check the chain's account naming rules
//
// the returned error is fault.ErrInvalidUsername wrapped with the rule
// that failed
func ValidateUsername(name string) error {
	subject := "account name should"

	if "" == name {
		return errors.Wrap(fault.ErrInvalidUsername, subject+" not be empty")
	}
	if len(name) < minimumUsernameLength {
		return errors.Wrap(fault.ErrInvalidUsername, subject+" be longer")
	}
	if len(name) > maximumUsernameLength {
		return errors.Wrap(fault.ErrInvalidUsername, subject+" be shorter")
	}

	if strings.Contains(name, ".") {
		subject = "each account segment should"
	}

	for _, segment := range strings.Split(name, ".") {
		if !startsWithLetter(segment) {
			return errors.Wrap(fault.ErrInvalidUsername, subject+" start with a letter")
		}
		if !onlyNameCharacters(segment) {
			return errors.Wrap(fault.ErrInvalidUsername, subject+" have only letters, digits, or dashes")
		}
		if !endsWithLetterOrDigit(segment) {
			return errors.Wrap(fault.ErrInvalidUsername, subject+" end with a letter or digit")
		}
		if len(segment) < minimumUsernameLength {
			return errors.Wrap(fault.ErrInvalidUsername, subject+" be longer")
		}
	}
	return nil
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func startsWithLetter(s string) bool {
	return "" != s && isLower(s[0])
}

func endsWithLetterOrDigit(s string) bool {
	if "" == s {
		return false
	}
	c := s[len(s)-1]
	return isLower(c) || isDigit(c)
}

func onlyNameCharacters(s string) bool {
	for i := 0; i < len(s); i += 1 {
		c := s[i]
		if !isLower(c) && !isDigit(c) && '-' != c {
			return false
		}
	}
	return true
}
