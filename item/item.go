// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package item

import (
	"strconv"
	"strings"

	"github.com/bitmark-inc/avltree/avl"
	"github.com/bitmark-inc/avltree/fault"
)

// names of the key types accepted by Parse
const (
	IntegerType = "integer"
	StringType  = "string"
)

// Integer - signed integer key
type Integer int64

// Compare - numeric ordering
func (i Integer) Compare(x interface{}) int {
	j := x.(Integer)
	switch {
	case i < j:
		return -1
	case i > j:
		return 1
	default:
		return 0
	}
}

// String - decimal representation
func (i Integer) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// String - text key ordered bytewise
type String string

// Compare - lexical ordering
func (s String) Compare(x interface{}) int {
	return strings.Compare(string(s), string(x.(String)))
}

// String - the text itself
func (s String) String() string {
	return string(s)
}

// ValidType - true if keyType names a supported key type
func ValidType(keyType string) bool {
	switch keyType {
	case IntegerType, StringType:
		return true
	default:
		return false
	}
}

// Parse - convert text to a key of the named type
func Parse(keyType string, s string) (avl.Item, error) {
	switch keyType {
	case IntegerType:
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if nil != err {
			return nil, fault.ErrInvalidKeyValue
		}
		return Integer(i), nil
	case StringType:
		return String(s), nil
	default:
		return nil, fault.ErrInvalidKeyType
	}
}

// ParseList - convert each text to a key, keeping the order
func ParseList(keyType string, list []string) ([]avl.Item, error) {
	if !ValidType(keyType) {
		return nil, fault.ErrInvalidKeyType
	}
	keys := make([]avl.Item, 0, len(list))
	for _, s := range list {
		key, err := Parse(keyType, s)
		if nil != err {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// Integers - wrap plain integers as keys
func Integers(values ...int) []avl.Item {
	keys := make([]avl.Item, len(values))
	for i, v := range values {
		keys[i] = Integer(v)
	}
	return keys
}
