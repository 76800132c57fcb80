package asn1flat

/*
common.go contains elements, types and functions used by myriad
components throughout this package.
*/

import (
	"errors"
	"strconv"
	"strings"
	"unicode/utf8"
)

/*
official import aliases.
*/
var (
	mkerr   func(string) error            = errors.New
	itoa    func(int) string              = strconv.Itoa
	fmtInt  func(int64, int) string       = strconv.FormatInt
	fmtUint func(uint64, int) string      = strconv.FormatUint
	join    func([]string, string) string = strings.Join
	repeat  func(string, int) string      = strings.Repeat
	utf8OK  func(string) bool             = utf8.ValidString
)

func bool2str(b bool) (s string) {
	if s = `false`; b {
		s = `true`
	}
	return
}

/*
minOctetsFor returns the minimum number of big-endian octets needed to
hold the unsigned value n (n==0 still needs one octet).
*/
func minOctetsFor(n uint64) int {
	count := 1
	for n > 0xff {
		n >>= 8
		count++
	}
	return count
}
