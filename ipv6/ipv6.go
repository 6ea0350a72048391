/*
Package ipv6 parses textual IPv6 addresses.

The parser follows the IPv6 parser of the WHATWG URL standard
(https://url.spec.whatwg.org/#concept-ipv6-parser): up to eight hex pieces,
a single "::" compression and an optional trailing dotted-quad IPv4 address
occupying the last two pieces. Parsing either produces a complete address
or fails, there are no partial results.

___________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package ipv6

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/npillmayer/tgtext/chars"
)

// Address is an IPv6 address, consisting of 8 pieces of 16 bits each.
type Address [8]uint16

// ErrMalformed is returned for every input which is not a valid IPv6
// address. The error returned by Parse wraps it with a description.
var ErrMalformed = errors.New("malformed IPv6 address")

func malformed(s string, pos int, msg string) error {
	return fmt.Errorf("%w %q at %d: %s", ErrMalformed, s, pos, msg)
}

// Parse parses s as an IPv6 address. s must not be enclosed in brackets.
func Parse(s string) (Address, error) {
	var addr Address
	piece, compress, p := 0, -1, 0
	c := func(i int) byte { // 0 signals end of input
		if i < len(s) {
			return s[i]
		}
		return 0
	}
	if c(p) == ':' {
		if c(p+1) != ':' {
			return Address{}, malformed(s, p, "leading single colon")
		}
		p += 2
		piece++
		compress = piece
	}
	for p < len(s) {
		if piece == 8 {
			return Address{}, malformed(s, p, "too many pieces")
		}
		if c(p) == ':' {
			if compress != -1 {
				return Address{}, malformed(s, p, "multiple compressions")
			}
			p++
			piece++
			compress = piece
			continue
		}
		value, length := 0, 0
		for length < 4 && chars.IsHexDigit(c(p)) {
			value = value<<4 | hexValue(c(p))
			p++
			length++
		}
		switch c(p) {
		case '.':
			if length == 0 {
				return Address{}, malformed(s, p, "IPv4 part without number")
			}
			p -= length
			if piece > 6 {
				return Address{}, malformed(s, p, "no room for IPv4 part")
			}
			var err error
			if piece, err = parseDottedQuad(s, p, piece, &addr); err != nil {
				return Address{}, err
			}
			p = len(s)
			continue
		case ':':
			p++
			if p == len(s) {
				return Address{}, malformed(s, p, "trailing colon")
			}
		case 0:
			if p < len(s) {
				return Address{}, malformed(s, p, "unexpected NUL")
			}
		default:
			return Address{}, malformed(s, p, "unexpected character")
		}
		addr[piece] = uint16(value)
		piece++
	}
	if compress != -1 {
		swaps := piece - compress
		for piece = 7; piece != 0 && swaps > 0; piece, swaps = piece-1, swaps-1 {
			addr[piece], addr[compress+swaps-1] = addr[compress+swaps-1], addr[piece]
		}
	} else if piece != 8 {
		return Address{}, malformed(s, len(s), "too few pieces")
	}
	return addr, nil
}

// parseDottedQuad parses the rest of s, starting at p, as 4 decimal octets
// and stores them into addr, starting at piece.
func parseDottedQuad(s string, p int, piece int, addr *Address) (int, error) {
	numbers := 0
	for p < len(s) {
		if numbers > 0 {
			if s[p] != '.' || numbers >= 4 {
				return 0, malformed(s, p, "invalid IPv4 separator")
			}
			p++
		}
		if p == len(s) || !chars.IsDigit(s[p]) {
			return 0, malformed(s, p, "IPv4 part expected")
		}
		octet := -1
		for p < len(s) && chars.IsDigit(s[p]) {
			n := int(s[p] - '0')
			if octet == -1 {
				octet = n
			} else if octet == 0 {
				return 0, malformed(s, p, "leading zero in IPv4 part")
			} else {
				octet = octet*10 + n
			}
			if octet > 255 {
				return 0, malformed(s, p, "IPv4 part out of range")
			}
			p++
		}
		addr[piece] = addr[piece]<<8 | uint16(octet)
		numbers++
		if numbers == 2 || numbers == 4 {
			piece++
		}
	}
	if numbers != 4 {
		return 0, malformed(s, p, "IPv4 part too short")
	}
	return piece, nil
}

// ParseBracketed parses an IPv6 address enclosed in brackets, as it appears
// in the host part of URLs.
func ParseBracketed(host string) (Address, error) {
	if len(host) < 2 || host[0] != '[' || host[len(host)-1] != ']' {
		return Address{}, fmt.Errorf("%w %q: brackets missing", ErrMalformed, host)
	}
	return Parse(host[1 : len(host)-1])
}

// Is4In6 is true for IPv4-mapped addresses (::ffff:a.b.c.d).
func (a Address) Is4In6() bool {
	return a[0] == 0 && a[1] == 0 && a[2] == 0 && a[3] == 0 && a[4] == 0 && a[5] == 0xffff
}

// String returns the canonical text representation of a (RFC 5952):
// lower-case hex without leading zeros, and the longest run of at least two
// zero pieces compressed to "::".
func (a Address) String() string {
	if a.Is4In6() {
		return fmt.Sprintf("::ffff:%d.%d.%d.%d", a[6]>>8, a[6]&0xff, a[7]>>8, a[7]&0xff)
	}
	start, length := -1, 1
	for i := 0; i < 8; {
		if a[i] != 0 {
			i++
			continue
		}
		j := i
		for j < 8 && a[j] == 0 {
			j++
		}
		if j-i > length {
			start, length = i, j-i
		}
		i = j
	}
	var b strings.Builder
	for i := 0; i < 8; i++ {
		if i == start {
			b.WriteString("::")
			i += length - 1
			continue
		}
		if i > 0 && i != start+length {
			b.WriteByte(':')
		}
		b.WriteString(strconv.FormatUint(uint64(a[i]), 16))
	}
	return b.String()
}

func hexValue(c byte) int {
	switch {
	case chars.IsDigit(c):
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	}
	return int(c-'A') + 10
}
