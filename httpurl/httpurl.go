/*
Package httpurl parses HTTP and HTTPS URLs the way the messaging platform
validates them.

Parsing is lenient where the platform is lenient (a missing scheme selects a
default protocol, a missing path becomes "/", control characters in the
query are percent-encoded) and strict everywhere else: every violation of
the grammar fails the whole parse, there are no partial results.

  u, err := httpurl.Parse("HTTPS://user@Example.COM:0443/p?q")
  // u.Host() == "example.com", u.Port() == 443, u.Query() == "/p?q"

___________________________________________________________________________

License

This project is provided under the terms of the UNLICENSE or
the 3-Clause BSD license denoted by the following SPDX identifier:

SPDX-License-Identifier: 'Unlicense' OR 'BSD-3-Clause'

You may use the project under the terms of either license.

Licenses are reproduced in the license file in the root folder of this module.

Copyright © 2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package httpurl

import (
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/tgtext/chars"
	"github.com/npillmayer/tgtext/ipv6"
	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// tracer traces to the core-tracer.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}

// Protocol is either HTTP or HTTPS.
type Protocol int8

// Supported protocols
const (
	HTTP Protocol = iota
	HTTPS
)

func (p Protocol) String() string {
	if p == HTTPS {
		return "https"
	}
	return "http"
}

// DefaultPort returns the port used for p if no port is given in a URL.
func (p Protocol) DefaultPort() int {
	if p == HTTPS {
		return 443
	}
	return 80
}

// URL is a parsed HTTP URL. URLs are immutable values.
type URL struct {
	protocol      Protocol
	userinfo      string
	host          string
	isIPv6        bool
	specifiedPort int
	port          int
	query         string
}

func (u URL) Protocol() Protocol { return u.protocol }

func (u URL) Userinfo() string { return u.userinfo }

// Host returns the lower-cased host. IPv6 hosts include the brackets.
func (u URL) Host() string { return u.host }

func (u URL) IsIPv6() bool { return u.isIPv6 }

// SpecifiedPort returns the port given in the URL, or 0 if there was none.
func (u URL) SpecifiedPort() int { return u.specifiedPort }

// Port returns the effective port, i.e. the specified port or the default
// port of the protocol.
func (u URL) Port() int { return u.port }

// Query returns path, query and fragment of the URL. It always starts
// with '/'.
func (u URL) Query() string { return u.query }

// String reconstructs a canonical URL string.
func (u URL) String() string {
	var b strings.Builder
	b.WriteString(u.protocol.String())
	b.WriteString("://")
	if u.userinfo != "" {
		b.WriteString(u.userinfo)
		b.WriteByte('@')
	}
	b.WriteString(u.host)
	if u.specifiedPort > 0 {
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(u.specifiedPort))
	}
	b.WriteString(u.query)
	return b.String()
}

// Parse parses raw as a URL, using HTTP if raw does not contain a scheme.
func Parse(raw string) (URL, error) {
	return ParseWithDefault(raw, HTTP)
}

// ParseWithDefault parses raw as a URL. If raw does not contain a scheme,
// protocol p is assumed.
func ParseWithDefault(raw string, p Protocol) (URL, error) {
	u := URL{protocol: p}
	rest := raw
	// scheme
	i := strings.IndexAny(raw, ":/?#@[]")
	if i < 0 {
		i = len(raw)
	}
	if strings.HasPrefix(raw[i:], "://") {
		switch asciiLower(raw[:i]) {
		case "http":
			u.protocol = HTTP
		case "https":
			u.protocol = HTTPS
		default:
			return URL{}, ErrUnsupportedProtocol
		}
		rest = raw[i+3:]
	}
	// authority
	end := strings.IndexAny(rest, "/?#")
	if end < 0 {
		end = len(rest)
	}
	authority, query := rest[:end], rest[end:]
	host := authority
	// port
	colon := len(authority) - 1
	for colon > 0 && !strings.ContainsRune(":]@", rune(authority[colon])) {
		colon--
	}
	if colon > 0 && authority[colon] == ':' {
		port, err := parsePort(authority[colon+1:])
		if err != nil {
			return URL{}, err
		}
		u.specifiedPort = port
		host = authority[:colon]
	}
	// userinfo
	if at := strings.LastIndexByte(host, '@'); at >= 0 {
		u.userinfo, host = host[:at], host[at+1:]
	}
	if host != "" && host[0] == '[' {
		if _, err := ipv6.ParseBracketed(host); err != nil {
			tracer().Debugf("URL %q: %v", raw, err)
			return URL{}, ErrWrongIPv6Host
		}
		u.isIPv6 = true
	}
	if host == "" {
		return URL{}, ErrEmptyHost
	}
	if host == "." {
		return URL{}, ErrInvalidHost
	}
	u.port = u.specifiedPort
	if u.port == 0 {
		u.port = u.protocol.DefaultPort()
	}
	u.query = normalizeQuery(query)
	u.host = asciiLower(host)
	if u.isIPv6 {
		for i := 1; i+1 < len(u.host); i++ {
			c := u.host[i]
			if c == ':' || c == '.' || chars.IsDigit(c) || ('a' <= c && c <= 'f') {
				continue
			}
			return URL{}, ErrWrongIPv6Host
		}
	} else {
		if err := checkPart(u.host, "host", false); err != nil {
			return URL{}, err
		}
		if err := checkPart(u.userinfo, "userinfo", true); err != nil {
			return URL{}, err
		}
	}
	return u, nil
}

// parsePort parses a port number, ignoring leading zeros. Port numbers have
// to survive a round-trip through strconv unchanged.
func parsePort(s string) (int, error) {
	for len(s) > 1 && s[0] == '0' {
		s = s[1:]
	}
	port, err := strconv.Atoi(s)
	if err != nil || strconv.Itoa(port) != s || port <= 0 || port > 65535 {
		return 0, ErrInvalidPort
	}
	return port, nil
}

const upperhex = "0123456789ABCDEF"

func normalizeQuery(query string) string {
	for query != "" && chars.IsSpace(query[len(query)-1]) {
		query = query[:len(query)-1]
	}
	if query == "" {
		return "/"
	}
	var b strings.Builder
	b.Grow(len(query) + 1)
	if query[0] != '/' {
		b.WriteByte('/')
	}
	for i := 0; i < len(query); i++ {
		if c := query[i]; c <= 0x20 {
			b.WriteByte('%')
			b.WriteByte(upperhex[c>>4])
			b.WriteByte(upperhex[c&15])
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

func isAllowedInPart(c byte) bool {
	if chars.IsAlphaOrDigit(c) {
		return true
	}
	return strings.IndexByte(".-_!$,~*'();&+=", c) >= 0
}

// checkPart checks the characters of the host or the userinfo.
// Non-ASCII bytes are not checked.
func checkPart(part string, name string, allowColon bool) error {
	for i := 0; i < len(part); i++ {
		c := part[i]
		if isAllowedInPart(c) || (allowColon && c == ':') || c >= 0x80 {
			continue
		}
		if c == '%' {
			if i+2 < len(part) && chars.IsHexDigit(part[i+1]) && chars.IsHexDigit(part[i+2]) {
				i += 2
				continue
			}
			return &ParseError{Part: name, Pos: i, Err: ErrWrongPercentEncoding}
		}
		return &ParseError{Part: name, Pos: i, Err: ErrDisallowedCharacter}
	}
	return nil
}

// asciiLower lower-cases ASCII letters only. Hosts may contain arbitrary
// bytes >= 0x80, which have to be passed through unchanged.
func asciiLower(s string) string {
	for i := 0; i < len(s); i++ {
		if 'A' <= s[i] && s[i] <= 'Z' {
			b := []byte(s)
			for j := i; j < len(b); j++ {
				if 'A' <= b[j] && b[j] <= 'Z' {
					b[j] += 'a' - 'A'
				}
			}
			return string(b)
		}
	}
	return s
}

// ASCIIHost returns the host in its ASCII-compatible encoding (punycode),
// as needed for DNS lookups. IPv6 hosts are returned unchanged.
func (u URL) ASCIIHost() (string, error) {
	if u.isIPv6 {
		return u.host, nil
	}
	return idna.Lookup.ToASCII(norm.NFC.String(u.host))
}

// FileName returns the last path component of the URL, without query and
// fragment. It is empty for URLs which end in '/'.
func (u URL) FileName() string {
	q := u.query
	if i := strings.IndexAny(q, "?#"); i >= 0 {
		q = q[:i]
	}
	return q[strings.LastIndexByte(q, '/')+1:]
}

// FileName parses raw and returns the file name of the resulting URL. For
// URLs which cannot be parsed it returns the empty string.
func FileName(raw string) string {
	u, err := Parse(raw)
	if err != nil {
		tracer().Infof("wrong URL %q: %v", raw, err)
		return ""
	}
	return u.FileName()
}
