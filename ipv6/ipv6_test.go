package ipv6

import (
	"errors"
	"testing"
)

func TestParseValid(t *testing.T) {
	cases := []struct {
		in   string
		addr Address
	}{
		{"2001:db8::1", Address{0x2001, 0x0db8, 0, 0, 0, 0, 0, 1}},
		{"::", Address{}},
		{"::1", Address{0, 0, 0, 0, 0, 0, 0, 1}},
		{"1::", Address{1, 0, 0, 0, 0, 0, 0, 0}},
		{"::ffff:192.0.2.1", Address{0, 0, 0, 0, 0, 0xffff, 0xc000, 0x0201}},
		{"1:2:3:4:5:6:7:8", Address{1, 2, 3, 4, 5, 6, 7, 8}},
		{"1:2:3:4:5:6:1.2.3.4", Address{1, 2, 3, 4, 5, 6, 0x0102, 0x0304}},
		{"FE80::ABCD:0", Address{0xfe80, 0, 0, 0, 0, 0, 0xabcd, 0}},
		{"0:0:0:0:0:0:0:0", Address{}},
		{"::0.0.0.0", Address{}},
	}
	for _, c := range cases {
		addr, err := Parse(c.in)
		if err != nil {
			t.Errorf("expected %q to parse, have error: %v", c.in, err)
			continue
		}
		if addr != c.addr {
			t.Errorf("expected %q to parse to %04x, is %04x", c.in, c.addr, addr)
		}
	}
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{
		"",
		"1:2:3:4:5:6:7:8:9", // too many pieces
		"1::2::3",           // double compression
		"1:2:3:4:5:6:7",     // too few pieces
		":1:2:3:4:5:6:7:8",  // leading single colon
		"1:2:3:4:5:6:7:",    // trailing colon
		"1:2:3:4:5:6:7::8",  // compression of nothing
		"12345::",           // piece too long
		"::g",
		"::1.2.3",               // short dotted quad
		"::1.2.3.4.5",           // long dotted quad
		"::1.2.3.256",           // octet out of range
		"::1.2.03.4",            // leading zero
		"1:2:3:4:5:6:7:1.2.3.4", // no room for IPv4
		"::.1.2.3",
		"::1..2.3",
		"::1.2.3.4x",
		"[::1]",
		"::1\x00",
	} {
		if addr, err := Parse(in); err == nil {
			t.Errorf("expected %q to fail, parsed to %04x", in, addr)
		} else if !errors.Is(err, ErrMalformed) {
			t.Errorf("expected error for %q to be ErrMalformed, is %v", in, err)
		}
	}
}

func TestParseBracketed(t *testing.T) {
	addr, err := ParseBracketed("[::1]")
	if err != nil {
		t.Fatal(err)
	}
	if addr != (Address{7: 1}) {
		t.Errorf("expected ::1, have %04x", addr)
	}
	for _, in := range []string{"::1", "[::1", "::1]", "[]", "["} {
		if _, err := ParseBracketed(in); err == nil {
			t.Errorf("expected %q to fail", in)
		}
	}
}

func TestString(t *testing.T) {
	for _, in := range []string{
		"2001:db8::1",
		"::",
		"::1",
		"1::",
		"1:2:3:4:5:6:7:8",
		"1:0:3:4:5:6:7:8", // single zero piece is not compressed
		"1:0:0:4:0:0:0:8", // longest run wins
		"1:0:0:4:5:0:0:8", // first run wins on a tie
		"::ffff:192.0.2.1",
		"fe80::abcd:0",
	} {
		addr, err := Parse(in)
		if err != nil {
			t.Fatal(err)
		}
		want := in
		switch in {
		case "1:0:0:4:0:0:0:8":
			want = "1:0:0:4::8"
		case "1:0:0:4:5:0:0:8":
			want = "1::4:5:0:0:8"
		}
		if s := addr.String(); s != want {
			t.Errorf("expected %q to print as %q, is %q", in, want, s)
		}
	}
}

func TestIs4In6(t *testing.T) {
	addr, _ := Parse("::ffff:10.0.0.1")
	if !addr.Is4In6() {
		t.Errorf("expected %v to be an IPv4-mapped address", addr)
	}
	addr, _ = Parse("::10.0.0.1")
	if addr.Is4In6() {
		t.Errorf("expected %v not to be an IPv4-mapped address", addr)
	}
}
