package utf8text

// The platform measures entity offsets and lengths in UTF-16 code units.
// Characters encoded with 4 bytes in UTF-8 need a surrogate pair, i.e. two
// UTF-16 code units; all others need exactly one.

// UTF16Length returns the number of UTF-16 code units needed to encode s.
func UTF16Length(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if IsFirstCodeUnit(c) {
			n++
			if c >= 0xf0 {
				n++
			}
		}
	}
	return n
}

// UTF16Truncate returns the longest prefix of s which fits into n UTF-16
// code units. A surrogate pair is never split.
func UTF16Truncate(s string, n int) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !IsFirstCodeUnit(c) {
			continue
		}
		units := 1
		if c >= 0xf0 {
			units = 2
		}
		if n < units {
			return s[:i]
		}
		n -= units
	}
	return s
}

// UTF16Substr returns at most length UTF-16 code units of s, starting at
// UTF-16 offset. An offset pointing into the middle of a surrogate pair
// skips the whole character.
func UTF16Substr(s string, offset, length int) string {
	s = s[len(utf16Prefix(s, offset)):]
	return UTF16Truncate(s, length)
}

// utf16Prefix returns the shortest prefix of s covering at least n UTF-16
// code units.
func utf16Prefix(s string, n int) string {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !IsFirstCodeUnit(c) {
			continue
		}
		if n <= 0 {
			return s[:i]
		}
		n--
		if c >= 0xf0 {
			n--
		}
	}
	return s
}

// UTF16Offset converts a byte position within s to an offset in UTF-16
// code units. pos has to be a character boundary.
func UTF16Offset(s string, pos int) int {
	if pos > len(s) {
		pos = len(s)
	}
	return UTF16Length(s[:pos])
}
