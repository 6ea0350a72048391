package ucdparse

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"testing"
)

// TestFile is a line oriented file of test cases. Lines starting with the
// comment marker are skipped, as are empty lines. Test case lines may carry a
// trailing comment, separated by the comment marker as well.
type TestFile struct {
	in      *os.File
	scanner *bufio.Scanner
	marker  string
	text    string
	comment string
}

// DefaultCommentMarker is the comment marker of UCD test files.
const DefaultCommentMarker = "#"

// OpenTestFile opens a test file with the default comment marker.
func OpenTestFile(filename string, t *testing.T) *TestFile {
	return OpenTestFileWithMarker(filename, DefaultCommentMarker, t)
}

// OpenTestFileWithMarker opens a test file with a custom comment marker.
// This is necessary for test cases which contain '#' characters.
func OpenTestFileWithMarker(filename, marker string, t *testing.T) *TestFile {
	f, err := os.Open(filename)
	if err != nil {
		if t != nil {
			t.Errorf("ERROR loading %s", filename)
		} else {
			fmt.Fprintf(os.Stderr, "ERROR loading %s\n", filename)
		}
		return nil
	}
	tf := &TestFile{marker: marker}
	tf.in = f
	tf.scanner = bufio.NewScanner(f)
	return tf
}

// Scan reads the next test case. It returns false at the end of the file
// or on error.
func (tf *TestFile) Scan() bool {
	for tf.scanner.Scan() {
		line := strings.TrimSpace(tf.scanner.Text())
		if line == "" || strings.HasPrefix(line, tf.marker) {
			continue
		}
		tf.text, tf.comment = line, ""
		if i := strings.Index(line, " "+tf.marker); i >= 0 {
			tf.text = strings.TrimSpace(line[:i])
			tf.comment = strings.TrimSpace(line[i+1+len(tf.marker):])
		}
		return true
	}
	return false
}

// Text returns the test case of the current line.
func (tf *TestFile) Text() string {
	return tf.text
}

// Comment returns the comment of the current line, if any.
func (tf *TestFile) Comment() string {
	return tf.comment
}

// Err returns the first error encountered while reading the file.
func (tf *TestFile) Err() error {
	return tf.scanner.Err()
}

// Close closes the underlying file.
func (tf *TestFile) Close() {
	tf.in.Close()
}

// Markers for expected spans within test input.
const (
	SpanOpen  = '«'
	SpanClose = '»'
)

// SpanTestInput breaks up a test case into an input text and the expected
// spans within it. Expected spans are enclosed in '«' and '»', which are
// removed from the input. Spans are half-open byte ranges into the returned
// input.
//
//    "hi «@abcde», «@xyzxy»"  =>  "hi @abcde, @xyzxy", [[3 9] [11 17]]
//
func SpanTestInput(ti string) (string, [][2]int) {
	var b strings.Builder
	b.Grow(len(ti))
	spans := make([][2]int, 0, 4)
	begin := -1
	for _, r := range ti {
		switch r {
		case SpanOpen:
			begin = b.Len()
		case SpanClose:
			if begin >= 0 {
				spans = append(spans, [2]int{begin, b.Len()})
				begin = -1
			}
		default:
			b.WriteRune(r)
		}
	}
	return b.String(), spans
}
