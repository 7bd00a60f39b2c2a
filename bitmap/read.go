package bitmap

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

// Read reads a bitmap in text form: one row per line, each bit written as
// '0' or '1'. Blank lines and lines starting with "//" are ignored. All rows
// must have the same length.
//
func Read(r io.Reader) (*Bitmap, error) {
	var rows []string
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	line := 0
	for s.Scan() {
		line++
		t := strings.TrimSpace(s.Text())
		if t == "" || strings.HasPrefix(t, "//") {
			continue
		}
		if len(rows) > 0 && len(t) != len(rows[0]) {
			return nil, errors.Errorf("line %d: row length %d, expected %d", line, len(t), len(rows[0]))
		}
		for i, c := range t {
			if c != '0' && c != '1' {
				return nil, errors.Errorf("line %d: invalid bit %q at column %d", line, c, i+1)
			}
		}
		rows = append(rows, t)
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrap(err, "read bitmap")
	}
	if len(rows) == 0 {
		return New(0, 0), nil
	}

	b := New(len(rows[0]), len(rows))
	for y, t := range rows {
		for x := 0; x < len(t); x++ {
			if t[x] == '1' {
				b.Set(y, x, true)
			}
		}
	}
	return b, nil
}
