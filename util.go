package prim

import "errors"

type RandSource interface {
	Uint64() uint64
}

// unquoteJSONNumber strips the quotes from a JSON string holding a number.
// Bare numbers pass through unchanged.
func unquoteJSONNumber(bts []byte) ([]byte, error) {
	if len(bts) == 0 {
		return nil, ErrEmptyInput
	}
	if bts[0] != '"' {
		return bts, nil
	}
	ln := len(bts)
	if ln < 2 || bts[ln-1] != '"' {
		return nil, errors.New("unterminated string")
	}
	return bts[1 : ln-1], nil
}

func isWhite(c byte) bool {
	return c == ' ' || (c >= '\t' && c <= '\r')
}

// trimWhite removes leading and/or trailing whitespace.
func trimWhite(s string, leading, trailing bool) string {
	if leading {
		for len(s) > 0 && isWhite(s[0]) {
			s = s[1:]
		}
	}
	if trailing {
		for len(s) > 0 && isWhite(s[len(s)-1]) {
			s = s[:len(s)-1]
		}
	}
	return s
}
