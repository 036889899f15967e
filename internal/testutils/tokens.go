// Package testutils holds helpers shared by the test files of several packages.
// Only _test.go files import it.
package testutils

import "strings"

// TamperSignature returns token with one character of its signature segment changed.
// The first signature character is altered so the change always affects decoded bytes.
func TamperSignature(token string) string {
	idx := strings.LastIndex(token, ".")
	if idx < 0 || idx == len(token)-1 {
		return token + "x"
	}

	b := []byte(token)
	if b[idx+1] == 'A' {
		b[idx+1] = 'B'
	} else {
		b[idx+1] = 'A'
	}
	return string(b)
}
