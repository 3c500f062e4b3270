package services

import (
	"strings"
)

const upperhex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s the way browsers' encodeURIComponent
// does: the unreserved marks A-Z a-z 0-9 - _ . ! ~ * ' ( ) pass through and
// every other UTF-8 byte becomes %XX. Invalid UTF-8 is replaced with U+FFFD
// first so the output is always decodable.
func EncodeURIComponent(s string) string {
	s = strings.ToValidUTF8(s, "\uFFFD")

	var b strings.Builder
	b.Grow(len(s) * 3)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if isUnreservedMark(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0F])
	}
	return b.String()
}

func isUnreservedMark(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// BuildMailtoHref assembles mailto:<recipient>?subject=...&body=... with
// both header values percent-encoded. The recipient is used verbatim.
func BuildMailtoHref(recipient, subject, body string) string {
	var b strings.Builder
	b.WriteString("mailto:")
	b.WriteString(recipient)
	b.WriteString("?subject=")
	b.WriteString(EncodeURIComponent(subject))
	b.WriteString("&body=")
	b.WriteString(EncodeURIComponent(body))
	return b.String()
}
