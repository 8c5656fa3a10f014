// Package textcodec implements the reversible escaping applied to free-text
// columns and the JSON encoding used for list-valued contact columns.
//
// Accented Latin characters and a small set of punctuation are stored with a
// backslash prefix; reading back strips the prefix. The transform sits on top
// of the driver's parameter binding and must stay byte-compatible with rows
// written by earlier versions of the application.
package textcodec

import (
	"encoding/json"
	"fmt"
	"strings"
)

// alphabet is the exact set of characters that get a backslash prefix.
const alphabet = `áàãâäéèêëíìîïóòõôöúùûüçÁÀÃÂÄÉÈÊËÍÌÎÏÓÒÕÔÖÚÙÛÜÇ'"\-`

// Escape prefixes every alphabet character in s with a backslash. All other
// characters pass through unchanged. Escape never fails.
func Escape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if strings.ContainsRune(alphabet, r) {
			b.WriteByte('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Unescape inverts Escape in a single left-to-right pass. A backslash
// followed by an alphabet character collapses to that character; a backslash
// followed by anything else is preserved literally.
func Unescape(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	for i := 0; i < len(runes); i++ {
		if runes[i] == '\\' && i+1 < len(runes) && strings.ContainsRune(alphabet, runes[i+1]) {
			b.WriteRune(runes[i+1])
			i++
			continue
		}
		b.WriteRune(runes[i])
	}
	return b.String()
}

// EscapeAll escapes each value, preserving order.
func EscapeAll(values []string) []string {
	escaped := make([]string, len(values))
	for i, v := range values {
		escaped[i] = Escape(v)
	}
	return escaped
}

// UnescapeAll unescapes each value, preserving order.
func UnescapeAll(values []string) []string {
	plain := make([]string, len(values))
	for i, v := range values {
		plain[i] = Unescape(v)
	}
	return plain
}

// EncodeList serializes values into the JSON array text stored in a single
// column. A nil slice encodes as an empty array.
func EncodeList(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return "", fmt.Errorf("encode stored list: %w", err)
	}
	return string(encoded), nil
}

// DecodeList parses the JSON array text of a list column. Malformed text is
// a data-integrity error and never occurs under normal writes.
func DecodeList(encoded string) ([]string, error) {
	var values []string
	if err := json.Unmarshal([]byte(encoded), &values); err != nil {
		return nil, fmt.Errorf("decode stored list: %w", err)
	}
	return values, nil
}
