package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// unescape decodes a quoted string literal (quotes included) into the child
// name it denotes. Both quote kinds accept the same JSON-style escapes:
// \" \' \\ \/ \b \f \n \r \t and \uXXXX with hex digits of either case.
// Surrogate pairs must be complete; raw control characters are rejected.
func unescape(literal string) (string, error) {
	body := literal[1 : len(literal)-1]

	var builder strings.Builder

	for i := 0; i < len(body); {
		c := body[i]
		if c != '\\' {
			if c < 0x20 {
				return "", fmt.Errorf("%w: raw control character U+%04X", ErrInvalidEscape, c)
			}

			builder.WriteByte(c)
			i++

			continue
		}

		i++
		switch body[i] {
		case '"', '\'', '\\', '/':
			builder.WriteByte(body[i])
			i++
		case 'b':
			builder.WriteByte('\b')
			i++
		case 'f':
			builder.WriteByte('\f')
			i++
		case 'n':
			builder.WriteByte('\n')
			i++
		case 'r':
			builder.WriteByte('\r')
			i++
		case 't':
			builder.WriteByte('\t')
			i++
		case 'u':
			r, consumed, err := decodeUnicodeEscape(body[i-1:])
			if err != nil {
				return "", err
			}

			builder.WriteRune(r)

			i += consumed - 1
		default:
			return "", fmt.Errorf("%w: \\%c", ErrInvalidEscape, body[i])
		}
	}

	return builder.String(), nil
}

// decodeUnicodeEscape decodes a \uXXXX escape at the start of s, consuming a
// second \uXXXX when the first is a UTF-16 high surrogate. It returns the
// decoded rune and the number of bytes consumed.
func decodeUnicodeEscape(s string) (rune, int, error) {
	first, err := hexEscape(s)
	if err != nil {
		return 0, 0, err
	}

	if !utf16.IsSurrogate(first) {
		return first, 6, nil
	}

	second, err := hexEscape(s[6:])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: unpaired surrogate \\u%04X", ErrInvalidEscape, first)
	}

	combined := utf16.DecodeRune(first, second)
	if combined == utf8.RuneError {
		return 0, 0, fmt.Errorf("%w: invalid surrogate pair \\u%04X\\u%04X", ErrInvalidEscape, first, second)
	}

	return combined, 12, nil
}

// hexEscape parses a \uXXXX sequence at the start of s.
func hexEscape(s string) (rune, error) {
	if len(s) < 6 || s[0] != '\\' || s[1] != 'u' {
		return 0, fmt.Errorf("%w: truncated \\u escape", ErrInvalidEscape)
	}

	for i := 2; i < 6; i++ {
		if !isHexDigit(s[i]) {
			return 0, fmt.Errorf("%w: \\u%s", ErrInvalidEscape, s[2:6])
		}
	}

	v, err := strconv.ParseUint(s[2:6], 16, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: \\u%s", ErrInvalidEscape, s[2:6])
	}

	return rune(v), nil
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}
