// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"strings"
)

// contentText returns the text shown by a decoded page content stream.
// String operands of Tj, TJ, ' and " are emitted in stream order; text
// positioning operators start a new line.
func contentText(data []byte) string {
	var sb strings.Builder
	var operands []string

	newline := func() {
		if sb.Len() > 0 && !strings.HasSuffix(sb.String(), "\n") {
			sb.WriteByte('\n')
		}
	}
	show := func() {
		for _, s := range operands {
			sb.WriteString(s)
		}
	}

	for i := 0; i < len(data); {
		c := data[i]
		switch {
		case isWhite(c):
			i++
		case c == '%':
			for i < len(data) && data[i] != '\n' && data[i] != '\r' {
				i++
			}
		case c == '(':
			s, n := literalString(data[i:])
			operands = append(operands, s)
			i += n
		case c == '<' && i+1 < len(data) && data[i+1] == '<':
			i += 2
		case c == '<':
			s, n := hexString(data[i:])
			operands = append(operands, s)
			i += n
		case c == '>' || c == '[' || c == ']' || c == '{' || c == '}':
			i++
		case c == '/':
			// Name operand.
			i++
			for i < len(data) && !isWhite(data[i]) && !isDelim(data[i]) {
				i++
			}
		default:
			start := i
			for i < len(data) && !isWhite(data[i]) && !isDelim(data[i]) {
				i++
			}
			if i == start {
				i++
				continue
			}
			tok := string(data[start:i])
			if isOperand(tok) {
				continue
			}
			switch tok {
			case "Tj", "TJ":
				show()
			case "'", `"`:
				newline()
				show()
			case "T*", "Td", "TD", "Tm", "ET":
				newline()
			}
			operands = operands[:0]
		}
	}
	return sb.String()
}

// literalString decodes a (...) string starting at data[0] and returns it
// with the number of bytes consumed. Balanced parentheses nest.
func literalString(data []byte) (string, int) {
	var out []byte
	depth := 0
	i := 0
	for ; i < len(data); i++ {
		c := data[i]
		switch {
		case c == '(':
			if depth > 0 {
				out = append(out, c)
			}
			depth++
		case c == ')':
			depth--
			if depth == 0 {
				return latin1(out), i + 1
			}
			out = append(out, c)
		case c == '\\' && i+1 < len(data):
			i++
			switch e := data[i]; e {
			case 'n':
				out = append(out, '\n')
			case 'r':
				out = append(out, '\r')
			case 't':
				out = append(out, '\t')
			case 'b':
				out = append(out, '\b')
			case 'f':
				out = append(out, '\f')
			case '\r':
				if i+1 < len(data) && data[i+1] == '\n' {
					i++
				}
			case '\n':
				// Line continuation.
			default:
				if e >= '0' && e <= '7' {
					v := int(e - '0')
					for k := 0; k < 2 && i+1 < len(data) && data[i+1] >= '0' && data[i+1] <= '7'; k++ {
						i++
						v = v*8 + int(data[i]-'0')
					}
					out = append(out, byte(v))
				} else {
					out = append(out, e)
				}
			}
		default:
			out = append(out, c)
		}
	}
	return latin1(out), i
}

// hexString decodes a <...> string starting at data[0].
func hexString(data []byte) (string, int) {
	var out []byte
	var hi byte
	half := false
	i := 1
	for ; i < len(data) && data[i] != '>'; i++ {
		v, ok := hexVal(data[i])
		if !ok {
			continue
		}
		if half {
			out = append(out, hi<<4|v)
		} else {
			hi = v
		}
		half = !half
	}
	if half {
		out = append(out, hi<<4)
	}
	if i < len(data) {
		i++
	}
	return latin1(out), i
}

// latin1 maps each byte to the rune of the same value so the result is
// always valid UTF-8.
func latin1(b []byte) string {
	r := make([]rune, len(b))
	for i, c := range b {
		r[i] = rune(c)
	}
	return string(r)
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

func isWhite(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == 0
}

func isDelim(c byte) bool {
	return strings.IndexByte("()<>[]{}/%", c) >= 0
}

// isOperand reports whether tok is a number or keyword operand rather than
// an operator.
func isOperand(tok string) bool {
	switch tok {
	case "true", "false", "null":
		return true
	}
	c := tok[0]
	return c == '+' || c == '-' || c == '.' || (c >= '0' && c <= '9')
}
