package extract

import "strings"

// decodeContentStream recovers the text drawn by a PDF page content
// stream. String operands are buffered and committed by the
// text-showing operators (Tj, TJ, ' and "); the positioning operators
// Td, TD and T* and the ET block end commit a line break so the
// segmentation heuristics see the document's line structure instead of
// raw operators. Glyph codes outside simple encodings come through as
// raw bytes; that is acceptable for the report-style PDFs this handles.
func decodeContentStream(stream []byte) string {
	var out strings.Builder
	var pending []string

	commit := func() {
		for _, s := range pending {
			out.WriteString(s)
		}
		pending = pending[:0]
	}
	newline := func() {
		if out.Len() > 0 {
			out.WriteByte('\n')
		}
	}

	i, n := 0, len(stream)
	for i < n {
		c := stream[i]
		switch {
		case c == '%':
			for i < n && stream[i] != '\n' && stream[i] != '\r' {
				i++
			}
		case c == '(':
			s, next := parseLiteralString(stream, i)
			pending = append(pending, s)
			i = next
		case c == '<':
			if i+1 < n && stream[i+1] == '<' {
				// dictionary open, not a string
				i += 2
				continue
			}
			s, next := parseHexString(stream, i)
			pending = append(pending, s)
			i = next
		case isRegularChar(c):
			start := i
			for i < n && isRegularChar(stream[i]) {
				i++
			}
			switch token := string(stream[start:i]); token {
			case "Tj", "TJ":
				commit()
			case "'", "\"":
				newline()
				commit()
			case "Td", "TD", "T*", "ET":
				newline()
				pending = pending[:0]
			default:
				// numbers and names are operands still waiting for their
				// operator; any other operator consumes the buffer
				if !isOperandToken(token) {
					pending = pending[:0]
				}
			}
		default:
			i++
		}
	}
	commit()
	return out.String()
}

// parseLiteralString decodes a PDF literal string starting at "(" and
// returns the decoded text and the index past the closing ")".
func parseLiteralString(stream []byte, start int) (string, int) {
	var b strings.Builder
	depth := 0
	i, n := start, len(stream)

	for i < n {
		switch c := stream[i]; c {
		case '\\':
			if i+1 >= n {
				return b.String(), n
			}
			i++
			switch e := stream[i]; e {
			case 'n':
				b.WriteByte('\n')
			case 'r':
				b.WriteByte('\r')
			case 't':
				b.WriteByte('\t')
			case 'b':
				b.WriteByte('\b')
			case 'f':
				b.WriteByte('\f')
			case '(', ')', '\\':
				b.WriteByte(e)
			case '\r':
				// escaped line break: continuation, emits nothing
				if i+1 < n && stream[i+1] == '\n' {
					i++
				}
			case '\n':
			default:
				if e >= '0' && e <= '7' {
					v := int(e - '0')
					for k := 0; k < 2 && i+1 < n && stream[i+1] >= '0' && stream[i+1] <= '7'; k++ {
						i++
						v = v*8 + int(stream[i]-'0')
					}
					b.WriteByte(byte(v))
				} else {
					b.WriteByte(e)
				}
			}
			i++
		case '(':
			if depth > 0 {
				b.WriteByte('(')
			}
			depth++
			i++
		case ')':
			depth--
			if depth == 0 {
				return b.String(), i + 1
			}
			b.WriteByte(')')
			i++
		default:
			b.WriteByte(c)
			i++
		}
	}
	return b.String(), n
}

// parseHexString decodes a PDF hex string starting at "<" and returns
// the decoded text and the index past the closing ">". An odd final
// digit is padded with zero per the PDF string rules.
func parseHexString(stream []byte, start int) (string, int) {
	var digits []byte
	i, n := start+1, len(stream)
	for i < n && stream[i] != '>' {
		if isHexDigit(stream[i]) {
			digits = append(digits, stream[i])
		}
		i++
	}
	if i < n {
		i++
	}
	if len(digits)%2 == 1 {
		digits = append(digits, '0')
	}

	var b strings.Builder
	for k := 0; k+1 < len(digits); k += 2 {
		b.WriteByte(hexValue(digits[k])<<4 | hexValue(digits[k+1]))
	}
	return b.String(), i
}

// isRegularChar reports whether c is a PDF regular character, i.e.
// neither whitespace nor one of the delimiters ()<>[]{}/%.
func isRegularChar(c byte) bool {
	switch c {
	case 0, '\t', '\n', '\f', '\r', ' ':
		return false
	case '(', ')', '<', '>', '[', ']', '{', '}', '/', '%':
		return false
	}
	return true
}

// isOperandToken reports tokens that are operands rather than
// operators: numbers and the bare keywords that can sit between a
// string and its showing operator.
func isOperandToken(token string) bool {
	if token == "" || token == "true" || token == "false" || token == "null" {
		return true
	}
	switch token[0] {
	case '+', '-', '.', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return true
	}
	return false
}

func isHexDigit(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}
