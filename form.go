package main

import "strings"

// percentDecode resolves %XX escapes. Malformed escapes are passed
// through literally; this codec is tolerant, like the header parser.
func percentDecode(s string) string {
	if !strings.Contains(s, "%") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '%' && i+2 < len(s) {
			hi, ok1 := unhex(s[i+1])
			lo, ok2 := unhex(s[i+2])
			if ok1 && ok2 {
				b.WriteByte(hi<<4 | lo)
				i += 2
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// formDecode additionally maps '+' to space, which only applies to
// form/query values, never to the path.
func formDecode(s string) string {
	if strings.Contains(s, "+") {
		s = strings.ReplaceAll(s, "+", " ")
	}
	return percentDecode(s)
}

func unhex(c byte) (byte, bool) {
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

// parseFormInto decodes key=value&... pairs into params. Later pairs
// overwrite earlier ones, so callers control precedence by call order.
// Empty pairs are skipped; a pair without '=' becomes key with empty value.
func parseFormInto(params map[string]string, s string) {
	for _, pair := range strings.Split(s, "&") {
		if pair == "" {
			continue
		}
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		params[formDecode(key)] = formDecode(value)
	}
}
