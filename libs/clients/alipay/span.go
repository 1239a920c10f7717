package alipay

import "strings"

// SignedSpan returns the exact text of the JSON object that follows the first
// occurrence of field in raw. The object is found by brace balancing rather
// than by re-encoding, so the bytes are the ones the gateway signed.
//
// Malformed input (field absent, no opening brace, no matching close) yields "".
func SignedSpan(raw, field string) string {
	at := strings.Index(raw, field)
	if at < 0 {
		return ""
	}
	open := strings.IndexByte(raw[at:], '{')
	if open < 0 {
		return ""
	}
	start := at + open

	depth := 0
	for i := start + 1; i < len(raw); i++ {
		switch raw[i] {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return raw[start : i+1]
			}
			depth--
		}
	}
	return ""
}
