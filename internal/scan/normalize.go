package scan

import (
	"bytes"
	"strings"
)

// Normalize strips comments and whitespace from text content ahead of
// hashing, so cosmetic edits do not change a file's fingerprint. The file
// type is selected by extension; anything outside the known text dialects
// (binary data included) passes through untouched and is hashed raw.
// Normalizing already-normalized content is a no-op.
func Normalize(data []byte, ext string) []byte {
	switch strings.ToLower(ext) {
	case ".lua":
		return normalizeLua(data)
	case ".xml":
		return normalizeXML(data)
	default:
		return data
	}
}

// normalizeLua removes -- line comments and --[[ ]] long comments
// (including leveled --[==[ ]==] forms) and drops whitespace between
// tokens, in a single pass over the input. String literals pass through
// verbatim, so a marker inside a string is never treated as a comment.
// Comment dashes only count where they are adjacent in the input; when a
// removed span would push two '-' tokens together, a single space is kept
// so the output never gains a marker the input did not have. The hash
// skips whitespace, so a kept space never reaches a fingerprint.
func normalizeLua(data []byte) []byte {
	out := make([]byte, 0, len(data))
	i := 0
	for i < len(data) {
		b := data[i]
		switch {
		case b == '"' || b == '\'':
			quote := b
			out = append(out, b)
			i++
			for i < len(data) {
				c := data[i]
				out = append(out, c)
				i++
				if c == '\\' && i < len(data) {
					out = append(out, data[i])
					i++
					continue
				}
				if c == quote || c == '\n' {
					break
				}
			}
		case b == '[':
			if level, ok := longBracketOpen(data[i:]); ok {
				end := longBracketEnd(data, i, level)
				out = append(out, data[i:end]...)
				i = end
			} else {
				out = append(out, b)
				i++
			}
		case b == '-' && i+1 < len(data) && data[i+1] == '-':
			j := i + 2
			if level, ok := longBracketOpen(data[j:]); ok {
				i = longBracketEnd(data, j, level)
			} else {
				for i = j; i < len(data) && data[i] != '\n'; i++ {
				}
			}
			out = keepDashGap(out, data, i)
		case isHashWhitespace(b):
			for i < len(data) && isHashWhitespace(data[i]) {
				i++
			}
			out = keepDashGap(out, data, i)
		default:
			out = append(out, b)
			i++
		}
	}
	return out
}

// keepDashGap appends one space when the bytes on either side of a removed
// span would otherwise splice into "--". Two adjacent dashes ahead open a
// comment and vanish on their own, so they need no gap.
func keepDashGap(out, data []byte, i int) []byte {
	if len(out) == 0 || out[len(out)-1] != '-' {
		return out
	}
	if i >= len(data) || data[i] != '-' {
		return out
	}
	if i+1 < len(data) && data[i+1] == '-' {
		return out
	}
	return append(out, ' ')
}

// longBracketOpen reports whether data starts a Lua long bracket ("[[",
// "[=[", ...) and returns its level (the number of '=' signs).
func longBracketOpen(data []byte) (int, bool) {
	if len(data) == 0 || data[0] != '[' {
		return 0, false
	}
	j := 1
	for j < len(data) && data[j] == '=' {
		j++
	}
	if j < len(data) && data[j] == '[' {
		return j - 1, true
	}
	return 0, false
}

// longBracketEnd returns the index just past the closing bracket of the
// long bracket opening at data[start], or len(data) when unterminated.
func longBracketEnd(data []byte, start, level int) int {
	closing := make([]byte, 0, level+2)
	closing = append(closing, ']')
	for k := 0; k < level; k++ {
		closing = append(closing, '=')
	}
	closing = append(closing, ']')

	body := start + level + 2
	idx := bytes.Index(data[body:], closing)
	if idx < 0 {
		return len(data)
	}
	return body + idx + len(closing)
}

var (
	xmlCommentOpen  = []byte("<!--")
	xmlCommentClose = []byte("-->")
)

// normalizeXML removes <!-- --> comments and whitespace in one pass. As
// with Lua, a space survives wherever removal would splice the remaining
// bytes toward a comment opener that was not in the input.
func normalizeXML(data []byte) []byte {
	out := make([]byte, 0, len(data))
	i := 0
	for i < len(data) {
		if bytes.HasPrefix(data[i:], xmlCommentOpen) {
			rest := data[i+len(xmlCommentOpen):]
			end := bytes.Index(rest, xmlCommentClose)
			if end < 0 {
				return out
			}
			i += len(xmlCommentOpen) + end + len(xmlCommentClose)
			out = keepMarkerGap(out, data, i)
			continue
		}
		if isHashWhitespace(data[i]) {
			for i < len(data) && isHashWhitespace(data[i]) {
				i++
			}
			out = keepMarkerGap(out, data, i)
			continue
		}
		out = append(out, data[i])
		i++
	}
	return out
}

// keepMarkerGap appends one space when a removed span would let the
// surrounding bytes advance toward "<!--".
func keepMarkerGap(out, data []byte, i int) []byte {
	if len(out) == 0 || i >= len(data) {
		return out
	}
	prev, next := out[len(out)-1], data[i]
	if (prev == '<' && next == '!') || ((prev == '!' || prev == '-') && next == '-') {
		return append(out, ' ')
	}
	return out
}
