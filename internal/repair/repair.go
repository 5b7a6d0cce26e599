// Package repair provides tolerant recovery of JSON from raw language-model
// output. Models wrap JSON in prose or markdown fences and sometimes truncate
// it at the output limit; Recover attempts a sequence of increasingly
// aggressive fixes and never fails.
package repair

import (
	"encoding/json"
	"strings"
)

// Recover extracts valid JSON from raw model text. It tries, in order:
// a direct parse, stripping a fenced code block, trimming to the outermost
// bracket span, and appending closers for unbalanced brackets (which handles
// truncation from output limits). When nothing recovers, it returns "{}".
//
// Closer re-appending is a heuristic: it recovers the top-level keys of
// moderately truncated documents but is not guaranteed for every truncation.
func Recover(raw string) string {
	text := strings.TrimSpace(raw)
	if text == "" {
		return "{}"
	}

	if json.Valid([]byte(text)) {
		return text
	}

	text = stripFence(text)
	if json.Valid([]byte(text)) {
		return text
	}

	text = trimToBracketSpan(text)
	if json.Valid([]byte(text)) {
		return text
	}

	if closed := appendClosers(text); json.Valid([]byte(closed)) {
		return closed
	}

	return "{}"
}

// stripFence removes a markdown code fence (```json ... ``` or ``` ... ```)
// wrapper if present.
func stripFence(text string) string {
	if !strings.HasPrefix(text, "```") {
		// The fence may follow leading prose.
		if idx := strings.Index(text, "```"); idx >= 0 {
			text = text[idx:]
		} else {
			return text
		}
	}

	text = strings.TrimPrefix(text, "```")
	// Drop a language identifier on the opening line.
	if idx := strings.Index(text, "\n"); idx >= 0 {
		firstLine := strings.TrimSpace(text[:idx])
		if firstLine != "" && !strings.ContainsAny(firstLine, "{}[]") && len(firstLine) < 20 {
			text = text[idx+1:]
		}
	}
	if idx := strings.LastIndex(text, "```"); idx >= 0 {
		text = text[:idx]
	}
	return strings.TrimSpace(text)
}

// trimToBracketSpan cuts the text down to the span between the first opening
// bracket and the last closer of the same kind.
func trimToBracketSpan(text string) string {
	objStart := strings.Index(text, "{")
	arrStart := strings.Index(text, "[")

	start := objStart
	closer := "}"
	if arrStart >= 0 && (objStart < 0 || arrStart < objStart) {
		start = arrStart
		closer = "]"
	}
	if start < 0 {
		return text
	}

	end := strings.LastIndex(text, closer)
	if end > start {
		return text[start : end+1]
	}
	return text[start:]
}

// appendClosers counts unbalanced braces and brackets outside string
// literals and appends the missing closers in nesting order. An unterminated
// string literal is closed first.
func appendClosers(text string) string {
	var stack []byte
	inString := false
	escaped := false

	for i := 0; i < len(text); i++ {
		c := text[i]
		if escaped {
			escaped = false
			continue
		}
		switch {
		case c == '\\' && inString:
			escaped = true
		case c == '"':
			inString = !inString
		case inString:
		case c == '{' || c == '[':
			stack = append(stack, c)
		case c == '}' || c == ']':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}
		}
	}

	var sb strings.Builder
	sb.WriteString(text)
	if inString {
		sb.WriteByte('"')
	}
	// A truncation mid-value often leaves a dangling comma.
	trimmed := strings.TrimRight(sb.String(), " \t\n\r")
	trimmed = strings.TrimSuffix(trimmed, ",")
	sb.Reset()
	sb.WriteString(trimmed)

	for i := len(stack) - 1; i >= 0; i-- {
		switch stack[i] {
		case '{':
			sb.WriteByte('}')
		case '[':
			sb.WriteByte(']')
		}
	}
	return sb.String()
}
