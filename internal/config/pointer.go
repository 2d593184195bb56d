package config

import (
	"fmt"
	"strings"

	suzuerrors "github.com/suzu-editor/suzu/internal/errors"
)

// pointer is a parsed, unescaped document pointer. A nil pointer is the root.
type pointer []string

// parsePointer parses slash-separated pointer syntax with ~0 and ~1 escapes.
// Both "" and "/" address the root.
func parsePointer(s string) (pointer, error) {
	if s == "" || s == "/" {
		return nil, nil
	}
	if s[0] != '/' {
		return nil, suzuerrors.WrapPath(suzuerrors.ErrCodeInvalidParameter, s, "pointer must start with '/'", nil)
	}

	parts := strings.Split(s[1:], "/")
	for i, part := range parts {
		token, err := unescapeToken(part)
		if err != nil {
			return nil, suzuerrors.WrapPath(suzuerrors.ErrCodeInvalidParameter, s, "invalid pointer", err)
		}
		parts[i] = token
	}
	return pointer(parts), nil
}

func unescapeToken(part string) (string, error) {
	if !strings.Contains(part, "~") {
		return part, nil
	}
	var b strings.Builder
	for i := 0; i < len(part); i++ {
		if part[i] != '~' {
			b.WriteByte(part[i])
			continue
		}
		if i+1 >= len(part) {
			return "", fmt.Errorf("dangling '~' in %q", part)
		}
		switch part[i+1] {
		case '0':
			b.WriteByte('~')
		case '1':
			b.WriteByte('/')
		default:
			return "", fmt.Errorf("invalid escape '~%c' in %q", part[i+1], part)
		}
		i++
	}
	return b.String(), nil
}

// String renders the pointer back to its escaped form.
func (p pointer) String() string {
	if len(p) == 0 {
		return ""
	}
	var b strings.Builder
	for _, token := range p {
		b.WriteByte('/')
		token = strings.ReplaceAll(token, "~", "~0")
		b.WriteString(strings.ReplaceAll(token, "/", "~1"))
	}
	return b.String()
}

// JoinPointer appends raw, unescaped tokens to base and returns the escaped
// pointer. A base of "" or "/" is the root.
func JoinPointer(base string, tokens ...string) (string, error) {
	p, err := parsePointer(base)
	if err != nil {
		return "", err
	}
	joined := make(pointer, 0, len(p)+len(tokens))
	joined = append(joined, p...)
	joined = append(joined, tokens...)
	return joined.String(), nil
}

// arrayIndex parses a decimal index without leading zeros.
func arrayIndex(token string) (int, error) {
	if token == "" {
		return 0, fmt.Errorf("empty array index")
	}
	if len(token) > 1 && token[0] == '0' {
		return 0, fmt.Errorf("array index %q has leading zeros", token)
	}
	n := 0
	for i := 0; i < len(token); i++ {
		c := token[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("array index %q is not a number", token)
		}
		if n > (maxIndex-int(c-'0'))/10 {
			return 0, fmt.Errorf("array index %q is out of range", token)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

const maxIndex = int(^uint(0) >> 1)

// maxArrayPad bounds how many nulls a single write may pad an array with.
const maxArrayPad = 1024

// lookup resolves p against root without modifying anything.
func lookup(root any, p pointer) (any, bool) {
	node := root
	for _, token := range p {
		switch n := node.(type) {
		case map[string]any:
			child, ok := n[token]
			if !ok {
				return nil, false
			}
			node = child
		case []any:
			idx, err := arrayIndex(token)
			if err != nil || idx >= len(n) {
				return nil, false
			}
			node = n[idx]
		default:
			return nil, false
		}
	}
	return node, true
}

// setAt returns a new tree with val stored at p. Containers along the path
// are copied, everything else is shared with node, and node itself is never
// modified. A null node turns into an array when the token is "0" and into an
// object otherwise; "-" appends to an array and indices past the end pad with
// nulls.
func setAt(node any, p pointer, val any) (any, error) {
	if len(p) == 0 {
		return val, nil
	}
	token, rest := p[0], p[1:]

	if node == nil {
		if token == "0" {
			node = []any{}
		} else {
			node = map[string]any{}
		}
	}

	switch n := node.(type) {
	case map[string]any:
		child, err := setAt(n[token], rest, val)
		if err != nil {
			return nil, err
		}
		out := make(map[string]any, len(n)+1)
		for k, v := range n {
			out[k] = v
		}
		out[token] = child
		return out, nil

	case []any:
		idx := len(n)
		if token != "-" {
			var err error
			idx, err = arrayIndex(token)
			if err != nil {
				return nil, suzuerrors.Wrap(suzuerrors.ErrCodeInvalidParameter, "invalid array index", err)
			}
		}
		if idx > len(n)+maxArrayPad {
			return nil, suzuerrors.InvalidParameter(fmt.Sprintf("array index %d is more than %d past the end", idx, maxArrayPad))
		}
		var current any
		if idx < len(n) {
			current = n[idx]
		}
		child, err := setAt(current, rest, val)
		if err != nil {
			return nil, err
		}
		size := len(n)
		if idx >= size {
			size = idx + 1
		}
		out := make([]any, size)
		copy(out, n)
		out[idx] = child
		return out, nil

	default:
		return nil, suzuerrors.InvalidParameter(fmt.Sprintf("cannot address %q inside a %s", token, wrap(node).Kind()))
	}
}
