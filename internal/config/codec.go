package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tailscale/hujson"
)

const (
	emptyDocument = "{}"
	indentWidth   = 4
)

// parseDocument decodes JSON text into canonical form. Comments and trailing
// commas are accepted; anything else malformed is an error.
func parseDocument(data []byte) (any, error) {
	standard, err := hujson.Standardize(data)
	if err != nil {
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(standard))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}
	return normalize(raw)
}

// encode renders a canonical payload. Object keys are sorted, pretty output
// indents by four spaces, and integral floats keep a ".0" so they read back
// as floats.
func encode(raw any, pretty bool) (string, error) {
	var buf bytes.Buffer
	if err := encodeValue(&buf, raw, pretty, 0); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func encodeValue(buf *bytes.Buffer, raw any, pretty bool, depth int) error {
	switch n := raw.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		buf.WriteString(strconv.FormatBool(n))
	case int64:
		buf.WriteString(strconv.FormatInt(n, 10))
	case float64:
		text, err := formatFloat(n)
		if err != nil {
			return err
		}
		buf.WriteString(text)
	case string:
		return encodeString(buf, n)
	case []any:
		if len(n) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteByte('[')
		for i, elem := range n {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(buf, pretty, depth+1)
			if err := encodeValue(buf, elem, pretty, depth+1); err != nil {
				return err
			}
		}
		newline(buf, pretty, depth)
		buf.WriteByte(']')
	case map[string]any:
		if len(n) == 0 {
			buf.WriteString(emptyDocument)
			return nil
		}
		keys := make([]string, 0, len(n))
		for k := range n {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			newline(buf, pretty, depth+1)
			if err := encodeString(buf, k); err != nil {
				return err
			}
			buf.WriteByte(':')
			if pretty {
				buf.WriteByte(' ')
			}
			if err := encodeValue(buf, n[k], pretty, depth+1); err != nil {
				return err
			}
		}
		newline(buf, pretty, depth)
		buf.WriteByte('}')
	default:
		return fmt.Errorf("cannot encode %T", raw)
	}
	return nil
}

func newline(buf *bytes.Buffer, pretty bool, depth int) {
	if !pretty {
		return
	}
	buf.WriteByte('\n')
	buf.WriteString(strings.Repeat(" ", depth*indentWidth))
}

func encodeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
	return nil
}

// formatFloat follows encoding/json's choice between fixed and exponent
// notation.
func formatFloat(f float64) (string, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("unsupported float value %v", f)
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	text := strconv.FormatFloat(f, format, -1, 64)
	if format == 'e' {
		// clean up e-09 to e-9
		n := len(text)
		if n >= 4 && text[n-4] == 'e' && text[n-3] == '-' && text[n-2] == '0' {
			text = text[:n-2] + text[n-1:]
		}
		return text, nil
	}
	if !strings.ContainsRune(text, '.') {
		text += ".0"
	}
	return text, nil
}
