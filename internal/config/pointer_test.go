package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePointer(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    pointer
		wantErr bool
	}{
		{"empty is root", "", nil, false},
		{"slash is root", "/", nil, false},
		{"single key", "/logfile", pointer{"logfile"}, false},
		{"nested", "/a/b/0", pointer{"a", "b", "0"}, false},
		{"empty trailing key", "/a/", pointer{"a", ""}, false},
		{"escaped slash", "/a~1b", pointer{"a/b"}, false},
		{"escaped tilde", "/m~0n", pointer{"m~n"}, false},
		{"escape order", "/~01", pointer{"~1"}, false},
		{"missing slash", "logfile", nil, true},
		{"dangling tilde", "/a~", nil, true},
		{"bad escape", "/a~2", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parsePointer(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPointer_String(t *testing.T) {
	assert.Equal(t, "", pointer(nil).String())
	assert.Equal(t, "/a~1b/m~0n/0", pointer{"a/b", "m~n", "0"}.String())
}

func TestArrayIndex(t *testing.T) {
	tests := []struct {
		token   string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"7", 7, false},
		{"123", 123, false},
		{"", 0, true},
		{"01", 0, true},
		{"-1", 0, true},
		{"1a", 0, true},
		{"-", 0, true},
		{"99999999999999999999999", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, err := arrayIndex(tt.token)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSetAt_DoesNotModifyInput(t *testing.T) {
	original := map[string]any{
		"a":    map[string]any{"b": int64(1)},
		"list": []any{int64(1)},
	}

	updated, err := setAt(original, pointer{"a", "c"}, "new")
	require.NoError(t, err)
	_, err = setAt(original, pointer{"list", "-"}, int64(2))
	require.NoError(t, err)

	assert.Len(t, original["a"].(map[string]any), 1)
	assert.Len(t, original["list"].([]any), 1)
	assert.Equal(t, "new", updated.(map[string]any)["a"].(map[string]any)["c"])
}

func TestLookup(t *testing.T) {
	doc := map[string]any{"a": []any{map[string]any{"b": "x"}}}

	got, ok := lookup(doc, pointer{"a", "0", "b"})
	assert.True(t, ok)
	assert.Equal(t, "x", got)

	_, ok = lookup(doc, pointer{"a", "1"})
	assert.False(t, ok)

	_, ok = lookup(doc, pointer{"a", "0", "b", "c"})
	assert.False(t, ok)
}

func TestJoinPointer(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		tokens []string
		want   string
	}{
		{"root", "", []string{"logfile"}, "/logfile"},
		{"slash root", "/", []string{"a", "0"}, "/a/0"},
		{"nested base", "/editor", []string{"grid"}, "/editor/grid"},
		{"escapes", "/a~1b", []string{"c~d", "e/f"}, "/a~1b/c~0d/e~1f"},
		{"no tokens", "/editor", nil, "/editor"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JoinPointer(tt.base, tt.tokens...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := JoinPointer("nope", "x")
	assert.Error(t, err)
}
