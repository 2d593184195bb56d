package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/suzu-editor/suzu/internal/config"
	"github.com/suzu-editor/suzu/internal/fileio"
)

func init() {
	// Disable color for tests
	color.NoColor = true
}

// captureStdout captures stdout during function execution
func captureStdout(f func()) string {
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w
	color.Output = w

	done := make(chan string)
	go func() {
		var buf bytes.Buffer
		_, _ = io.Copy(&buf, r)
		done <- buf.String()
	}()

	f()

	w.Close()
	os.Stdout = old
	color.Output = os.Stdout
	return <-done
}

func TestValidatePointer(t *testing.T) {
	tests := []struct {
		name    string
		ptr     string
		wantErr bool
	}{
		{"root", "", false},
		{"slash root", "/", false},
		{"key", "/editor/grid", false},
		{"escaped", "/a~1b", false},
		{"missing slash", "editor", true},
		{"bad escape", "/a~2", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePointer(tt.ptr)
			if (err != nil) != tt.wantErr {
				t.Errorf("validatePointer(%q) error = %v, wantErr %v", tt.ptr, err, tt.wantErr)
			}
		})
	}
}

func TestParseValueArg(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		asString bool
		wantKind config.Kind
		wantText string
	}{
		{"integer", "16", false, config.KindInt, "16"},
		{"float", "1.5", false, config.KindFloat, "1.5"},
		{"bool", "true", false, config.KindBool, "true"},
		{"null", "null", false, config.KindNull, "null"},
		{"object", `{"b": 1, "a": 2}`, false, config.KindObject, `{"a":2,"b":1}`},
		{"quoted string", `"x"`, false, config.KindString, `"x"`},
		{"bare text", "diagram.uml", false, config.KindString, `"diagram.uml"`},
		{"forced string", "16", true, config.KindString, `"16"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := parseValueArg(tt.text, tt.asString)
			if v.Kind() != tt.wantKind {
				t.Errorf("kind = %v, want %v", v.Kind(), tt.wantKind)
			}
			if v.String() != tt.wantText {
				t.Errorf("value = %s, want %s", v.String(), tt.wantText)
			}
		})
	}
}

func TestOpenStoreForWrite(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		readErr     bool
		wantErr     bool
		errContains string
	}{
		{name: "missing file", content: ""},
		{name: "valid file", content: `{"a": 1}`},
		{name: "malformed file", content: `{"a": `, wantErr: true, errContains: "refusing to overwrite"},
		{name: "unhealthy store", readErr: true, wantErr: true, errContains: "unusable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewTestHelper(t, t.TempDir(), tt.content)
			if tt.readErr {
				h.Files.ReadAllFunc = func(path string) ([]byte, error) {
					panic("device gone")
				}
			}

			store, err := openStoreForWrite()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if store.BackingPath() != h.ConfigPath {
				t.Errorf("BackingPath() = %q, want %q", store.BackingPath(), h.ConfigPath)
			}
		})
	}
}

func TestSaveStore(t *testing.T) {
	h := NewTestHelper(t, t.TempDir(), `{"b": 2, /* note */ "a": 1,}`)

	store := openStore()
	if err := saveStore(store); err != nil {
		t.Fatalf("saveStore() error: %v", err)
	}

	content, _ := h.Content()
	if content != `{"a":1,"b":2}` {
		t.Errorf("saved content = %s", content)
	}
}

func TestSaveStore_WriteError(t *testing.T) {
	h := NewTestHelper(t, t.TempDir(), "")
	h.Files.WriteAllFunc = func(path string, data []byte, appendMode bool) error {
		return os.ErrPermission
	}

	err := saveStore(openStore())
	if err == nil || !strings.Contains(err.Error(), "failed to save configuration") {
		t.Errorf("expected save error, got %v", err)
	}
}

func TestNewSuccessResult(t *testing.T) {
	h := NewTestHelper(t, t.TempDir(), "")

	result := newSuccessResult("set", "/editor/grid")
	if !result.Success {
		t.Error("expected Success to be true")
	}
	if result.Pointer != "/editor/grid" || result.Action != "set" || result.Path != h.ConfigPath {
		t.Errorf("unexpected result: %+v", result)
	}
}

func TestOutputResult(t *testing.T) {
	NewTestHelper(t, t.TempDir(), "")

	t.Run("human readable", func(t *testing.T) {
		jsonOutput = false
		out := captureStdout(func() {
			_ = outputResult(newSuccessResult("set", "/a"), "Set %s", "/a")
		})
		if !strings.Contains(out, "✓ Set /a") {
			t.Errorf("unexpected output: %q", out)
		}
	})

	t.Run("json", func(t *testing.T) {
		jsonOutput = true
		defer func() { jsonOutput = false }()

		out := captureStdout(func() {
			_ = outputResult(newSuccessResult("set", "/a"), "Set %s", "/a")
		})
		var result CommandResult
		if err := json.Unmarshal([]byte(out), &result); err != nil {
			t.Fatalf("invalid JSON %q: %v", out, err)
		}
		if result.Action != "set" || result.Pointer != "/a" {
			t.Errorf("unexpected result: %+v", result)
		}
	})
}

func TestStdinFrom(t *testing.T) {
	r := stdinFrom("y\nno")

	first, err := r.ReadString('\n')
	if err != nil || first != "y\n" {
		t.Errorf("first read = %q, %v", first, err)
	}
	second, err := r.ReadString('\n')
	if err != io.EOF || second != "no" {
		t.Errorf("second read = %q, %v", second, err)
	}
	if rest, err := r.ReadString('\n'); err != io.EOF || rest != "" {
		t.Errorf("read after end = %q, %v", rest, err)
	}
}

func TestNewTestHelperRestoresDeps(t *testing.T) {
	before := deps
	t.Run("inner", func(t *testing.T) {
		NewTestHelper(t, t.TempDir(), "")
		if deps == before {
			t.Error("helper should install mock deps")
		}
		if _, ok := deps.FileIO.(*fileio.MockFileIO); !ok {
			t.Errorf("FileIO = %T, want *fileio.MockFileIO", deps.FileIO)
		}
	})
	if deps != before {
		t.Error("deps were not restored after the test")
	}
}
