package output

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
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

	// Also set color output to the same writer
	color.Output = w

	f()

	w.Close()
	os.Stdout = old
	color.Output = os.Stdout

	var buf bytes.Buffer
	_, _ = io.Copy(&buf, r)
	return buf.String()
}

func TestJSON(t *testing.T) {
	t.Run("simple map", func(t *testing.T) {
		data := map[string]interface{}{
			"logfile": "suzu.log",
			"status":  "active",
		}

		output := captureStdout(func() {
			_ = JSON(data)
		})

		var result map[string]interface{}
		err := json.Unmarshal([]byte(output), &result)
		if err != nil {
			t.Fatalf("JSON output is invalid: %v", err)
		}

		if result["logfile"] != "suzu.log" {
			t.Errorf("expected logfile suzu.log, got %v", result["logfile"])
		}
		if result["status"] != "active" {
			t.Errorf("expected status active, got %v", result["status"])
		}
	})

	t.Run("struct", func(t *testing.T) {
		type TestStruct struct {
			Name  string `json:"name"`
			Value int    `json:"value"`
		}
		data := TestStruct{Name: "test", Value: 42}

		output := captureStdout(func() {
			_ = JSON(data)
		})

		var result TestStruct
		err := json.Unmarshal([]byte(output), &result)
		if err != nil {
			t.Fatalf("JSON output is invalid: %v", err)
		}

		if result.Name != "test" {
			t.Errorf("expected name test, got %s", result.Name)
		}
		if result.Value != 42 {
			t.Errorf("expected value 42, got %d", result.Value)
		}
	})

	t.Run("slice", func(t *testing.T) {
		data := []string{"a.uml", "b.uml"}

		output := captureStdout(func() {
			_ = JSON(data)
		})

		var result []string
		err := json.Unmarshal([]byte(output), &result)
		if err != nil {
			t.Fatalf("JSON output is invalid: %v", err)
		}

		if len(result) != 2 {
			t.Errorf("expected 2 items, got %d", len(result))
		}
	})

	t.Run("empty object", func(t *testing.T) {
		data := map[string]interface{}{}

		output := captureStdout(func() {
			_ = JSON(data)
		})

		if !strings.Contains(output, "{}") {
			t.Errorf("expected empty object, got %s", output)
		}
	})
}

type rawJSON string

func (r rawJSON) MarshalJSON() ([]byte, error) { return []byte(r), nil }

func TestYAML(t *testing.T) {
	t.Run("map", func(t *testing.T) {
		output := captureStdout(func() {
			_ = YAML(map[string]interface{}{"logfile": "suzu.log", "grid": 16})
		})

		expected := "grid: 16\nlogfile: suzu.log\n"
		if output != expected {
			t.Errorf("expected %q, got %q", expected, output)
		}
	})

	t.Run("json marshaler", func(t *testing.T) {
		output := captureStdout(func() {
			_ = YAML(rawJSON(`{"editor":{"zoom":1.0},"recent":["a.uml","b.uml"]}`))
		})

		for _, want := range []string{"editor:\n", "  zoom: 1.0\n", "recent:\n", "  - a.uml\n", "  - b.uml\n"} {
			if !strings.Contains(output, want) {
				t.Errorf("expected %q in output, got %q", want, output)
			}
		}
		if strings.Contains(output, "{") || strings.Contains(output, "\"") {
			t.Errorf("expected block style without quotes, got %q", output)
		}
	})

	t.Run("invalid marshaler output", func(t *testing.T) {
		var err error
		_ = captureStdout(func() {
			err = YAML(rawJSON(`{"a": [`))
		})
		if err == nil {
			t.Error("expected error for malformed JSON")
		}
	})
}

func TestTable(t *testing.T) {
	tests := []struct {
		name    string
		headers []string
		rows    [][]string
		want    string
	}{
		{
			name:    "pointers and kinds",
			headers: []string{"POINTER", "KIND"},
			rows:    [][]string{{"/editor/grid", "int"}, {"/logfile", "string"}},
			want: "POINTER       KIND\n" +
				"------------  ------\n" +
				"/editor/grid  int\n" +
				"/logfile      string\n",
		},
		{
			name:    "no headers prints nothing",
			headers: []string{},
			rows:    [][]string{{"/logfile"}},
			want:    "",
		},
		{
			name:    "no rows keeps header and separator",
			headers: []string{"POINTER", "KIND"},
			want:    "POINTER  KIND\n-------  ----\n",
		},
		{
			name:    "short and long rows",
			headers: []string{"A", "B", "C"},
			rows:    [][]string{{"x", "y"}, {"1", "2", "3", "4"}},
			want:    "A  B  C\n-  -  -\nx  y\n1  2  3\n",
		},
		{
			name:    "non-ascii keys align by rune",
			headers: []string{"POINTER", "KIND"},
			rows:    [][]string{{"/ä", "int"}, {"/abc", "bool"}},
			want:    "POINTER  KIND\n-------  ----\n/ä       int\n/abc     bool\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := captureStdout(func() {
				Table(tt.headers, tt.rows)
			})
			if got != tt.want {
				t.Errorf("Table() output:\n%q\nwant:\n%q", got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short", 10, "short"},
		{strings.Repeat("x", 20), 10, "xxxxxxx..."},
		{"ääääää", 5, "ää..."},
		{"abcdef", 2, "ab"},
		{"exact", 5, "exact"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Truncate(tt.in, tt.width); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
			}
		})
	}
}

func TestSuccess(t *testing.T) {
	output := captureStdout(func() {
		Success("operation completed")
	})

	if !strings.Contains(output, "operation completed") {
		t.Error("output should contain success message")
	}
	if !strings.Contains(output, "✓") {
		t.Error("output should contain success symbol")
	}
}

func TestError(t *testing.T) {
	output := captureStdout(func() {
		Error("operation failed")
	})

	if !strings.Contains(output, "operation failed") {
		t.Error("output should contain error message")
	}
	if !strings.Contains(output, "✗") {
		t.Error("output should contain error symbol")
	}
}

func TestWarn(t *testing.T) {
	output := captureStdout(func() {
		Warn("warning message")
	})

	if !strings.Contains(output, "warning message") {
		t.Error("output should contain warning message")
	}
	if !strings.Contains(output, "!") {
		t.Error("output should contain warning symbol")
	}
}

func TestInfo(t *testing.T) {
	output := captureStdout(func() {
		Info("info message")
	})

	if !strings.Contains(output, "info message") {
		t.Error("output should contain info message")
	}
	if !strings.Contains(output, "→") {
		t.Error("output should contain info symbol")
	}
}

func TestPrint(t *testing.T) {
	output := captureStdout(func() {
		Print("plain message")
	})

	if !strings.Contains(output, "plain message") {
		t.Error("output should contain plain message")
	}
}

func TestFormattedOutput(t *testing.T) {
	t.Run("success with format args", func(t *testing.T) {
		output := captureStdout(func() {
			Success("Set %s", "/editor/grid")
		})

		if !strings.Contains(output, "Set /editor/grid") {
			t.Errorf("expected formatted message, got %s", output)
		}
	})

	t.Run("error with format args", func(t *testing.T) {
		output := captureStdout(func() {
			Error("Failed: %s", "connection refused")
		})

		if !strings.Contains(output, "Failed: connection refused") {
			t.Errorf("expected formatted message, got %s", output)
		}
	})

	t.Run("warn with format args", func(t *testing.T) {
		output := captureStdout(func() {
			Warn("Found %d issues", 5)
		})

		if !strings.Contains(output, "Found 5 issues") {
			t.Errorf("expected formatted message, got %s", output)
		}
	})

	t.Run("info with format args", func(t *testing.T) {
		output := captureStdout(func() {
			Info("Watching %s...", "config.json")
		})

		if !strings.Contains(output, "Watching config.json...") {
			t.Errorf("expected formatted message, got %s", output)
		}
	})

	t.Run("print with format args", func(t *testing.T) {
		output := captureStdout(func() {
			Print("Value: %d", 42)
		})

		if !strings.Contains(output, "Value: 42") {
			t.Errorf("expected formatted message, got %s", output)
		}
	})
}
