package cli

import (
	"errors"
	"strings"
	"testing"
)

func TestRunEdit(t *testing.T) {
	tests := []struct {
		name        string
		initial     string
		edited      string
		fixed       string
		stdin       string
		runErr      error
		lookPathErr error
		wantErr     bool
		errContains string
		wantContent string
		wantCalls   int
	}{
		{
			name:        "valid edit",
			initial:     `{"a": 1}`,
			edited:      `{"a": 2}`,
			wantContent: `{"a": 2}`,
			wantCalls:   1,
		},
		{
			name:        "missing file is created first",
			edited:      `{"b": true}`,
			wantContent: `{"b": true}`,
			wantCalls:   1,
		},
		{
			name:        "edit leaves malformed file",
			initial:     `{"a": 1}`,
			edited:      `{"a": `,
			stdin:       "n\n",
			wantErr:     true,
			errContains: "is invalid",
			wantContent: `{"a": `,
			wantCalls:   1,
		},
		{
			name:        "malformed edit is reopened and fixed",
			initial:     `{"a": 1}`,
			edited:      `{"a": `,
			fixed:       `{"a": 3}`,
			stdin:       "\n",
			wantContent: `{"a": 3}`,
			wantCalls:   2,
		},
		{
			name:        "editor fails",
			initial:     `{"a": 1}`,
			runErr:      errors.New("exit status 1"),
			wantErr:     true,
			errContains: "editor exited with error",
			wantContent: `{"a": 1}`,
			wantCalls:   1,
		},
		{
			name:        "editor not found",
			initial:     `{"a": 1}`,
			lookPathErr: errors.New("not found"),
			wantErr:     true,
			errContains: "editor not found",
			wantContent: `{"a": 1}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VISUAL", "")
			t.Setenv("EDITOR", "nano")

			h := NewTestHelper(t, t.TempDir(), tt.initial)
			h.SetStdinInput(tt.stdin)
			edits := 0
			runner := &MockCommandRunner{
				RunFunc: func(name string, args ...string) error {
					if tt.runErr != nil {
						return tt.runErr
					}
					edits++
					if edits > 1 && tt.fixed != "" {
						h.WriteConfig(tt.fixed)
					} else {
						h.WriteConfig(tt.edited)
					}
					return nil
				},
			}
			if tt.lookPathErr != nil {
				runner.LookPathFunc = func(file string) (string, error) {
					return "", tt.lookPathErr
				}
			}
			h.SetCommandRunner(runner)

			var err error
			captureStdout(func() {
				err = runEdit(nil, nil)
			})

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
			} else if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if tt.lookPathErr == nil {
				if len(runner.Calls) != tt.wantCalls {
					t.Fatalf("expected %d editor calls, got %d", tt.wantCalls, len(runner.Calls))
				}
				call := runner.Calls[0]
				if call[0] != "/usr/bin/nano" || call[1] != h.ConfigPath {
					t.Errorf("unexpected editor call: %v", call)
				}
			}

			content, _ := h.Content()
			if content != tt.wantContent {
				t.Errorf("content = %q, want %q", content, tt.wantContent)
			}
		})
	}
}

func TestGetEditor(t *testing.T) {
	tests := []struct {
		name   string
		visual string
		editor string
		want   string
	}{
		{"visual wins", "code -w", "nano", "code -w"},
		{"editor", "", "nano", "nano"},
		{"default", "", "", "vi"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("VISUAL", tt.visual)
			t.Setenv("EDITOR", tt.editor)
			if got := getEditor(); got != tt.want {
				t.Errorf("getEditor() = %q, want %q", got, tt.want)
			}
		})
	}
}
