package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/study-tracker/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "export failed: encode snapshot",
			expected: "export failed: encode snapshot",
		},
		{
			name:     "unix path",
			input:    "mkdir /home/alice/backups/study: not a directory",
			expected: "mkdir [REDACTED_PATH]: not a directory",
		},
		{
			name:     "single segment is kept",
			input:    "cannot write to /tmp",
			expected: "cannot write to /tmp",
		},
		{
			name:     "windows path",
			input:    "open C:\\Users\\alice\\AppData\\Local\\Temp\\study_backup.json",
			expected: "open [REDACTED_PATH]",
		},
		{
			name:     "bare file name is kept",
			input:    "replace study_backup.json: permission denied",
			expected: "replace study_backup.json: permission denied",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, redact.String(tc.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	base := errors.New("open /var/tmp/study_backup.json.123.tmp: no space left on device")
	wrapped := fmt.Errorf("export failed: write snapshot: %w", base)

	assert.Equal(t,
		"export failed: write snapshot: open [REDACTED_PATH]: no space left on device",
		redact.Error(wrapped))
}
