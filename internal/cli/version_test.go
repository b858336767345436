package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	// Save and restore version
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "galley version test-version-1.0.0")
}

func TestVersionCmd_DisplaysDevByDefault(t *testing.T) {
	// Save and restore version
	originalVersion := version
	version = "dev"
	defer func() { version = originalVersion }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "galley version dev")
}

func TestResolveLayout(t *testing.T) {
	tests := []struct {
		name       string
		format     string
		limit      int
		wantFormat string
		wantLimit  int
		wantErr    bool
	}{
		{name: "defaults", format: "", limit: 0, wantFormat: "book", wantLimit: 1200},
		{name: "named format", format: "zine", limit: 0, wantFormat: "zine", wantLimit: 600},
		{name: "explicit limit wins", format: "zine", limit: 42, wantFormat: "zine", wantLimit: 42},
		{name: "limit without format", format: "", limit: 900, wantFormat: "book", wantLimit: 900},
		{name: "unknown format", format: "poster", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, limit, err := resolveLayout(tt.format, tt.limit)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.wantFormat, string(f))
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestSummarize(t *testing.T) {
	assert.Equal(t, "short text", summarize("short  text", 60))
	assert.Equal(t, "one two", summarize("one\n\ntwo", 60))

	long := summarize("aaaaa bbbbb ccccc ddddd eeeee fffff", 10)
	assert.Equal(t, "aaaaa b...", long)
	assert.Len(t, []rune(long), 10)
}
