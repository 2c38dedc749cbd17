package pretty_test

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhinandh-s/vimwiki-syntax/internal/ui/pretty"
)

func TestNewStyles_ColorDisabled(t *testing.T) {
	styles := pretty.NewStyles(false)
	require.NotNil(t, styles)

	// With color disabled, styles should return unmodified text
	text := "test"
	assert.Equal(t, text, styles.Bold.Render(text), "No-color Bold should not add formatting")
	assert.Equal(t, text, styles.Error.Render(text), "No-color Error should not add formatting")
	assert.Equal(t, text, styles.Kind.Render(text), "No-color Kind should not add formatting")
}

func TestIsColorEnabled_AlwaysMode(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, pretty.IsColorEnabled("always", &buf), "always mode should return true")
}

func TestIsColorEnabled_NeverMode(t *testing.T) {
	assert.False(t, pretty.IsColorEnabled("never", os.Stdout), "never mode should return false")
}

func TestIsColorEnabled_AutoMode_NonTTY(t *testing.T) {
	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("auto", &buf), "auto mode with non-TTY should return false")
}

func TestIsColorEnabled_AutoMode_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	// Even with a TTY, NO_COLOR should disable colors
	assert.False(t, pretty.IsColorEnabled("auto", os.Stdout), "auto mode with NO_COLOR set should return false")
}

func TestIsColorEnabled_DefaultsToAuto(t *testing.T) {
	t.Setenv("NO_COLOR", "")

	var buf bytes.Buffer
	assert.False(t, pretty.IsColorEnabled("", &buf), "empty mode with non-TTY should use auto behavior")
	assert.False(t, pretty.IsColorEnabled("unknown", &buf), "unknown mode with non-TTY should use auto behavior")
}

func TestTerminalWidth_NonTerminal(t *testing.T) {
	var buf bytes.Buffer
	assert.Equal(t, 80, pretty.TerminalWidth(&buf))

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, 80, pretty.TerminalWidth(f), "regular files are not terminals")
}

func TestStyles_AllFieldsInitialized(t *testing.T) {
	styles := pretty.NewStyles(true)

	for name, rendered := range map[string]string{
		"Error":      styles.Error.Render("x"),
		"Hint":       styles.Hint.Render("x"),
		"FilePath":   styles.FilePath.Render("x"),
		"Location":   styles.Location.Render("x"),
		"Message":    styles.Message.Render("x"),
		"SourceLine": styles.SourceLine.Render("x"),
		"Caret":      styles.Caret.Render("x"),
		"Kind":       styles.Kind.Render("x"),
		"Text":       styles.Text.Render("x"),
		"Span":       styles.Span.Render("x"),
		"Header":     styles.Header.Render("x"),
		"Success":    styles.Success.Render("x"),
		"Failure":    styles.Failure.Render("x"),
		"Dim":        styles.Dim.Render("x"),
		"Bold":       styles.Bold.Render("x"),
	} {
		assert.Contains(t, rendered, "x", name)
	}
}
