package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected token")
	err := NewParseError("showcase.yaml", 12, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "showcase.yaml", parseErr.Path)
	require.Equal(t, 12, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: showcase.yaml:12: unexpected token", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("showcase.toml", 0, stdErrors.New("bad"))
	require.Equal(t, "parse error: showcase.toml: bad", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("panels[1].auto_focus", "must not be empty", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "panels[1].auto_focus", validationErr.Field)
	require.Contains(t, err.Error(), "must not be empty")
}

func TestCompositionErrorMessage(t *testing.T) {
	t.Parallel()

	err := NewCompositionError("ToggleItem", "Toggleable", "icon override is required")

	var compErr *CompositionError
	require.ErrorAs(t, err, &compErr)
	require.Equal(t, "Toggleable", compErr.Layer)
	require.Equal(t, "composition error [ToggleItem/Toggleable]: icon override is required", err.Error())

	require.Equal(t, "composition error [Button]: empty", NewCompositionError("Button", "", "empty").Error())
	require.Equal(t, "composition error: empty", NewCompositionError("", "", "empty").Error())
}

func TestNilErrorsAreSafe(t *testing.T) {
	t.Parallel()

	var p *ParseError
	var v *ValidationError
	var c *CompositionError
	require.Empty(t, p.Error())
	require.Empty(t, v.Error())
	require.Empty(t, c.Error())
	require.Nil(t, c.Unwrap())
}
