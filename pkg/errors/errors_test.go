package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("mapping values are not allowed")
	err := NewParseError("content.yaml", 7, underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "content.yaml", parseErr.Path)
	require.Equal(t, 7, parseErr.Line)
	require.True(t, stdErrors.Is(err, underlying))
	require.Equal(t, "parse error: content.yaml:7: mapping values are not allowed", err.Error())
}

func TestParseErrorWithoutLine(t *testing.T) {
	t.Parallel()

	err := NewParseError("content.yaml", 0, stdErrors.New("no such file"))
	require.Equal(t, "parse error: content.yaml: no such file", err.Error())
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("quick_start.package_managers[0].install", "install failed validation for tag 'required'", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "quick_start.package_managers[0].install", validationErr.Field)
	require.Contains(t, err.Error(), "validation error: quick_start.package_managers[0].install")
}

func TestValidationErrorWithoutField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("", "content is nil", nil)
	require.Equal(t, "validation error: content is nil", err.Error())
}

func TestCopyErrorIncludesIndex(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("clipboard: no xclip")
	err := NewCopyError(11, underlying)

	var copyErr *CopyError
	require.ErrorAs(t, err, &copyErr)
	require.Equal(t, 11, copyErr.Index)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "item 11")
}

func TestNilReceiversAreSafe(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var validationErr *ValidationError
	var copyErr *CopyError

	require.Empty(t, parseErr.Error())
	require.Nil(t, parseErr.Unwrap())
	require.Empty(t, validationErr.Error())
	require.Nil(t, validationErr.Unwrap())
	require.Empty(t, copyErr.Error())
	require.Nil(t, copyErr.Unwrap())
}
