package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidValueError(t *testing.T) {
	err := NewInvalidValueError("Usage", "bogus", nil)

	assert.Equal(t, KindInvalidValue, err.Kind)
	assert.Equal(t, `invalid value "bogus" for Usage`, err.Error())
	assert.Equal(t, "Usage", err.Context["field"])
	assert.Equal(t, "bogus", err.Context["value"])
	assert.Nil(t, err.Unwrap())
}

func TestIsMatchesKindAndCode(t *testing.T) {
	err := fmt.Errorf("parse: %w", NewIncludeNotFoundError("core", "/missing", os.ErrNotExist))

	assert.True(t, stderrors.Is(err, ErrIncludeNotFound))
	assert.True(t, stderrors.Is(err, &ConfigError{Kind: KindIncludeNotFound, Code: "INCLUDE_NOT_FOUND"}))
	assert.False(t, stderrors.Is(err, &ConfigError{Kind: KindIncludeNotFound, Code: "OTHER"}))
	assert.False(t, stderrors.Is(err, ErrIO))
	assert.True(t, stderrors.Is(err, os.ErrNotExist))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindIO, KindOf(fmt.Errorf("wrapped: %w", NewIOError("/etc/pacman.conf", os.ErrPermission))))
	assert.Equal(t, KindUnknown, KindOf(stderrors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestFormatDetailed(t *testing.T) {
	err := NewIncludeNotFoundError("core", "/etc/pacman.d/mirrorlist", os.ErrNotExist)
	out := err.FormatDetailed()

	assert.True(t, strings.HasPrefix(out, "INCLUDE_NOT_FOUND error [INCLUDE_NOT_FOUND]: failed to open mirrorlist /etc/pacman.d/mirrorlist for [core]\n"))
	// context keys are sorted
	assert.Less(t, strings.Index(out, "path:"), strings.Index(out, "section:"))
	assert.Contains(t, out, "Underlying cause: file does not exist")
	assert.Contains(t, out, "Suggestions:")
}

type recordingLogger struct {
	errors []string
	debugs []string
}

func (l *recordingLogger) Error(msg string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(msg, args...))
}

func (l *recordingLogger) Debug(msg string, args ...interface{}) {
	l.debugs = append(l.debugs, fmt.Sprintf(msg, args...))
}

func TestErrorHandler(t *testing.T) {
	logger := &recordingLogger{}
	handler := NewErrorHandler(logger)

	assert.Nil(t, handler.Handle(nil))

	got := handler.Handle(stderrors.New("boom"))
	require.NotNil(t, got)
	assert.Equal(t, KindUnknown, got.Kind)

	got = handler.Handle(NewIOError("/x", os.ErrNotExist))
	assert.Equal(t, KindIO, got.Kind)

	require.Len(t, logger.errors, 2)
	assert.Equal(t, "Error occurred: IO [IO_ERROR] failed to read /x", logger.errors[1])
	assert.Contains(t, logger.debugs, "Error context: path = /x")
}
