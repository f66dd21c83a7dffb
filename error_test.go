package pressclip_test

import (
	"errors"
	"testing"

	"github.com/rkaczmarek/pressclip"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := pressclip.Errorf(pressclip.EPARSE, "parser %q failed", "fragment")

	assert.Equal(t, pressclip.EPARSE, pressclip.ErrorCode(err))
	assert.Equal(t, "parser \"fragment\" failed", pressclip.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pressclip.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pressclip.EINTERNAL, pressclip.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, pressclip.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", pressclip.ErrorMessage(errors.New("boom")))
}
