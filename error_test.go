package coursegen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/coursegen/coursegen"
	"github.com/stretchr/testify/assert"
)

func TestErrorCode(t *testing.T) {
	t.Parallel()

	t.Run("returns code for application errors", func(t *testing.T) {
		t.Parallel()
		err := coursegen.Errorf(coursegen.ENOTFOUND, "course not found")
		assert.Equal(t, coursegen.ENOTFOUND, coursegen.ErrorCode(err))
	})

	t.Run("returns code for wrapped application errors", func(t *testing.T) {
		t.Parallel()
		err := fmt.Errorf("outer: %w", coursegen.Errorf(coursegen.EINVALID, "bad input"))
		assert.Equal(t, coursegen.EINVALID, coursegen.ErrorCode(err))
	})

	t.Run("returns EINTERNAL for non-application errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, coursegen.EINTERNAL, coursegen.ErrorCode(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", coursegen.ErrorCode(nil))
	})
}

func TestErrorMessage(t *testing.T) {
	t.Parallel()

	t.Run("returns message for application errors", func(t *testing.T) {
		t.Parallel()
		err := coursegen.Errorf(coursegen.EINVALID, "url required")
		assert.Equal(t, "url required", coursegen.ErrorMessage(err))
	})

	t.Run("masks non-application errors", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "Internal error.", coursegen.ErrorMessage(errors.New("boom")))
	})

	t.Run("returns empty string for nil", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, "", coursegen.ErrorMessage(nil))
	})
}
