package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/publication/pkg/validator"
)

func TestApply(t *testing.T) {
	t.Parallel()

	t.Run("all rules pass", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("name", "Alice"),
			validator.Custom("lang", func() bool { return true }, "unused"),
		)
		assert.NoError(t, err)
	})

	t.Run("failures keep rule order and do not short-circuit", func(t *testing.T) {
		t.Parallel()
		err := validator.Apply(
			validator.RequiredString("lang", ""),
			validator.RequiredString("name", "   "),
			validator.Custom("lang", func() bool { return false }, "unknown"),
			validator.RequiredString("endpoint", "http://x"),
		)
		require.Error(t, err)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"field is required", "field is required", "unknown"}, verrs.Messages())
		assert.Equal(t, "lang", verrs[0].Field)
		assert.Equal(t, "name", verrs[1].Field)
		assert.Equal(t, "lang", verrs[2].Field)
	})
}

func TestRule_WithMessage(t *testing.T) {
	t.Parallel()

	base := validator.RequiredString("name", "")
	custom := base.WithMessage("Please enter your name into the name box.")

	assert.Equal(t, "field is required", base.Error.Message)
	assert.Equal(t, "Please enter your name into the name box.", custom.Error.Message)
	assert.Equal(t, "name", custom.Error.Field)
}

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "validation failed", validator.ValidationErrors{}.Error())
	verrs := validator.ValidationErrors{{Field: "a", Message: "bad"}, {Field: "b", Message: "worse"}}
	assert.Equal(t, "validation failed: a: bad; b: worse", verrs.Error())
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.Nil(t, validator.ExtractValidationErrors(errors.New("plain")))

	wrapped := fmt.Errorf("outer: %w", validator.ValidationErrors{{Field: "x", Message: "y"}})
	assert.Len(t, validator.ExtractValidationErrors(wrapped), 1)
}
