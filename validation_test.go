package access_test

import (
	"errors"
	"testing"

	access "github.com/agencykit/go-access"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/stretchr/testify/assert"
)

func TestFormatValidationErrorToMap(t *testing.T) {
	t.Run("flattens field errors", func(t *testing.T) {
		verrs := validation.Errors{
			"email":    errors.New("must be a valid email address"),
			"password": errors.New("the length must be at least 8"),
		}

		out := access.FormatValidationErrorToMap(verrs)

		assert.Len(t, out, 2)
		assert.Equal(t, "must be a valid email address", out["email"])
		assert.Equal(t, "the length must be at least 8", out["password"])
	})

	t.Run("wraps plain errors under a generic key", func(t *testing.T) {
		out := access.FormatValidationErrorToMap(errors.New("something broke"))

		assert.Equal(t, map[string]string{"error": "something broke"}, out)
	})

	t.Run("empty map for nil", func(t *testing.T) {
		assert.Empty(t, access.FormatValidationErrorToMap(nil))
	})
}
