package access

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

// FormatValidationErrorToMap flattens an ozzo validation error into a
// field -> message map for view rendering
func FormatValidationErrorToMap(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}

	if verrs, ok := err.(validation.Errors); ok {
		for field, ferr := range verrs {
			if ferr != nil {
				out[field] = ferr.Error()
			}
		}
		return out
	}

	out["error"] = err.Error()
	return out
}
