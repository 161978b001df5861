package adventure

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	apperrors "github.com/wvwild/adventure-hub/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a single record against the content rules.
func Validate(a Adventure) error {
	if err := validate.Struct(a); err != nil {
		return apperrors.Wrap(apperrors.CodeInvalidCatalog, fmt.Sprintf("adventure %q is invalid", a.ID), describe(err))
	}
	return nil
}

// ValidateAll checks every record and the collection level uniqueness of ids.
func ValidateAll(items []Adventure) error {
	seen := make(map[string]int, len(items))
	for i, item := range items {
		if err := Validate(item); err != nil {
			return err
		}
		if prev, dup := seen[item.ID]; dup {
			return apperrors.Wrap(apperrors.CodeInvalidCatalog, fmt.Sprintf("duplicate adventure id %q at positions %d and %d", item.ID, prev, i), nil)
		}
		seen[item.ID] = i
	}
	return nil
}

func describe(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s failed %s", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%s", strings.Join(parts, "; "))
}
