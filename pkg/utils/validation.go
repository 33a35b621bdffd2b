package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator"
)

var validate = validator.New()

// ValidateStruct checks the validate tags on a request DTO and returns an
// error naming the offending fields.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return fmt.Errorf("missing or invalid fields: %s", strings.Join(fields, ", "))
}
