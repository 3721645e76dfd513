package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Lum1n0sity/scholarthynk-api/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest runs struct-tag validation and converts failures into
// a BadRequest the error handler can surface directly.
func ValidateRequest(req interface{}) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}

	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		fields := make([]string, 0, len(errs))
		for _, fe := range errs {
			fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
		}
		return apperror.BadRequest("invalid request: " + strings.Join(fields, ", "))
	}
	return apperror.BadRequest("invalid request")
}
