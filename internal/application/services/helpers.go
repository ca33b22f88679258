package services

import (
	"errors"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/DanielPopoola/mdamascus-theme/internal/domain"
	"github.com/go-playground/validator"
)

// ParseQuantity reads the leading integer of a form value. Missing, unparsable
// and zero quantities become 1; negatives are kept for the platform to reject.
func ParseQuantity(raw string) int {
	s := strings.TrimLeftFunc(raw, unicode.IsSpace)

	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 1
	}

	n, err := strconv.Atoi(s[:end])
	if err != nil || n == 0 {
		return 1
	}
	return n
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateCommand maps the first failed rule onto a DomainError.
func validateCommand(v *validator.Validate, cmd any) error {
	err := v.Struct(cmd)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}

	fe := verrs[0]
	if fe.Tag() == "required" {
		return domain.NewMissingRequiredFieldError(fe.Field())
	}
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return domain.NewInvalidFieldError(fe.Field(), fe.Value(), rule)
}
