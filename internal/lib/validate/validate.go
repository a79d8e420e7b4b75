// Package validate builds the request validator used by the handlers.
package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator"
)

// New returns a validator that reports fields by their JSON name.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return f.Name
		}
		return name
	})
	return v
}
