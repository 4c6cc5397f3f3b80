package config

import (
	stderrors "errors"
	"fmt"

	"filechooser/internal/errors"

	"github.com/go-playground/validator/v10"
	"github.com/gobwas/glob"
)

// Themes lists the accepted theme names.
var Themes = []string{"default", "dark", "light", "monochrome"}

type configValidator struct {
	validator *validator.Validate
}

func newValidator() *configValidator {
	v := validator.New()

	v.RegisterValidation("glob_pattern", validateGlobPattern)
	v.RegisterValidation("log_format", validateLogFormat)
	v.RegisterValidation("theme", validateTheme)

	return &configValidator{validator: v}
}

func (v *configValidator) validate(cfg *Config) error {
	err := v.validator.Struct(cfg)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if stderrors.As(err, &validationErrors) && len(validationErrors) > 0 {
		e := validationErrors[0]
		msg := fmt.Sprintf("validation failed on tag '%s' with value '%v'", e.Tag(), e.Value())
		return errors.NewConfigError(msg, e.Namespace(), errors.InvalidConfig, nil)
	}
	return errors.NewConfigError("invalid configuration", "", errors.InvalidConfig, err)
}

// validateGlobPattern accepts patterns gobwas/glob can compile.
func validateGlobPattern(fl validator.FieldLevel) bool {
	pattern := fl.Field().String()
	if pattern == "" {
		return false
	}
	_, err := glob.Compile(pattern)
	return err == nil
}

func validateLogFormat(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "text" || value == "json"
}

func validateTheme(fl validator.FieldLevel) bool {
	return contains(Themes, fl.Field().String())
}

func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
