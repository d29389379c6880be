package content

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	apperrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	optionValuePattern = regexp.MustCompile(`^[a-z0-9_-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("option_value", func(fl validator.FieldLevel) bool {
			return optionValuePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("label_format", func(fl validator.FieldLevel) bool {
			return strings.Count(fl.Field().String(), "%d") == 1
		})

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema and cross-field validation on a content document.
func Validate(c *Content) error {
	if c == nil {
		return apperrors.NewValidationError("content", "content is nil", nil)
	}

	if err := validatorInstance().Struct(c); err != nil {
		return convertValidationError(err)
	}

	if err := validateOptions("showcase.countries", c.Showcase.Countries); err != nil {
		return err
	}
	if err := validateOptions("showcase.contact_methods", c.Showcase.ContactMethods); err != nil {
		return err
	}

	if def := c.Showcase.DefaultContact; def != "" && !hasOption(c.Showcase.ContactMethods, def) {
		return apperrors.NewValidationError("showcase.default_contact", fmt.Sprintf("%q is not a contact method", def), nil)
	}

	if _, err := gallery.NewSlider(c.Showcase.SliderOptions()); err != nil {
		return apperrors.NewValidationError("showcase.slider", err.Error(), err)
	}

	if err := validateCopyIndices(c.QuickStart); err != nil {
		return err
	}

	return nil
}

func validateOptions(field string, options []Option) error {
	seen := make(map[string]struct{}, len(options))
	for i, opt := range options {
		if _, dup := seen[opt.Value]; dup {
			return apperrors.NewValidationError(fmt.Sprintf("%s[%d].value", field, i), fmt.Sprintf("duplicate option %q", opt.Value), nil)
		}
		seen[opt.Value] = struct{}{}
	}
	return nil
}

func hasOption(options []Option, value string) bool {
	for _, opt := range options {
		if opt.Value == value {
			return true
		}
	}
	return false
}

func validateCopyIndices(q QuickStart) error {
	owner := make(map[int]string)
	for i := range q.PackageManagers {
		owner[PackageManagerIndex(i)] = fmt.Sprintf("quick_start.package_managers[%d]", i)
	}
	for i := range q.InstallSteps {
		index := InstallStepIndex(i)
		if prev, clash := owner[index]; clash {
			err := fmt.Errorf("%w: %d", gallery.ErrDuplicateIndex, index)
			return apperrors.NewValidationError(
				fmt.Sprintf("quick_start.install_steps[%d]", i),
				fmt.Sprintf("copy index %d is already used by %s; at most %d package managers are supported", index, prev, InstallStepIndexOffset),
				err,
			)
		}
		owner[index] = fmt.Sprintf("quick_start.install_steps[%d]", i)
	}
	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	var ves validator.ValidationErrors
	if errors.As(err, &ves) {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("content", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace, which already uses
// yaml names through the registered tag name func.
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}
