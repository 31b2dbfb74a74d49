package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"

	"github.com/alexisbeaulieu97/tablestyles/internal/domain/style"
	"github.com/alexisbeaulieu97/tablestyles/internal/domain/template"
	tserrors "github.com/alexisbeaulieu97/tablestyles/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return field.Name
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})
		_ = v.RegisterValidation("template_id", func(fl validator.FieldLevel) bool {
			return style.IsValidTemplateID(fl.Field().String())
		})
		_ = v.RegisterValidation("line_index", func(fl validator.FieldLevel) bool {
			return template.IsValidIndex(fl.Field().String())
		})
		_ = v.RegisterValidation("css_color", func(fl validator.FieldLevel) bool {
			return style.IsValidColor(fl.Field().String())
		})
		_ = v.RegisterValidation("css_dimension", func(fl validator.FieldLevel) bool {
			return style.IsValidDimension(fl.Field().String())
		})
		_ = v.RegisterValidation("css_border", func(fl validator.FieldLevel) bool {
			_, err := style.ParseBorder(fl.Field().String())
			return err == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the shared validator with the document tags registered.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateDocument checks the schema of a decoded document and reports every
// failing field, plus duplicate template ids.
func ValidateDocument(doc *Document) error {
	if doc == nil {
		return tserrors.NewValidationError("document", "document is nil", nil)
	}

	var errs error
	if err := validatorInstance().Struct(doc); err != nil {
		errs = convertValidationError(err)
	}

	seen := make(map[string]int, len(doc.Templates))
	for i, t := range doc.Templates {
		if first, dup := seen[t.ID]; dup && t.ID != "" {
			errs = multierr.Append(errs, tserrors.NewValidationError(
				fieldForTemplate(i, "id"),
				fmt.Sprintf("duplicate template id %q (first declared at templates[%d])", t.ID, first),
				nil,
			))
			continue
		}
		seen[t.ID] = i
	}
	return errs
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		return tserrors.NewValidationError("document", err.Error(), err)
	}

	var errs error
	for _, fe := range ves {
		field := documentFieldName(fe)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
		if value, ok := fe.Value().(string); ok && value != "" {
			msg = fmt.Sprintf("%s: %q is not a valid %s", field, value, describeTag(fe.Tag()))
		}
		errs = multierr.Append(errs, tserrors.NewValidationError(field, msg, fe))
	}
	return errs
}

// documentFieldName drops the root struct name from the namespace so fields
// read like paths in the file, e.g. templates[0].rows[1].index.
func documentFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func describeTag(tag string) string {
	switch tag {
	case "template_id":
		return "template id"
	case "line_index":
		return "line index"
	case "css_color":
		return "color"
	case "css_dimension":
		return "dimension"
	case "css_border":
		return "border"
	case "semver":
		return "version"
	}
	return tag
}

func fieldForTemplate(index int, field string) string {
	return fmt.Sprintf("templates[%d].%s", index, field)
}
