package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/panelkit/internal/panels"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/components"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/decorate"
	"github.com/alexisbeaulieu97/panelkit/internal/ui/widgets"
	apperrors "github.com/alexisbeaulieu97/panelkit/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	elementIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)
	classPattern     = regexp.MustCompile(`^[A-Za-z_-][A-Za-z0-9_-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("element_id", func(fl validator.FieldLevel) bool {
			return elementIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("autofocus", func(fl validator.FieldLevel) bool {
			return validAutoFocus(fl.Field().String())
		})

		_ = v.RegisterValidation("skin", func(fl validator.FieldLevel) bool {
			_, ok := components.DefaultTheme().SkinClass(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("widget", func(fl validator.FieldLevel) bool {
			_, ok := widgets.ByKind(fl.Field().String())
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// validAutoFocus accepts the built-in policies or a selector list made of
// "#id", ".class", bare class names or "*".
func validAutoFocus(value string) bool {
	switch panels.ParseAutoFocus(value).Kind {
	case panels.LastFocused, panels.NoAutoFocus, panels.DefaultElement:
		return true
	}
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		switch {
		case part == "*":
		case strings.HasPrefix(part, "#"):
			if !elementIDPattern.MatchString(part[1:]) {
				return false
			}
		case strings.HasPrefix(part, "."):
			if !classPattern.MatchString(part[1:]) {
				return false
			}
		default:
			if !classPattern.MatchString(part) {
				return false
			}
		}
	}
	return true
}

// ValidateConfig performs schema and cross-field validation on the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return apperrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	if cfg.Settings.Index >= len(cfg.Panels) {
		return apperrors.NewValidationError("settings.index",
			fmt.Sprintf("index %d is out of range for %d panels", cfg.Settings.Index, len(cfg.Panels)), nil)
	}

	seen := make(map[string]string)
	claim := func(id, field string) error {
		if id == "" {
			return nil
		}
		if panels.IsGeneratedID(id) || decorate.IsGeneratedID(id) {
			return apperrors.NewValidationError(field, fmt.Sprintf("id %q is reserved for generated ids", id), nil)
		}
		if previous, exists := seen[id]; exists {
			return apperrors.NewValidationError(field, fmt.Sprintf("duplicate id %q (first used by %s)", id, previous), nil)
		}
		seen[id] = field
		return nil
	}

	for i, panel := range cfg.Panels {
		if err := claim(panel.ID, fieldForPanel(i, "id")); err != nil {
			return err
		}
		for j, item := range panel.Items {
			if err := claim(item.ID, fieldForItem(i, j, "id")); err != nil {
				return err
			}
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return apperrors.NewValidationError(field, msg, err)
	}

	return apperrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	lowered := make([]string, 0, len(parts))
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}

func fieldForPanel(index int, field string) string {
	return fmt.Sprintf("panels[%d].%s", index, field)
}

func fieldForItem(panel, item int, field string) string {
	return fmt.Sprintf("panels[%d].items[%d].%s", panel, item, field)
}
