package config

import (
	"fmt"
	"net"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/utils"
)

// getValidationMessage returns a human-readable message for a validation error
func getValidationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "field is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	case "len":
		return fmt.Sprintf("must be exactly %s characters long", e.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", e.Param())
	case "url":
		return "must be a valid URL"
	case "pipeline_name":
		return "must consist only of lowercase letters, numbers, and underscores [a-z0-9_]"
	case "source_format":
		return fmt.Sprintf("must be one of: %s", joinValues(sourceFormats))
	case "group_naming":
		return fmt.Sprintf("must be one of: %s", joinValues(groupNamings))
	case "comment_mode":
		return fmt.Sprintf("must be one of: %s", joinValues(commentModes))
	case "dedup_mode":
		return fmt.Sprintf("must be one of: %s", joinValues(dedupModes))
	case "url_template":
		return "must be a valid template (placeholders are written as {{name}})"
	case "hostport_or_empty":
		return "must be in format 'host:port' or empty"
	default:
		return fmt.Sprintf("validation failed: %s", e.Tag())
	}
}

// ValidationError represents a single validation error with context
type ValidationError struct {
	ItemName  string // For pipelines/regions: the name of the item (e.g., "cn_ipv4", "110000")
	FieldPath string // Dot-notation field path (e.g., "general.chunk_size", "source.0.url")
	Message   string // Human-readable error message
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface
func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "no validation errors"
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("validation failed with %d error(s):\n", len(ve)))
	for i, err := range ve {
		if err.ItemName != "" {
			sb.WriteString(fmt.Sprintf("  %d. [%s] %s: %s\n", i+1, err.ItemName, err.FieldPath, err.Message))
		} else {
			sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.FieldPath, err.Message))
		}
	}
	return sb.String()
}

var validate *validator.Validate

func init() {
	validate = validator.New()

	validations := map[string]validator.Func{
		"pipeline_name":     validatePipelineName,
		"source_format":     validateOneOf(sourceFormats),
		"group_naming":      validateOneOf(groupNamings),
		"comment_mode":      validateOneOf(commentModes),
		"dedup_mode":        validateOneOf(dedupModes),
		"url_template":      validateURLTemplate,
		"hostport_or_empty": validateHostPortOrEmpty,
	}
	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}

	// Register function to get field name from "toml" tag
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("toml"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

func validateOneOf[T ~string](allowed []T) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value := T(fl.Field().String())
		for _, a := range allowed {
			if value == a {
				return true
			}
		}
		return false
	}
}

func joinValues[T ~string](values []T) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

// Custom validator: pipeline name format
func validatePipelineName(fl validator.FieldLevel) bool {
	return pipelineNameRegexp.MatchString(fl.Field().String())
}

// Custom validator: {{placeholder}} template must be well-formed
func validateURLTemplate(fl validator.FieldLevel) bool {
	_, err := utils.TemplateTags(fl.Field().String())
	return err == nil
}

// Custom validator: host:port format or empty
func validateHostPortOrEmpty(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	_, _, err := net.SplitHostPort(value)
	return err == nil
}
