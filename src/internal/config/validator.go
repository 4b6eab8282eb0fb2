package config

import (
	"errors"
	"fmt"
	"net/url"

	"github.com/go-playground/validator/v10"
)

// ValidateConfig validates the entire configuration and returns all validation errors
func (c *Config) ValidateConfig() error {
	var validationErrors ValidationErrors

	if c.General == nil {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "general",
			Message:   "configuration must contain 'general' section",
		})
		return validationErrors
	}

	if err := validate.Struct(c.General); err != nil {
		validationErrors = append(validationErrors, convertValidatorErrors(err, "general", "")...)
	}

	if len(c.Pipelines) == 0 {
		validationErrors = append(validationErrors, ValidationError{
			FieldPath: "pipeline",
			Message:   "configuration must contain at least one pipeline",
		})
	} else {
		validationErrors = append(validationErrors, c.validatePipelines()...)
	}

	if len(validationErrors) > 0 {
		return validationErrors
	}

	return nil
}

func (c *Config) validatePipelines() ValidationErrors {
	var validationErrors ValidationErrors

	seenNames := make(map[string]bool)
	seenOutputs := make(map[string]string)

	for i, p := range c.Pipelines {
		if p == nil {
			validationErrors = append(validationErrors, ValidationError{
				FieldPath: fmt.Sprintf("pipeline.%d", i),
				Message:   "pipeline cannot be empty",
			})
			continue
		}

		itemName := p.Name
		if itemName == "" {
			itemName = fmt.Sprintf("pipeline[%d]", i)
		}

		if err := validate.Struct(p); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, "", itemName)...)
		}

		if seenNames[p.Name] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "name",
				Message:   fmt.Sprintf("duplicate pipeline name: %s", p.Name),
			})
		}
		seenNames[p.Name] = true

		if other, ok := seenOutputs[p.OutputFile]; ok && p.OutputFile != "" {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "output_file",
				Message:   fmt.Sprintf("output file %q is already used by pipeline %s", p.OutputFile, other),
			})
		} else {
			seenOutputs[p.OutputFile] = itemName
		}

		hasSources := len(p.Sources) > 0
		hasRegions := len(p.Regions) > 0
		if !hasSources && !hasRegions {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "source",
				Message:   "must specify at least one source or region",
			})
		}
		if hasSources && hasRegions {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: "source",
				Message:   "can only specify one of: source or region",
			})
		}

		validationErrors = append(validationErrors, validateSources(p, itemName)...)
		validationErrors = append(validationErrors, validateRegions(p, itemName)...)
	}

	return validationErrors
}

func validateSources(p *PipelineConfig, itemName string) ValidationErrors {
	var validationErrors ValidationErrors
	seenURLs := make(map[string]bool)

	for j, src := range p.Sources {
		fieldPrefix := fmt.Sprintf("source.%d", j)
		if src == nil {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPrefix,
				Message:   "source cannot be empty",
			})
			continue
		}

		if err := validate.Struct(src); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fieldPrefix, itemName)...)
		}

		if seenURLs[src.URL] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPrefix + ".url",
				Message:   fmt.Sprintf("duplicate source url: %s", src.URL),
			})
		}
		seenURLs[src.URL] = true
	}

	return validationErrors
}

func validateRegions(p *PipelineConfig, itemName string) ValidationErrors {
	var validationErrors ValidationErrors
	seenCodes := make(map[string]bool)

	for j, region := range p.Regions {
		fieldPrefix := fmt.Sprintf("region.%d", j)
		if region == nil {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPrefix,
				Message:   "region cannot be empty",
			})
			continue
		}

		if err := validate.Struct(region); err != nil {
			validationErrors = append(validationErrors, convertValidatorErrors(err, fieldPrefix, itemName)...)
		}

		if seenCodes[region.Code] {
			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPrefix + ".code",
				Message:   fmt.Sprintf("duplicate region code: %s", region.Code),
			})
		}
		seenCodes[region.Code] = true

		if region.SourceURLTemplate != "" {
			if u, err := url.ParseRequestURI(region.SourceURL()); err != nil || u.Host == "" {
				validationErrors = append(validationErrors, ValidationError{
					ItemName:  itemName,
					FieldPath: fieldPrefix + ".source_url_template",
					Message:   fmt.Sprintf("expands to an invalid URL: %s", region.SourceURL()),
				})
			}
		}
	}

	return validationErrors
}

// convertValidatorErrors converts go-playground/validator errors to our ValidationError format
func convertValidatorErrors(err error, fieldPrefix string, itemName string) ValidationErrors {
	var validationErrors ValidationErrors

	var validatorErrs validator.ValidationErrors
	if errors.As(err, &validatorErrs) {
		for _, e := range validatorErrs {
			fieldPath := fieldPrefix
			if e.Field() != "" {
				// e.Field() returns the TOML tag name because we registered TagNameFunc
				if fieldPrefix != "" {
					fieldPath = fieldPrefix + "." + e.Field()
				} else {
					fieldPath = e.Field()
				}
			}

			validationErrors = append(validationErrors, ValidationError{
				ItemName:  itemName,
				FieldPath: fieldPath,
				Message:   getValidationMessage(e),
			})
		}
	}

	return validationErrors
}
