package service

import (
	"fmt"
	"slices"

	"github.com/maksimkurb/ikuai-ipgroups/src/internal/config"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/errors"
	"github.com/maksimkurb/ikuai-ipgroups/src/internal/utils"
)

// ValidationService provides configuration checks that span fields and pipelines.
//
// It runs after the struct level validation of the config package and checks:
//   - template variables of file names and region URLs
//   - group name collisions between regions
type ValidationService struct{}

// NewValidationService creates a new validation service.
func NewValidationService() *ValidationService {
	return &ValidationService{}
}

// ValidateConfig performs comprehensive configuration validation.
//
// This runs all validators and returns the first error encountered.
func (v *ValidationService) ValidateConfig(cfg *config.Config) error {
	validators := []func(*config.Config) error{
		v.validatePipelinesDefined,
		v.validateTemplates,
		v.validateGroupNames,
	}

	for _, validator := range validators {
		if err := validator(cfg); err != nil {
			return err
		}
	}

	return nil
}

func (v *ValidationService) validatePipelinesDefined(cfg *config.Config) error {
	if len(cfg.Pipelines) == 0 {
		return errors.NewConfigError("No pipelines defined in configuration", nil)
	}
	return nil
}

// validateTemplates rejects variables that would silently expand to nothing.
func (v *ValidationService) validateTemplates(cfg *config.Config) error {
	outputVars := []string{config.OUTPUT_TMPL_DATE, config.OUTPUT_TMPL_NAME, config.OUTPUT_TMPL_FAMILY}
	regionVars := []string{config.REGION_TMPL_CODE}

	for _, p := range cfg.Pipelines {
		if err := checkTemplateVars(p.OutputFile, outputVars); err != nil {
			return errors.NewConfigError(fmt.Sprintf("Pipeline %s: invalid output_file", p.Name), err)
		}

		for _, r := range p.Regions {
			if err := checkTemplateVars(r.SourceURLTemplate, regionVars); err != nil {
				return errors.NewConfigError(
					fmt.Sprintf("Pipeline %s, region %s: invalid source_url_template", p.Name, r.Code), err)
			}
		}
	}

	return nil
}

func checkTemplateVars(tmpl string, allowed []string) error {
	tags, err := utils.TemplateTags(tmpl)
	if err != nil {
		return err
	}
	for _, tag := range tags {
		if !slices.Contains(allowed, tag) {
			return fmt.Errorf("unknown variable {{%s}}, available: %v", tag, allowed)
		}
	}
	return nil
}

// validateGroupNames checks that per-scope naming cannot produce the same
// group name for two regions.
func (v *ValidationService) validateGroupNames(cfg *config.Config) error {
	for _, p := range cfg.Pipelines {
		if p.GroupNaming == config.NamingGlobalSequential {
			continue
		}

		seenLabels := make(map[string]string)
		for _, r := range p.Regions {
			if other, exists := seenLabels[r.Label]; exists {
				return errors.NewConfigError(
					fmt.Sprintf("Pipeline %s: regions %s and %s share the label %q",
						p.Name, other, r.Code, r.Label),
					nil,
				)
			}
			seenLabels[r.Label] = r.Code
		}
	}

	return nil
}

// IDConflict describes two pipelines whose record IDs overlap.
type IDConflict struct {
	First  string
	Second string
	FromID int
	ToID   int
}

func (c IDConflict) String() string {
	return fmt.Sprintf("pipelines %s and %s both use ids %d-%d", c.First, c.Second, c.FromID, c.ToID)
}

// FindIDConflicts returns the overlapping ID ranges of the generated reports.
// Files imported into the same router must not reuse IDs.
func (v *ValidationService) FindIDConflicts(reports []*Report) []IDConflict {
	var conflicts []IDConflict
	for i, a := range reports {
		if a.GroupsWritten() == 0 {
			continue
		}
		for _, b := range reports[i+1:] {
			if b.GroupsWritten() == 0 {
				continue
			}
			from, to := max(a.FirstID, b.FirstID), min(a.LastID, b.LastID)
			if from <= to {
				conflicts = append(conflicts, IDConflict{First: a.Pipeline, Second: b.Pipeline, FromID: from, ToID: to})
			}
		}
	}
	return conflicts
}
