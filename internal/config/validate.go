package config

import (
	stderrors "errors"
	"fmt"
	"strings"

	"github.com/NielsdaWheelz/scaffoldkit/internal/errors"
	"github.com/NielsdaWheelz/scaffoldkit/internal/model"
)

// Validate checks all values and reports every problem at once as
// E_INVALID_CONFIG.
func (c *Config) Validate() error {
	var errs []error

	if c.OrganizationID == "" {
		errs = append(errs, stderrors.New("organization_id must not be empty"))
	}
	if _, err := model.NormalizePlatformVersion(c.PlatformVersion); err != nil {
		errs = append(errs, fmt.Errorf("platform_version %q is not a version", c.PlatformVersion))
	}
	if _, err := model.ParseBackend(c.Backend); err != nil {
		errs = append(errs, fmt.Errorf("backend must be one of: %s; got %q", model.SupportedBackendList(), c.Backend))
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("log.level must be one of: debug, info, warn, error; got %q", c.Log.Level))
	}
	switch c.Log.Format {
	case "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log.format must be one of: json, text; got %q", c.Log.Format))
	}

	if len(errs) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(errs))
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	details := map[string]string{}
	if c.File != "" {
		details["path"] = c.File
	}
	return errors.WrapWithDetails(errors.EInvalidConfig, "invalid configuration: "+strings.Join(msgs, "; "),
		stderrors.Join(errs...), details)
}
