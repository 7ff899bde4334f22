package config

import (
	"fmt"
	"strings"

	"github.com/christophe-duc/lazydialog/pkg/dialog"
	"github.com/christophe-duc/lazydialog/pkg/native"
	"github.com/samber/lo"
)

// Validate validates the user config
func (config *UserConfig) Validate() error {
	if !lo.Contains(native.BackendNames(), config.Dialog.Backend) {
		return fmt.Errorf("Unrecognized dialog backend '%s'. Must be one of: %s",
			config.Dialog.Backend, strings.Join(native.BackendNames(), ", "))
	}

	if err := validateFilters(config.Dialog.Filters); err != nil {
		return err
	}

	if config.Dialog.CloseTimeout < 0 {
		return fmt.Errorf("dialog.closeTimeout must not be negative, got %s", config.Dialog.CloseTimeout)
	}

	if _, err := dialog.ParseMessageLevel(config.Message.Level); err != nil {
		return fmt.Errorf("message.level: %w", err)
	}

	if _, err := dialog.ParseMessageButtons(config.Message.Buttons); err != nil {
		return fmt.Errorf("message.buttons: %w", err)
	}

	return nil
}

// validateFilters checks every filter has a name and at least one extension,
// given without the leading dot
func validateFilters(filters []FilterConfig) error {
	for i, filter := range filters {
		path := fmt.Sprintf("dialog.filters[%d]", i)
		if filter.Name == "" {
			return fmt.Errorf("%s has no name", path)
		}
		if len(filter.Extensions) == 0 {
			return fmt.Errorf("%s (%s) has no extensions", path, filter.Name)
		}
		for _, extension := range filter.Extensions {
			if extension == "" || strings.HasPrefix(extension, ".") {
				return fmt.Errorf("Unrecognized extension '%s' in %s (%s). Give extensions without the leading dot, e.g. 'txt'",
					extension, path, filter.Name)
			}
		}
	}
	return nil
}
