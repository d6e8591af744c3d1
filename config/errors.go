package config

import "github.com/skedcli/sked/internal/apperr"

var (
	errConfigOption = &apperr.Error{
		Message: "config option error: %v",
	}

	errConfigValidation = &apperr.Error{
		Message: "config validation error: %v",
	}

	errInvalidPeriod = &apperr.Error{
		Message: "please provide a valid time period",
	}

	errInvalidDateRange = &apperr.Error{
		Message: "the end date must not be earlier than the start date",
	}
)
