package utils

import "clinicbook/config"

// IsProduction reports whether the app runs with the production environment.
func IsProduction() bool {
	return config.IsProduction()
}
