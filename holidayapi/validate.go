package holidayapi

import (
	"fmt"
	"regexp"
	"slices"
)

// SupportedVersions lists the API versions the client can target.
var SupportedVersions = []int{1}

var keyPattern = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// ValidateKey reports whether key is plausibly a Holiday API key. It only
// checks the shape; the API may still reject a well-formed key.
func ValidateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKeyFormat, key)
	}
	return nil
}

// ValidateVersion reports whether version is one of SupportedVersions.
func ValidateVersion(version int) error {
	if !slices.Contains(SupportedVersions, version) {
		return fmt.Errorf("%w: %d, please choose one of %v", ErrInvalidVersion, version, SupportedVersions)
	}
	return nil
}
