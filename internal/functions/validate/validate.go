// Package validate provides functions
// checking command line input.
package validate

import (
	"fmt"
	"regexp"
)

// IsMatchesTemplate - checks
// for regular expression matches.
func IsMatchesTemplate(
	value string,
	pattern string,
) (bool, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("IsMatchesTemplate->Compile: %w", err)
	}

	return re.MatchString(value), nil
}
