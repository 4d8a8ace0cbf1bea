// Package validate checks rendered story markup for the structural
// markers a stories viewer requires. It is a pure text-marker check,
// not a markup parse: required markers missing become errors, optional
// ones become warnings, and nothing here ever fails hard.
package validate

import "strings"

// Result separates hard failures from advisories. IsValid is true
// exactly when no required marker is missing.
type Result struct {
	IsValid  bool     `json:"isValid"`
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Validate inspects rendered markup for required and optional markers.
func Validate(markup string) Result {
	errs := []string{}
	warnings := []string{}

	if !strings.Contains(markup, "<html amp") && !strings.Contains(markup, "<html ⚡") {
		errs = append(errs, "missing amp attribute on the html element")
	}
	if !strings.Contains(markup, "<amp-story") {
		errs = append(errs, "missing amp-story component")
	}
	if !strings.Contains(markup, `name="viewport"`) {
		errs = append(errs, "missing viewport meta tag")
	}

	if !strings.Contains(markup, "application/ld+json") {
		warnings = append(warnings, "missing structured data (application/ld+json)")
	}
	if !strings.Contains(markup, `rel="canonical"`) {
		warnings = append(warnings, "missing canonical URL link")
	}

	return Result{
		IsValid:  len(errs) == 0,
		Errors:   errs,
		Warnings: warnings,
	}
}
