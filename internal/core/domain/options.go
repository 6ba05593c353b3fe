package domain

import (
	"fmt"
	"math"
	"strings"
)

// FieldError describes a single argument validation failure.
type FieldError struct {
	// Field is the offending argument name.
	Field string

	// Reason is a human-readable description of the violation.
	Reason string
}

// Error returns the formatted field error.
func (e FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// FieldErrors collects validation failures for one invocation.
type FieldErrors []FieldError

// Error joins all field errors into one message naming each field.
func (e FieldErrors) Error() string {
	parts := make([]string, len(e))
	for i, fe := range e {
		parts[i] = fe.Error()
	}
	return "invalid arguments: " + strings.Join(parts, "; ")
}

// Argument names accepted across the search tools.
const (
	ArgQuery         = "query"
	ArgRegion        = "region"
	ArgSafeSearch    = "safesearch"
	ArgTimeLimit     = "timelimit"
	ArgMaxResults    = "max_results"
	ArgPage          = "page"
	ArgBackend       = "backend"
	ArgSize          = "size"
	ArgColor         = "color"
	ArgTypeImage     = "type_image"
	ArgLayout        = "layout"
	ArgLicenseImage  = "license_image"
	ArgResolution    = "resolution"
	ArgDuration      = "duration"
	ArgLicenseVideos = "license_videos"
)

// allowedArgs maps each search kind to the argument names it accepts.
// Books intentionally has no region, safesearch or timelimit: the book
// backends do not support them.
var allowedArgs = map[SearchKind][]string{
	KindText:   {ArgQuery, ArgRegion, ArgSafeSearch, ArgTimeLimit, ArgMaxResults, ArgPage, ArgBackend},
	KindImages: {ArgQuery, ArgRegion, ArgSafeSearch, ArgTimeLimit, ArgMaxResults, ArgPage, ArgBackend, ArgSize, ArgColor, ArgTypeImage, ArgLayout, ArgLicenseImage},
	KindVideos: {ArgQuery, ArgRegion, ArgSafeSearch, ArgTimeLimit, ArgMaxResults, ArgPage, ArgBackend, ArgResolution, ArgDuration, ArgLicenseVideos},
	KindNews:   {ArgQuery, ArgRegion, ArgSafeSearch, ArgTimeLimit, ArgMaxResults, ArgPage, ArgBackend},
	KindBooks:  {ArgQuery, ArgMaxResults, ArgPage, ArgBackend},
}

// timeLimits maps each search kind to its accepted timelimit values.
// Videos and news have no yearly window.
var timeLimits = map[SearchKind][]TimeLimit{
	KindText:   {TimeLimitDay, TimeLimitWeek, TimeLimitMonth, TimeLimitYear},
	KindImages: {TimeLimitDay, TimeLimitWeek, TimeLimitMonth, TimeLimitYear},
	KindVideos: {TimeLimitDay, TimeLimitWeek, TimeLimitMonth},
	KindNews:   {TimeLimitDay, TimeLimitWeek, TimeLimitMonth},
}

// AllowedArguments returns the argument names the kind accepts, in
// schema order.
func AllowedArguments(kind SearchKind) []string {
	return allowedArgs[kind]
}

// AllowedTimeLimits returns the timelimit values the kind accepts.
func AllowedTimeLimits(kind SearchKind) []TimeLimit {
	return timeLimits[kind]
}

// ParseSearchOptions is the single validation step turning an untyped
// argument mapping into a typed SearchOptions value. It checks required
// fields, primitive types and enum membership, applies defaults for
// omitted optionals, and rejects arguments the kind does not accept.
// On failure it returns every violation found, not just the first.
func ParseSearchOptions(kind SearchKind, args map[string]any) (string, SearchOptions, FieldErrors) {
	var errs FieldErrors
	opts := DefaultSearchOptions()

	allowed := make(map[string]bool, len(allowedArgs[kind]))
	for _, name := range allowedArgs[kind] {
		allowed[name] = true
	}
	for name := range args {
		if !allowed[name] {
			errs = append(errs, FieldError{Field: name, Reason: "unknown parameter for " + kind.String() + " search"})
		}
	}

	query, ok, err := stringArg(args, ArgQuery)
	if err != nil {
		errs = append(errs, *err)
	} else if !ok || strings.TrimSpace(query) == "" {
		errs = append(errs, FieldError{Field: ArgQuery, Reason: "required"})
	}

	if v, ok, err := stringArg(args, ArgRegion); err != nil {
		errs = append(errs, *err)
	} else if ok {
		opts.Region = v
	}

	if v, ok, err := stringArg(args, ArgSafeSearch); err != nil {
		errs = append(errs, *err)
	} else if ok {
		ss := SafeSearch(v)
		if !ss.IsValid() {
			errs = append(errs, FieldError{Field: ArgSafeSearch, Reason: `must be one of "on", "moderate", "off"`})
		} else {
			opts.SafeSearch = ss
		}
	}

	if v, ok, err := stringArg(args, ArgTimeLimit); err != nil {
		errs = append(errs, *err)
	} else if ok && v != "" {
		tl := TimeLimit(v)
		if !timeLimitAllowed(kind, tl) {
			errs = append(errs, FieldError{Field: ArgTimeLimit, Reason: "not a valid time limit for " + kind.String() + " search"})
		} else {
			opts.TimeLimit = tl
		}
	}

	if v, ok, err := intArg(args, ArgMaxResults); err != nil {
		errs = append(errs, *err)
	} else if ok {
		if v < 1 || v > MaxResultsCeiling {
			errs = append(errs, FieldError{Field: ArgMaxResults, Reason: fmt.Sprintf("must be between 1 and %d", MaxResultsCeiling)})
		} else {
			opts.MaxResults = v
		}
	}

	if v, ok, err := intArg(args, ArgPage); err != nil {
		errs = append(errs, *err)
	} else if ok {
		if v < 1 {
			errs = append(errs, FieldError{Field: ArgPage, Reason: "must be at least 1"})
		} else {
			opts.Page = v
		}
	}

	if v, ok, err := stringArg(args, ArgBackend); err != nil {
		errs = append(errs, *err)
	} else if ok {
		opts.Backend = v
	}

	// Free-form facet strings; type-checked only.
	facets := []struct {
		name string
		dst  *string
	}{
		{ArgSize, &opts.Size},
		{ArgColor, &opts.Color},
		{ArgTypeImage, &opts.TypeImage},
		{ArgLayout, &opts.Layout},
		{ArgLicenseImage, &opts.LicenseImage},
		{ArgResolution, &opts.Resolution},
		{ArgDuration, &opts.Duration},
		{ArgLicenseVideos, &opts.LicenseVideos},
	}
	for _, f := range facets {
		if !allowed[f.name] {
			continue
		}
		if v, ok, err := stringArg(args, f.name); err != nil {
			errs = append(errs, *err)
		} else if ok {
			*f.dst = v
		}
	}

	if len(errs) > 0 {
		return "", SearchOptions{}, errs
	}
	return query, opts, nil
}

func timeLimitAllowed(kind SearchKind, tl TimeLimit) bool {
	for _, allowed := range timeLimits[kind] {
		if tl == allowed {
			return true
		}
	}
	return false
}

// stringArg extracts an optional string argument. The bool result reports
// whether the argument was present.
func stringArg(args map[string]any, name string) (string, bool, *FieldError) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return "", false, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", false, &FieldError{Field: name, Reason: "must be a string"}
	}
	return s, true, nil
}

// intArg extracts an optional integer argument. JSON numbers decode as
// float64, so integral floats are accepted.
func intArg(args map[string]any, name string) (int, bool, *FieldError) {
	raw, ok := args[name]
	if !ok || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case int:
		return v, true, nil
	case int64:
		return int(v), true, nil
	case float64:
		if v != math.Trunc(v) {
			return 0, false, &FieldError{Field: name, Reason: "must be an integer"}
		}
		return int(v), true, nil
	default:
		return 0, false, &FieldError{Field: name, Reason: "must be an integer"}
	}
}
