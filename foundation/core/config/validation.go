// File: validation.go
// Title: Configuration Validation Implementation
// Description: Validates configuration values against rules: required
//              fields, types, ranges, patterns and allowed values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2025-08-14 v0.2.0: OneOf rule, defaults applied after the read lock is released

package config

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"time"

	mdwerror "github.com/msto63/mdwcal/foundation/core/error"
)

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors,omitempty"`
}

// Err converts a failed result into an error, or nil when valid
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return mdwerror.New("configuration validation failed: " + strings.Join(r.Errors, "; ")).
		WithCode(mdwerror.CodeInvalidConfig).
		WithOperation("config.Validate").
		WithDetail("errors", r.Errors)
}

// Validate validates the configuration against the provided rules. Missing
// optional keys with a Default are filled in.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	result := &ValidationResult{Valid: true}

	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		rule := rules[key]
		value := c.getValue(key)
		if env, ok := c.getEnvValue(key); ok {
			value = env
		}

		if value == nil {
			if rule.Required {
				result.Valid = false
				result.Errors = append(result.Errors, fmt.Sprintf("required field '%s' is missing", key))
			} else if rule.Default != nil {
				c.Set(key, rule.Default)
			}
			continue
		}

		if err := validateField(key, value, rule); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err.Error())
		}
	}

	return result
}

func validateField(key string, value interface{}, rule ValidationRule) error {
	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if rule.Min != nil {
		if err := validateMin(key, value, rule.Min); err != nil {
			return err
		}
	}

	if rule.Max != nil {
		if err := validateMax(key, value, rule.Max); err != nil {
			return err
		}
	}

	if rule.Pattern != "" {
		if err := validatePattern(key, value, rule.Pattern); err != nil {
			return err
		}
	}

	if len(rule.OneOf) > 0 {
		s := fmt.Sprintf("%v", value)
		for _, allowed := range rule.OneOf {
			if strings.EqualFold(s, allowed) {
				return nil
			}
		}
		return fmt.Errorf("field '%s' value '%s' must be one of %s", key, s, strings.Join(rule.OneOf, ", "))
	}

	return nil
}

func validateType(key string, value interface{}, expectedType string) error {
	kind := reflect.TypeOf(value).Kind()

	switch expectedType {
	case "string":
		if kind != reflect.String {
			return fmt.Errorf("field '%s' must be a string, got %s", key, kind)
		}

	case "int":
		switch kind {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		case reflect.Float64:
			if f := value.(float64); f != float64(int64(f)) {
				return fmt.Errorf("field '%s' must be an integer, got float with decimal places", key)
			}
		default:
			return fmt.Errorf("field '%s' must be an integer, got %s", key, kind)
		}

	case "float":
		switch kind {
		case reflect.Float32, reflect.Float64,
			reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		default:
			return fmt.Errorf("field '%s' must be a float, got %s", key, kind)
		}

	case "bool":
		if kind != reflect.Bool {
			return fmt.Errorf("field '%s' must be a boolean, got %s", key, kind)
		}

	case "duration":
		if s, ok := value.(string); ok {
			if _, err := time.ParseDuration(s); err != nil {
				return fmt.Errorf("field '%s' must be a valid duration string, got '%v'", key, value)
			}
		} else if _, ok := value.(time.Duration); !ok {
			return fmt.Errorf("field '%s' must be a duration, got %s", key, kind)
		}

	case "[]string":
		switch value.(type) {
		case []string, []interface{}:
		default:
			return fmt.Errorf("field '%s' must be a slice of strings, got %s", key, kind)
		}

	default:
		return fmt.Errorf("unknown validation type: %s", expectedType)
	}

	return nil
}

func toFloat(v interface{}) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

func lengthOf(v interface{}) (int, bool) {
	switch val := v.(type) {
	case string:
		return len(val), true
	case []string:
		return len(val), true
	case []interface{}:
		return len(val), true
	}
	return 0, false
}

func validateMin(key string, value interface{}, min interface{}) error {
	if n, ok := toFloat(value); ok {
		if m, ok := toFloat(min); ok && n < m {
			return fmt.Errorf("field '%s' value %g is less than minimum %g", key, n, m)
		}
		return nil
	}
	if l, ok := lengthOf(value); ok {
		if m, ok := min.(int); ok && l < m {
			return fmt.Errorf("field '%s' length %d is less than minimum %d", key, l, m)
		}
	}
	return nil
}

func validateMax(key string, value interface{}, max interface{}) error {
	if n, ok := toFloat(value); ok {
		if m, ok := toFloat(max); ok && n > m {
			return fmt.Errorf("field '%s' value %g is greater than maximum %g", key, n, m)
		}
		return nil
	}
	if l, ok := lengthOf(value); ok {
		if m, ok := max.(int); ok && l > m {
			return fmt.Errorf("field '%s' length %d is greater than maximum %d", key, l, m)
		}
	}
	return nil
}

func validatePattern(key string, value interface{}, pattern string) error {
	strValue, ok := value.(string)
	if !ok {
		return fmt.Errorf("field '%s' pattern validation requires string value", key)
	}

	regex, err := regexp.Compile(pattern)
	if err != nil {
		return fmt.Errorf("invalid regex pattern for field '%s': %w", key, err)
	}

	if !regex.MatchString(strValue) {
		return fmt.Errorf("field '%s' value '%s' does not match pattern '%s'", key, strValue, pattern)
	}

	return nil
}
