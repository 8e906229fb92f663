package config

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/wealthmap/household-projection/internal/domain"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfiguration marks a configuration value that is not numeric
	// or otherwise cannot be used.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrUnknownParameter marks an override key that names no field.
	ErrUnknownParameter = errors.New("unknown parameter")
)

// MaxAge bounds current_age and end_age, which keeps a projection to at
// most MaxAge+1 years.
const MaxAge = 120

var decimalType = reflect.TypeOf(decimal.Decimal{})

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file. Fields missing
// from the file keep their default values.
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes YAML (or JSON, which is valid YAML) on top of the defaults.
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	config := domain.DefaultConfiguration()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w: %v", ErrInvalidConfiguration, err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration checks the values a projection cannot be computed
// from. Degenerate age ranges are accepted; they yield empty phase windows.
// The projected ages themselves must lie in [0, MaxAge].
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if config.CurrentAge < 0 || config.CurrentAge > MaxAge {
		return fmt.Errorf("%w: current_age must be between 0 and %d, got %d", ErrInvalidConfiguration, MaxAge, config.CurrentAge)
	}
	if config.EndAge < 0 || config.EndAge > MaxAge {
		return fmt.Errorf("%w: end_age must be between 0 and %d, got %d", ErrInvalidConfiguration, MaxAge, config.EndAge)
	}

	if config.Heirs <= 0 {
		return fmt.Errorf("%w: heirs must be positive, got %d", ErrInvalidConfiguration, config.Heirs)
	}

	for i, purchase := range config.LandPurchases {
		if purchase.Acres.IsNegative() {
			return fmt.Errorf("%w: land purchase %d has negative acreage %s",
				ErrInvalidConfiguration, i, purchase.Acres)
		}
	}

	return nil
}

// CreateExampleConfiguration creates an example configuration
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	config := domain.DefaultConfiguration()
	return &config
}

// SaveConfiguration writes config to filename as YAML.
func (ip *InputParser) SaveConfiguration(config *domain.Configuration, filename string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal configuration: %w", err)
	}
	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ParseOverrides turns "key=value" pairs into an override map.
func ParseOverrides(pairs []string) (map[string]string, error) {
	out := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: override %q is not key=value", ErrInvalidConfiguration, pair)
		}
		out[key] = strings.TrimSpace(value)
	}
	return out, nil
}

// ApplyOverrides returns a copy of config with each override applied.
// Keys are yaml field names; nested fields use dots
// ("peak.earner_two_income", "land_purchases.1.acres").
func (ip *InputParser) ApplyOverrides(config domain.Configuration, overrides map[string]string) (domain.Configuration, error) {
	out := config.Clone()

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	root := reflect.ValueOf(&out).Elem()
	for _, key := range keys {
		field, err := lookupField(root, key)
		if err != nil {
			return config, err
		}
		if err := setField(field, key, overrides[key]); err != nil {
			return config, err
		}
	}

	if err := ip.ValidateConfiguration(&out); err != nil {
		return config, err
	}
	return out, nil
}

// ParameterNames lists every overridable key for config in field order.
func ParameterNames(config domain.Configuration) []string {
	var names []string
	collectNames(reflect.ValueOf(config), "", &names)
	return names
}

func collectNames(v reflect.Value, prefix string, names *[]string) {
	switch {
	case v.Type() == decimalType || v.Kind() == reflect.Int:
		*names = append(*names, prefix)
	case v.Kind() == reflect.Struct:
		for i := 0; i < v.NumField(); i++ {
			name := yamlName(v.Type().Field(i))
			if name == "" {
				continue
			}
			collectNames(v.Field(i), join(prefix, name), names)
		}
	case v.Kind() == reflect.Slice:
		for i := 0; i < v.Len(); i++ {
			collectNames(v.Index(i), join(prefix, strconv.Itoa(i)), names)
		}
	}
}

func lookupField(root reflect.Value, key string) (reflect.Value, error) {
	v := root
	for _, segment := range strings.Split(key, ".") {
		switch v.Kind() {
		case reflect.Struct:
			next, ok := structField(v, segment)
			if !ok {
				return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnknownParameter, key)
			}
			v = next
		case reflect.Slice:
			idx, err := strconv.Atoi(segment)
			if err != nil || idx < 0 || idx >= v.Len() {
				return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnknownParameter, key)
			}
			v = v.Index(idx)
		default:
			return reflect.Value{}, fmt.Errorf("%w: %s", ErrUnknownParameter, key)
		}
	}
	if v.Type() != decimalType && v.Kind() != reflect.Int {
		return reflect.Value{}, fmt.Errorf("%w: %s is not a scalar", ErrUnknownParameter, key)
	}
	return v, nil
}

func structField(v reflect.Value, name string) (reflect.Value, bool) {
	if v.Type() == decimalType {
		return reflect.Value{}, false
	}
	for i := 0; i < v.NumField(); i++ {
		if yamlName(v.Type().Field(i)) == name {
			return v.Field(i), true
		}
	}
	return reflect.Value{}, false
}

func setField(field reflect.Value, key, raw string) error {
	if field.Type() == decimalType {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			return fmt.Errorf("%w: %s=%q is not numeric", ErrInvalidConfiguration, key, raw)
		}
		field.Set(reflect.ValueOf(d))
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fmt.Errorf("%w: %s=%q is not an integer", ErrInvalidConfiguration, key, raw)
	}
	field.SetInt(int64(n))
	return nil
}

func yamlName(f reflect.StructField) string {
	tag := f.Tag.Get("yaml")
	name, _, _ := strings.Cut(tag, ",")
	if name == "-" {
		return ""
	}
	return name
}

func join(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}
