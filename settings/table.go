package settings

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"

	"binding-generator/environment"
)

// Extension is the file name suffix of settings files.
const Extension = ".settings.yaml"

// Table is a parsed settings file.
type Table struct {
	// Path is the file the table was loaded from, used in error messages.
	Path         string   `yaml:"-"`
	Environments []string `yaml:"environments"`
	// Properties holds one row per property, one cell per environment
	// column. A nil cell is a null in the file and keeps its column.
	Properties map[string][]*string `yaml:"properties"`
}

// EnvironmentError reports a target environment a settings file does not
// declare exactly once.
type EnvironmentError struct {
	Environment environment.Environment
	File        string
	// Duplicate is set when the environment has several columns.
	Duplicate bool
}

func (e *EnvironmentError) Error() string {
	if e.Duplicate {
		return fmt.Sprintf("target environment '%s' is declared multiple times in settings file '%s'", e.Environment, e.File)
	}

	return fmt.Sprintf("target environment '%s' is not declared in settings file '%s'", e.Environment, e.File)
}

// Resolve returns the path of the settings file named name under root.
func Resolve(root, name string) string {
	return filepath.Join(root, name+Extension)
}

// LoadFile loads and parses a settings file.
func LoadFile(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read settings file %s: %w", path, err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	t.Path = path

	return t, nil
}

// Parse parses YAML data into a Table.
func Parse(data []byte) (*Table, error) {
	var t Table

	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse settings YAML: %w", err)
	}

	if err := t.validate(); err != nil {
		return nil, err
	}

	return &t, nil
}

func (t *Table) validate() error {
	if len(t.Environments) == 0 {
		return errors.New("settings declare no environments")
	}

	for _, property := range t.PropertyNames() {
		if n := len(t.Properties[property]); n > len(t.Environments) {
			return fmt.Errorf("property '%s' has %d values for %d environments", property, n, len(t.Environments))
		}
	}

	return nil
}

// PropertyNames returns the declared properties in sorted order.
func (t *Table) PropertyNames() []string {
	names := make([]string, 0, len(t.Properties))
	for name := range t.Properties {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Lookup returns the value of property for env. It fails with an
// *EnvironmentError when env is not declared exactly once, and with an
// *environment.NotSupportedError when the cell is empty or missing.
func (t *Table) Lookup(env environment.Environment, property string) (string, error) {
	column, err := t.column(env)
	if err != nil {
		return "", err
	}

	row := t.Properties[property]
	if column >= len(row) || row[column] == nil || *row[column] == "" {
		return "", &environment.NotSupportedError{Member: property, Environment: env}
	}

	return *row[column], nil
}

func (t *Table) column(env environment.Environment) (int, error) {
	column := -1

	for i, declared := range t.Environments {
		parsed, err := environment.Parse(declared)
		if err != nil || parsed != env {
			continue
		}

		if column >= 0 {
			return -1, &EnvironmentError{Environment: env, File: t.Path, Duplicate: true}
		}

		column = i
	}

	if column < 0 {
		return -1, &EnvironmentError{Environment: env, File: t.Path}
	}

	return column, nil
}

// ForDeployment returns d with t attached as its settings source.
func ForDeployment(d environment.Deployment, t *Table) environment.Deployment {
	d.Settings = t
	return d
}

// LoadForDeployment loads the settings file named name under d.SettingsRoot
// and attaches it to d. A deployment without settings root is returned
// unchanged.
func LoadForDeployment(d environment.Deployment, name string) (environment.Deployment, error) {
	if d.SettingsRoot == "" {
		return d, nil
	}

	t, err := LoadFile(Resolve(d.SettingsRoot, name))
	if err != nil {
		return d, err
	}

	return ForDeployment(d, t), nil
}
