package environment

import "errors"

// ErrNoSettings is returned by Deployment.Setting when no settings source is
// attached to the deployment.
var ErrNoSettings = errors.New("no settings source attached to deployment")

// SettingsSource provides tabular per-environment override values.
type SettingsSource interface {
	// Lookup returns the value of property for env.
	Lookup(env Environment, property string) (string, error)
}

// Deployment carries everything a generation pass needs to know about its
// target: the environment, where settings files live, and the platform
// override object. It is passed explicitly from the pipeline entry point into
// every resolver.
type Deployment struct {
	// Environment is the target deployment environment.
	Environment Environment
	// SettingsRoot is the directory containing settings override files.
	SettingsRoot string
	// Overrides is the platform override object, if any. The binding package
	// inspects it for host provisioning interfaces.
	Overrides any
	// Settings provides tabular override values, if any.
	Settings SettingsSource
}

// For returns a Deployment targeting env with no overrides.
func For(env Environment) Deployment {
	return Deployment{Environment: env}
}

// Validate checks that a target environment is selected.
func (d Deployment) Validate() error {
	if d.Environment == "" {
		return ErrNoEnvironment
	}

	return nil
}

// Setting looks property up in the attached settings source.
func (d Deployment) Setting(property string) (string, error) {
	if d.Settings == nil {
		return "", ErrNoSettings
	}

	return d.Settings.Lookup(d.Environment, property)
}
