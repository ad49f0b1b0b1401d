package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// AlertSettings carries the tunables of the alert dispatcher. Each template
// takes the plant name and the relevant reading value, in that order.
type AlertSettings struct {
	LookupCacheSeconds int    `yaml:"lookupCacheSeconds"`
	ECLowTemplate      string `yaml:"ecLowTemplate"`
	ECHighTemplate     string `yaml:"ecHighTemplate"`
	PHLowTemplate      string `yaml:"phLowTemplate"`
	PHHighTemplate     string `yaml:"phHighTemplate"`
}

var DefaultAlertSettings = AlertSettings{
	LookupCacheSeconds: 30,
	ECLowTemplate:      "Plant %s: EC %.2f is below range, pump 1 dosed nutrients.",
	ECHighTemplate:     "Plant %s: EC %.2f is above range, pump 2 diluted the solution.",
	PHLowTemplate:      "Plant %s: pH %.2f is below range, pump 3 dosed pH up.",
	PHHighTemplate:     "Plant %s: pH %.2f is above range, pump 4 dosed pH down.",
}

// LoadAlertSettings reads the settings file, writing the defaults out first
// when no file exists yet so operators have something to edit.
func LoadAlertSettings(path string) (AlertSettings, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		data, err := yaml.Marshal(DefaultAlertSettings)
		if err != nil {
			return AlertSettings{}, err
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return AlertSettings{}, fmt.Errorf("write default settings: %w", err)
		}
		return DefaultAlertSettings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return AlertSettings{}, err
	}

	settings := DefaultAlertSettings
	if err := yaml.Unmarshal(data, &settings); err != nil {
		return AlertSettings{}, fmt.Errorf("parse %s: %w", path, err)
	}
	return settings, nil
}
