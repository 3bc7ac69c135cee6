package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ContactInfo is served verbatim by the contact-info endpoint.
type ContactInfo struct {
	Message string            `yaml:"message" json:"message"`
	Contact map[string]string `yaml:"contact" json:"contact"`
	Support []string          `yaml:"support" json:"support"`
}

func DefaultContactInfo() *ContactInfo {
	return &ContactInfo{
		Message: "Welcome to the loans service",
		Contact: map[string]string{
			"name":  "Loans support",
			"email": "loans-support@example.com",
		},
		Support: []string{"(555) 555-1234"},
	}
}

// LoadContactInfo parses the YAML document at path. An empty path yields the
// defaults; fields missing from the file keep their default value.
func LoadContactInfo(path string) (*ContactInfo, error) {
	ci := DefaultContactInfo()
	if path == "" {
		return ci, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read contact info %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, ci); err != nil {
		return nil, fmt.Errorf("parse contact info %s: %w", path, err)
	}
	return ci, nil
}
