package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Parse decodes a scenario from YAML. Unknown keys are rejected so that a
// misspelled field does not silently fall back to zero.
func Parse(data []byte) (Scenario, error) {
	var sc Scenario

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		if errors.Is(err, io.EOF) {
			return sc, errors.New("config: empty scenario")
		}
		return sc, fmt.Errorf("config: failed to parse scenario: %w", err)
	}
	return sc, nil
}

// Load returns the embedded demo scenario.
// If the embedded YAML cannot be decoded, it returns DefaultScenario together
// with the decoding error so the caller can report it and carry on.
func Load() (Scenario, error) {
	sc, err := Parse(defaultDemoYAML)
	if err != nil {
		return DefaultScenario(), err
	}
	return sc, nil
}
