package integrator

import (
	_ "embed"

	"gopkg.in/yaml.v3"
)

//go:embed testdata/scenarios.yaml
var scenarioFixturesYAML []byte

// ScenarioFixture holds the golden expectation for one spec §8 end-to-end
// scenario: a reference pixel value, a tolerance, or both. Not every field
// applies to every scenario.
type ScenarioFixture struct {
	Name            string  `yaml:"name"`
	ReferenceRGB255 []int   `yaml:"reference_rgb255,omitempty"`
	TolerancePct    float64 `yaml:"tolerance_pct,omitempty"`
}

// ScenarioFixtures is the decoded testdata/scenarios.yaml document.
type ScenarioFixtures struct {
	Scenarios []ScenarioFixture `yaml:"scenarios"`
}

// LoadScenarioFixtures decodes the embedded golden-scenario fixture file
// (spec §4.N). It never touches the filesystem at runtime, so test
// packages that import pkg/integrator can call it regardless of their own
// working directory.
func LoadScenarioFixtures() (ScenarioFixtures, error) {
	var f ScenarioFixtures
	err := yaml.Unmarshal(scenarioFixturesYAML, &f)
	return f, err
}

// Find returns the fixture with the given name.
func (f ScenarioFixtures) Find(name string) (ScenarioFixture, bool) {
	for _, s := range f.Scenarios {
		if s.Name == name {
			return s, true
		}
	}
	return ScenarioFixture{}, false
}
