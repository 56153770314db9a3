package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultScenario []byte

type scenario struct {
	Runs []run `yaml:"runs"`
}

type run struct {
	Title     string `yaml:"title"`
	Container string `yaml:"container"`
	Initial   []int  `yaml:"initial"`
	// when set, the container starts with 0..Count-1 pushed one by one
	Count int    `yaml:"count"`
	Steps []step `yaml:"steps"`
}

type step struct {
	Label string `yaml:"label"`
	Op    string `yaml:"op"`
	Index int    `yaml:"index"`
	Value int    `yaml:"value"`
}

func loadScenario(path string) (*scenario, error) {
	data := defaultScenario
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, err
		}
	}
	return parseScenario(data)
}

func parseScenario(data []byte) (*scenario, error) {
	s := new(scenario)
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, fmt.Errorf("decoding scenario: %w", err)
	}
	if len(s.Runs) == 0 {
		return nil, errors.New("scenario has no runs")
	}
	for i, r := range s.Runs {
		if _, ok := containerKinds[r.Container]; !ok {
			return nil, fmt.Errorf("run %d: unknown container %q", i, r.Container)
		}
	}
	return s, nil
}

func (r run) values() []int {
	if r.Count == 0 {
		return r.Initial
	}
	values := make([]int, 0, len(r.Initial)+r.Count)
	values = append(values, r.Initial...)
	for i := 0; i < r.Count; i++ {
		values = append(values, i)
	}
	return values
}
