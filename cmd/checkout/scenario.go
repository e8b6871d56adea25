package main

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default_scenario.yaml
var defaultScenario []byte

var ErrInvalidScenario = errors.New("invalid scenario")

type Scenario struct {
	Customer ScenarioCustomer  `yaml:"customer"`
	Products []ScenarioProduct `yaml:"products"`
	Cart     []ScenarioLine    `yaml:"cart"`
}

type ScenarioCustomer struct {
	Name    string  `yaml:"name"`
	Balance float64 `yaml:"balance"`
}

// ScenarioProduct is shippable when WeightKg is set.
type ScenarioProduct struct {
	Name     string   `yaml:"name"`
	Price    float64  `yaml:"price"`
	Quantity int      `yaml:"quantity"`
	WeightKg *float64 `yaml:"weight_kg"`
}

type ScenarioLine struct {
	Product  string `yaml:"product"`
	Quantity int    `yaml:"quantity"`
}

func LoadScenario(path string) (Scenario, error) {
	if path == "" {
		return ParseScenario(defaultScenario)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}
	return ParseScenario(raw)
}

func ParseScenario(raw []byte) (Scenario, error) {
	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return Scenario{}, fmt.Errorf("%w: %v", ErrInvalidScenario, err)
	}
	if err := sc.validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

func (sc Scenario) validate() error {
	if strings.TrimSpace(sc.Customer.Name) == "" {
		return fmt.Errorf("%w: customer name is required", ErrInvalidScenario)
	}

	names := make(map[string]struct{}, len(sc.Products))
	for _, p := range sc.Products {
		if _, dup := names[p.Name]; dup {
			return fmt.Errorf("%w: duplicate product %q", ErrInvalidScenario, p.Name)
		}
		names[p.Name] = struct{}{}
	}

	for i, line := range sc.Cart {
		if _, ok := names[line.Product]; !ok {
			return fmt.Errorf("%w: cart line %d: unknown product %q", ErrInvalidScenario, i, line.Product)
		}
	}
	return nil
}
