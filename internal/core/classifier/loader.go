package classifier

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ruleFile is the on-disk layout of a rule table; list order is priority order.
type ruleFile struct {
	Rules []Rule `yaml:"rules"`
}

// LoadRulesFile reads a YAML rule table from path.
func LoadRulesFile(path string) ([]Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open classifier rules file: %w", err)
	}
	defer f.Close()
	return LoadRules(f)
}

// LoadRules decodes a YAML rule table.
func LoadRules(r io.Reader) ([]Rule, error) {
	var file ruleFile
	if err := yaml.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("failed to decode classifier rules: %w", err)
	}
	if len(file.Rules) == 0 {
		return nil, fmt.Errorf("classifier rules file defines no rules")
	}
	for i, rule := range file.Rules {
		if rule.Name == "" {
			return nil, fmt.Errorf("classifier rule %d has no name", i+1)
		}
		if len(rule.Keywords) == 0 {
			return nil, fmt.Errorf("classifier rule %q has no keywords", rule.Name)
		}
		if rule.Template.DebitAccount == "" || rule.Template.CreditAccount == "" {
			return nil, fmt.Errorf("classifier rule %q must name both debit and credit accounts", rule.Name)
		}
	}
	return file.Rules, nil
}
