package ini

import (
	"fmt"
	"sort"
	"strings"
)

// Choices maps the names accepted on the command line to the numeric codes written to
// the tester configuration.
type Choices map[string]int

// Names returns the accepted names in a stable order.
func (c Choices) Names() []string {
	names := make([]string, 0, len(c))
	for name := range c {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return c[names[i]] < c[names[j]] })
	return names
}

// Code resolves name, returning an error listing the accepted names.
func (c Choices) Code(name string) (int, error) {
	code, ok := c[name]
	if !ok {
		return 0, fmt.Errorf("invalid choice %q (choose from %s)", name, strings.Join(c.Names(), ", "))
	}
	return code, nil
}

// Lookup resolves an optional name; empty means unset.
func (c Choices) Lookup(name string) (*int, error) {
	if name == "" {
		return nil, nil
	}
	code, err := c.Code(name)
	if err != nil {
		return nil, err
	}
	return &code, nil
}

var (
	// Models are the tick generation modes.
	Models = Choices{"everytick": 0, "ohlc1": 1, "open": 2, "math": 3, "realticks": 4}

	// Optimizations are the optimisation modes.
	Optimizations = Choices{"off": 0, "slow": 1, "fast": 2, "allsymbols": 3}

	// Criteria are the optimisation criteria.
	Criteria = Choices{
		"max_balance":          0,
		"balance_x_profit":     1,
		"balance_x_exp_payoff": 2,
		"(100%-dd)xbal":        3,
		"balance_x_recovery":   4,
		"balance_x_sharpe":     5,
		"custom_ontester":      6,
		"complex":              7,
	}

	// ForwardModes are the forward testing splits.
	ForwardModes = Choices{"off": 0, "1/2": 1, "1/3": 2, "1/4": 3, "custom": 4}
)
