package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/mtcli/internal/ini"
)

// choiceValue is a string flag restricted to a fixed set of names.
type choiceValue struct {
	value   string
	choices []string
}

func newChoiceValue(def string, choices ini.Choices) *choiceValue {
	return &choiceValue{value: def, choices: choices.Names()}
}

func (c *choiceValue) String() string {
	return c.value
}

func (c *choiceValue) Set(v string) error {
	v = strings.ToLower(v)
	if !slices.Contains(c.choices, v) {
		return fmt.Errorf("must be one of %s", strings.Join(c.choices, ", "))
	}
	c.value = v
	return nil
}

func (*choiceValue) Type() string {
	return "string"
}

// optionalBool returns the flag's value only when the user set it.
func optionalBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return &v
}

// optionalInt returns the flag's value only when the user set it.
func optionalInt(cmd *cobra.Command, name string) *int {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, err := cmd.Flags().GetInt(name)
	if err != nil {
		return nil
	}
	return &v
}

// addChartFlags registers the --symbol and --period flags shared by chart commands.
func addChartFlags(cmd *cobra.Command) {
	cmd.Flags().String("symbol", "", "Chart symbol, e.g. EURUSD")
	cmd.Flags().String("period", "", "Chart timeframe, e.g. H1")
	_ = cmd.MarkFlagRequired("symbol")
	_ = cmd.MarkFlagRequired("period")
}

// stringFlag reads a registered string flag.
func stringFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
