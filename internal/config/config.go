// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/baufitools/hypo-engine/pkg/constants"
	"github.com/baufitools/hypo-engine/pkg/sondertilgung"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for hypo-engine.
type Configuration struct {
	BankType       string
	EvaluationDate string        `yaml:"evaluationDate,omitempty"`
	Loans          []Loan
	Logging        LoggingConfig `yaml:"logging,omitempty"`
	Output         OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Loan indicates a mortgage and its parameters.
type Loan struct {
	Name           string
	Amount         float64
	AnnualRate     float64
	TermMonths     int
	MonthlyPayment float64 `yaml:"monthlyPayment,omitempty"` // derived when omitted
	StartDate      string
	FixedRateYears int     `yaml:"fixedRateYears,omitempty"`
	AvailableFunds float64 `yaml:"availableFunds,omitempty"`
	ExtraPayments  []ExtraPayment
	Property       *Property `yaml:"property,omitempty"`
}

// ExtraPayment is one out-of-schedule principal payment in a config file.
type ExtraPayment struct {
	Month  int
	Amount float64
}

// Property describes the financed property for LTV classification.
type Property struct {
	CurrentValue  float64
	PurchasePrice float64
	ValuationDate string
	Method        string
	Type          string
	Location      string
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration
// and returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Loans) == 0 {
		warnings = append(warnings, "configuration contains no loans")
	}

	if c.BankType != "" {
		if _, err := sondertilgung.RulesFor(sondertilgung.BankType(c.BankType)); err != nil {
			warnings = append(warnings, fmt.Sprintf("unknown bank type %q", c.BankType))
		}
	}

	for _, loan := range c.Loans {
		if loan.Name == "" {
			warnings = append(warnings, "loan without a name")
		}
		if loan.StartDate == "" {
			warnings = append(warnings, fmt.Sprintf("loan %q has no start date; status queries will be skipped", loan.Name))
		}
		for _, extra := range loan.ExtraPayments {
			if extra.Month > loan.TermMonths {
				warnings = append(warnings, fmt.Sprintf("loan %q: extra payment in month %d is beyond the %d month term",
					loan.Name, extra.Month, loan.TermMonths))
			}
		}
	}

	return warnings
}
