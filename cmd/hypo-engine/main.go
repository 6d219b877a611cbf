package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/baufitools/hypo-engine/internal/config"
	"github.com/baufitools/hypo-engine/internal/report"
	"github.com/baufitools/hypo-engine/pkg/constants"
	"github.com/baufitools/hypo-engine/pkg/format"
	"github.com/baufitools/hypo-engine/pkg/money"
	"github.com/baufitools/hypo-engine/pkg/portfolio"
	"github.com/baufitools/hypo-engine/pkg/sondertilgung"
)

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info"
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	logFormat := loggingConfig.Format
	if logFormat == "" {
		logFormat = "json"
	}

	var zapConfig zap.Config
	switch logFormat {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", logFormat)
	}

	if loggingConfig.OutputFile != "" {
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}
		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}
	if outputFormat != constants.OutputFormatPretty && outputFormat != constants.OutputFormatCSV {
		logger.Fatal(fmt.Sprintf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatCSV, outputFormat),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	evaluationTime, err := conf.EvaluationTime(time.Now())
	if err != nil {
		logger.Fatal("failed to parse evaluation date",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	positions, err := conf.BuildPositions(evaluationTime)
	if err != nil {
		logger.Fatal("failed to validate loan configuration",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	analyzer := portfolio.NewAnalyzer(logger)
	summary, err := analyzer.Analyze(positions)
	if err != nil {
		logger.Fatal("failed to analyze portfolio",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	switch outputFormat {
	case constants.OutputFormatPretty:
		report.PrettyFormat(summary)
	case constants.OutputFormatCSV:
		report.CsvFormat(summary)
	}

	printStrategies(logger, conf, evaluationTime)
}

// printStrategies reports a Sondertilgung recommendation for every loan that
// declares available funds, when the configuration names a bank type.
func printStrategies(logger *zap.Logger, conf *config.Configuration, evaluationTime time.Time) {
	if conf.BankType == "" {
		return
	}
	rules, err := sondertilgung.RulesFor(sondertilgung.BankType(conf.BankType))
	if err != nil {
		logger.Warn("skipping strategy recommendations",
			zap.String("op", "main.printStrategies"),
			zap.Error(err),
		)
		return
	}

	for _, rawLoan := range conf.Loans {
		if rawLoan.AvailableFunds <= 0 || rawLoan.FixedRateYears <= 0 || rawLoan.StartDate == "" {
			continue
		}
		amount, err := money.NewLoanAmount(rawLoan.Amount)
		if err != nil {
			continue
		}
		funds, err := money.New(rawLoan.AvailableFunds)
		if err != nil {
			continue
		}
		start, err := time.Parse(config.DateTimeLayout, rawLoan.StartDate)
		if err != nil {
			continue
		}
		period := sondertilgung.FixedRatePeriod{Start: start, Years: rawLoan.FixedRateYears}
		strategy, err := sondertilgung.RecommendStrategy(rules, amount, funds, period, evaluationTime)
		if err != nil {
			logger.Info(fmt.Sprintf("no Sondertilgung strategy for loan %s", rawLoan.Name),
				zap.String("op", "main.printStrategies"),
				zap.Error(err),
			)
			continue
		}
		fmt.Printf("\nSondertilgung %s (%s): %.0f%% = %s, Gebuehren %s, Risiko %s, Zeitpunkt %s\n",
			rawLoan.Name,
			conf.BankType,
			strategy.Percentage,
			format.Money(strategy.Amount, 2),
			format.Money(strategy.Fees, 2),
			strategy.Risk,
			strategy.Timing,
		)
	}
}
