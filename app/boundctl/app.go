package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-playground/validator"
	jsoniter "github.com/json-iterator/go"
	"github.com/kelseyhightower/envconfig"
	"github.com/samber/lo"
	"gitlab.com/navyx/nexus/bounded/pkg/bounded"
	"gitlab.com/navyx/nexus/bounded/pkg/util"
)

var (
	json = jsoniter.ConfigCompatibleWithStandardLibrary

	ErrTooManySteps = errors.New("too many steps")
)

// App drives one bounded value through the steps given on the command line
// and writes one JSON record per step to out.
type App struct {
	logger *slog.Logger
	out    io.Writer
}

func (a *App) Run(args []string) {
	config := a.loadConfig()

	if err := a.execute(config, args); err != nil {
		a.logger.Error("Failed to run steps", "err", err)
		os.Exit(1)
	}
}

func (a *App) loadConfig() Config {
	config, err := readConfig()
	if err != nil {
		a.logger.Error("Invalid configuration", "err", err)
		os.Exit(1)
	}
	return config
}

func readConfig() (Config, error) {
	// Load environment variables into the struct
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("failed to process environment variables: %w", err)
	}

	validate := validator.New()
	if err := validate.Struct(config); err != nil {
		return Config{}, fmt.Errorf("validation failed: %w", err)
	}

	return config, nil
}

func (a *App) execute(config Config, args []string) error {
	if len(args) > config.MaxSteps {
		return fmt.Errorf("%w: %d given, BOUND_MAX_STEPS is %d", ErrTooManySteps, len(args), config.MaxSteps)
	}

	steps := make([]step, 0, len(args))
	for _, raw := range util.MapSlice(args, strings.TrimSpace) {
		s, err := parseStep(raw)
		if err != nil {
			return err
		}
		steps = append(steps, s)
	}

	if config.Min > config.Max {
		a.logger.Warn("Minimum above maximum, raising maximum", "min", config.Min, "max", config.Max)
	}

	var opts []bounded.DynamicOption
	if config.Wrap {
		opts = append(opts, bounded.WithWrap())
	}

	a.logger.Info("Running steps",
		"min", config.Min,
		"max", config.Max,
		"mode", lo.Ternary(config.Wrap, "wrap", "clamp"),
		"type", lo.Ternary(config.Integer, "int64", "float64"),
		"steps", len(steps),
	)

	encoder := json.NewEncoder(a.out)
	if config.Integer {
		initial, lower, upper, err := integerConfig(config)
		if err != nil {
			return err
		}
		value := bounded.NewDynamic(initial, lower, upper, opts...)
		return runSteps(a.logger, encoder, value, steps)
	}
	value := bounded.NewDynamic(config.Initial, config.Min, config.Max, opts...)
	return runSteps(a.logger, encoder, value, steps)
}

func runSteps[T bounded.Number](logger *slog.Logger, encoder *jsoniter.Encoder, value bounded.Dynamic[T], steps []step) error {
	if err := encoder.Encode(recordOf("init", value)); err != nil {
		return fmt.Errorf("error writing record: %w", err)
	}

	for _, s := range steps {
		if err := applyStep(logger, &value, s); err != nil {
			return err
		}
		logger.Debug("Applied step", "step", s.raw, "value", value.String())

		if err := encoder.Encode(recordOf(s.raw, value)); err != nil {
			return fmt.Errorf("error writing record: %w", err)
		}
	}

	return nil
}

// integerConfig converts the configured floats the same way step operands are converted.
func integerConfig(config Config) (initial, lower, upper int64, err error) {
	fields := []struct {
		name  string
		value float64
		dst   *int64
	}{
		{"BOUND_INITIAL", config.Initial, &initial},
		{"BOUND_MIN", config.Min, &lower},
		{"BOUND_MAX", config.Max, &upper},
	}

	for _, field := range fields {
		n, err := toInt64(field.value)
		if err != nil {
			return 0, 0, 0, fmt.Errorf("%w: %s is not a number", err, field.name)
		}
		*field.dst = n
	}

	return initial, lower, upper, nil
}
