package main

import (
	"bytes"
	"math"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/navyx/nexus/bounded/internal/testhelper"
)

func newTestApp(t *testing.T) (*App, *bytes.Buffer) {
	t.Helper()

	out := &bytes.Buffer{}
	return &App{logger: testhelper.Logger(t), out: out}, out
}

func TestExecuteLazyBounds(t *testing.T) {
	app, out := newTestApp(t)

	config := Config{Min: 0, Max: 1, Initial: 0.5, MaxSteps: 10}
	require.NoError(t, app.execute(config, []string{"min=0.6", " +0 "}))

	records := testhelper.JsonLinesToMaps(t, out.String())
	require.Len(t, records, 3)

	assert.Equal(t, "init", records[0]["step"])
	assert.Equal(t, 0.5, records[0]["value"])
	assert.Equal(t, 0.5, records[0]["normalized"])

	assert.Equal(t, "min=0.6", records[1]["step"])
	assert.Equal(t, 0.5, records[1]["value"])
	assert.Equal(t, 0.6, records[1]["min"])
	assert.InDelta(t, -0.25, records[1]["normalized"], 1e-12)

	assert.Equal(t, "+0", records[2]["step"])
	assert.Equal(t, 0.6, records[2]["value"])
	assert.Equal(t, 0.0, records[2]["normalized"])
}

func TestExecuteIntegerWrap(t *testing.T) {
	app, out := newTestApp(t)

	config := Config{Min: 0, Max: 11, Initial: 5, Wrap: true, Integer: true, MaxSteps: 10}
	require.NoError(t, app.execute(config, []string{"=15", "--", "-4", "max=7", "=15"}))

	records := testhelper.JsonLinesToMaps(t, out.String())
	values := make([]float64, 0, len(records))
	for _, r := range records {
		values = append(values, r["value"].(float64))
	}
	assert.Equal(t, []float64{5, 3, 2, 10, 10, 7}, values)
	assert.Equal(t, 7.0, records[5]["max"])
}

func TestExecuteDegenerateRange(t *testing.T) {
	app, out := newTestApp(t)

	config := Config{Min: 5, Max: 2, Initial: 3, Integer: true, MaxSteps: 10}
	require.NoError(t, app.execute(config, []string{"=100"}))

	records := testhelper.JsonLinesToMaps(t, out.String())
	require.Len(t, records, 2)
	for _, r := range records {
		assert.Equal(t, 5.0, r["value"])
		assert.Equal(t, 5.0, r["min"])
		assert.Equal(t, 5.0, r["max"])
		assert.NotContains(t, r, "normalized")
	}
}

func TestExecuteIntegerOutOfRangeOperands(t *testing.T) {
	app, out := newTestApp(t)

	config := Config{Min: 0, Max: 100, Initial: 50, Integer: true, MaxSteps: 10}
	require.NoError(t, app.execute(config, []string{"=1e30", "=-1e30", "=1e30"}))

	records := testhelper.JsonLinesToMaps(t, out.String())
	values := make([]float64, 0, len(records))
	for _, r := range records {
		values = append(values, r["value"].(float64))
	}
	assert.Equal(t, []float64{50, 100, 0, 100}, values)
}

func TestExecuteIntegerConfigSaturates(t *testing.T) {
	app, out := newTestApp(t)

	config := Config{Min: -1e30, Max: 1e30, Initial: 1e30, Integer: true, MaxSteps: 10}
	require.NoError(t, app.execute(config, nil))

	records := testhelper.JsonLinesToMaps(t, out.String())
	require.Len(t, records, 1)
	assert.Equal(t, float64(math.MaxInt64), records[0]["value"])
	assert.Equal(t, float64(math.MinInt64), records[0]["min"])
	assert.Equal(t, float64(math.MaxInt64), records[0]["max"])
}

func TestExecuteErrors(t *testing.T) {
	t.Run("Integer step NaN", func(t *testing.T) {
		app, out := newTestApp(t)
		err := app.execute(Config{Max: 100, Initial: 50, Integer: true, MaxSteps: 10}, []string{"=NaN"})
		assert.ErrorIs(t, err, ErrBadOperand)
		assert.Len(t, testhelper.JsonLinesToMaps(t, out.String()), 1)
	})

	t.Run("Integer config NaN", func(t *testing.T) {
		app, out := newTestApp(t)
		err := app.execute(Config{Min: math.NaN(), Max: 100, Integer: true, MaxSteps: 10}, nil)
		assert.ErrorIs(t, err, ErrBadOperand)
		assert.ErrorContains(t, err, "BOUND_MIN")
		assert.Empty(t, out.String())
	})

	t.Run("Unknown step writes nothing", func(t *testing.T) {
		app, out := newTestApp(t)
		err := app.execute(Config{Max: 1, MaxSteps: 10}, []string{"+1", "sqrt"})
		assert.ErrorIs(t, err, ErrUnknownOp)
		assert.Empty(t, out.String())
	})

	t.Run("Bad operand", func(t *testing.T) {
		app, _ := newTestApp(t)
		err := app.execute(Config{Max: 1, MaxSteps: 10}, []string{"*two"})
		assert.ErrorIs(t, err, ErrBadOperand)
	})

	t.Run("Too many steps", func(t *testing.T) {
		app, _ := newTestApp(t)
		err := app.execute(Config{Max: 1, MaxSteps: 1}, []string{"++", "++"})
		assert.ErrorIs(t, err, ErrTooManySteps)
	})

	t.Run("Integer division by zero stops the run", func(t *testing.T) {
		app, out := newTestApp(t)
		err := app.execute(Config{Max: 10, Initial: 4, Integer: true, MaxSteps: 10}, []string{"++", "/0", "++"})
		assert.ErrorIs(t, err, ErrBadOperand)
		assert.Len(t, testhelper.JsonLinesToMaps(t, out.String()), 2)
	})
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func TestReadConfig(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("BOUND_MIN", "-1.5")
		t.Setenv("BOUND_MAX", "2.5")
		unsetEnv(t, "BOUND_INITIAL")
		unsetEnv(t, "BOUND_WRAP")
		unsetEnv(t, "BOUND_INTEGER")
		unsetEnv(t, "BOUND_MAX_STEPS")

		config, err := readConfig()
		require.NoError(t, err)
		assert.Equal(t, Config{Min: -1.5, Max: 2.5, MaxSteps: 1000}, config)
	})

	t.Run("All fields", func(t *testing.T) {
		t.Setenv("BOUND_MIN", "0")
		t.Setenv("BOUND_MAX", "11")
		t.Setenv("BOUND_INITIAL", "5")
		t.Setenv("BOUND_WRAP", "true")
		t.Setenv("BOUND_INTEGER", "true")
		t.Setenv("BOUND_MAX_STEPS", "20")

		config, err := readConfig()
		require.NoError(t, err)
		assert.Equal(t, Config{Min: 0, Max: 11, Initial: 5, Wrap: true, Integer: true, MaxSteps: 20}, config)
	})

	t.Run("Missing bound", func(t *testing.T) {
		unsetEnv(t, "BOUND_MIN")
		t.Setenv("BOUND_MAX", "1")

		_, err := readConfig()
		assert.Error(t, err)
	})

	t.Run("Step limit out of range", func(t *testing.T) {
		t.Setenv("BOUND_MIN", "0")
		t.Setenv("BOUND_MAX", "1")
		t.Setenv("BOUND_MAX_STEPS", "0")

		_, err := readConfig()
		assert.ErrorContains(t, err, "validation failed")
	})
}
