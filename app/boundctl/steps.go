package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"

	"github.com/samber/lo"
	"gitlab.com/navyx/nexus/bounded/pkg/bounded"
	"gitlab.com/navyx/nexus/bounded/pkg/util"
)

var (
	ErrUnknownOp  = errors.New("unknown step")
	ErrBadOperand = errors.New("invalid operand")
)

type opKind int

const (
	opAssign opKind = iota
	opAdd
	opSub
	opMul
	opDiv
	opIncrement
	opDecrement
	opSetMin
	opSetMax
)

type step struct {
	raw     string
	kind    opKind
	operand float64
}

// parseStep accepts "=N", "+N", "-N", "*N", "/N", "++", "--", "min=N" and "max=N".
func parseStep(raw string) (step, error) {
	s := step{raw: raw}

	var operand string
	switch {
	case raw == "++":
		s.kind = opIncrement
		return s, nil
	case raw == "--":
		s.kind = opDecrement
		return s, nil
	case strings.HasPrefix(raw, "min="):
		s.kind, operand = opSetMin, raw[len("min="):]
	case strings.HasPrefix(raw, "max="):
		s.kind, operand = opSetMax, raw[len("max="):]
	case strings.HasPrefix(raw, "="):
		s.kind, operand = opAssign, raw[1:]
	case strings.HasPrefix(raw, "+"):
		s.kind, operand = opAdd, raw[1:]
	case strings.HasPrefix(raw, "-"):
		s.kind, operand = opSub, raw[1:]
	case strings.HasPrefix(raw, "*"):
		s.kind, operand = opMul, raw[1:]
	case strings.HasPrefix(raw, "/"):
		s.kind, operand = opDiv, raw[1:]
	default:
		return step{}, fmt.Errorf("%w: %q", ErrUnknownOp, raw)
	}

	value, err := strconv.ParseFloat(strings.TrimSpace(operand), 64)
	if err != nil {
		return step{}, fmt.Errorf("%w in step %q: %w", ErrBadOperand, raw, err)
	}
	s.operand = value

	return s, nil
}

// toInt64 truncates f toward zero and saturates at the int64 limits.
// NaN has no integer value and is rejected.
func toInt64(f float64) (int64, error) {
	switch {
	case math.IsNaN(f):
		return 0, ErrBadOperand
	case f >= math.MaxInt64:
		return math.MaxInt64, nil
	case f <= math.MinInt64:
		return math.MinInt64, nil
	default:
		return int64(f), nil
	}
}

// operandAs converts a parsed operand to T. Integer types go through toInt64,
// so values are expected to be held as int64.
func operandAs[T bounded.Number](f float64) (T, error) {
	if !util.IsIntegral[T]() {
		return T(f), nil
	}
	n, err := toInt64(f)
	return T(n), err
}

// applyStep runs one step against d. Integer values truncate the operand and
// saturate it at the int64 limits, so "=1e30" clamps like any large value.
// A bound update is rejected when the bound differs from the operand afterwards.
func applyStep[T bounded.Number](logger *slog.Logger, d *bounded.Dynamic[T], s step) error {
	operand, err := operandAs[T](s.operand)
	if err != nil {
		return fmt.Errorf("%w in step %q: not a number", err, s.raw)
	}

	switch s.kind {
	case opAssign:
		d.Assign(operand)
	case opAdd:
		d.Add(operand)
	case opSub:
		d.Sub(operand)
	case opMul:
		d.Mul(operand)
	case opDiv:
		if operand == 0 && util.IsIntegral[T]() {
			return fmt.Errorf("%w in step %q: integer division by zero", ErrBadOperand, s.raw)
		}
		d.Div(operand)
	case opIncrement:
		d.Increment()
	case opDecrement:
		d.Decrement()
	case opSetMin:
		d.SetMin(operand)
		if d.Min() != operand {
			logger.Warn("Lower bound update rejected", "step", s.raw, "requested", operand, "max", d.Max())
		}
		logStale(logger, *d)
	case opSetMax:
		d.SetMax(operand)
		if d.Max() != operand {
			logger.Warn("Upper bound update rejected", "step", s.raw, "requested", operand, "min", d.Min())
		}
		logStale(logger, *d)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, s.raw)
	}

	return nil
}

func logStale[T bounded.Number](logger *slog.Logger, d bounded.Dynamic[T]) {
	if d.Value() < d.Min() || d.Value() > d.Max() {
		logger.Debug("Value outside bounds until the next write", "value", d.Value(), "min", d.Min(), "max", d.Max())
	}
}

type stepRecord struct {
	Step       string   `json:"step"`
	Value      float64  `json:"value"`
	Min        float64  `json:"min"`
	Max        float64  `json:"max"`
	Normalized *float64 `json:"normalized,omitempty"`
}

// recordOf leaves Normalized unset for a zero-width range.
func recordOf[T bounded.Number](name string, d bounded.Dynamic[T]) stepRecord {
	record := stepRecord{
		Step:  name,
		Value: float64(d.Value()),
		Min:   float64(d.Min()),
		Max:   float64(d.Max()),
	}

	if n := d.Normalize(); !math.IsNaN(n) && !math.IsInf(n, 0) {
		record.Normalized = lo.ToPtr(n)
	}

	return record
}
