package kpi

import (
	"math"

	"painting_crm/internal/domain/numeric"
)

// Direction tags the sign of a delta.
type Direction string

const (
	DirectionUp   Direction = "up"
	DirectionDown Direction = "down"
	DirectionFlat Direction = "flat"
)

// Delta is the percentage change between two period values.
type Delta struct {
	Percent   float64
	Direction Direction
}

// ComputeDelta returns the change from previous to current in percent, rounded
// to one decimal.
//
// A zero previous value cannot be divided by: growth from zero is reported as
// 100% regardless of magnitude, and zero to zero is flat. Negative previous
// values (a losing period) use their magnitude as the base so the direction
// follows the actual movement.
func ComputeDelta(current, previous float64) Delta {
	if previous == 0 {
		switch {
		case current > 0:
			return Delta{Percent: 100, Direction: DirectionUp}
		case current < 0:
			return Delta{Percent: -100, Direction: DirectionDown}
		default:
			return Delta{Percent: 0, Direction: DirectionFlat}
		}
	}

	pct := numeric.Round1((current - previous) / math.Abs(previous) * 100)
	return Delta{Percent: pct, Direction: directionOf(pct)}
}

func directionOf(pct float64) Direction {
	switch {
	case pct > 0:
		return DirectionUp
	case pct < 0:
		return DirectionDown
	default:
		return DirectionFlat
	}
}
