package padelelo

import "fmt"

// ConfigurationError is returned when a coefficient of Config is unusable.
type ConfigurationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration %s=%v: %s", e.Field, e.Value, e.Reason)
}

// InvalidInputError is returned for malformed pairs, scores or lane movements.
type InvalidInputError struct {
	Field  string
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input %s: %s", e.Field, e.Reason)
}

// InvalidOutcomeError is returned when a match score has no winner.
type InvalidOutcomeError struct {
	Score MatchScore
}

func (e *InvalidOutcomeError) Error() string {
	return fmt.Sprintf("match score %d-%d has no winner", e.Score.A, e.Score.B)
}
