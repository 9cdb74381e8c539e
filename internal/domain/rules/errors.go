package rules

import "errors"

// Rules domain errors
var (
	ErrRulesNotFound = errors.New("attendance rules document not found")
	ErrUnknownField  = errors.New("unknown attendance rules field")
)
