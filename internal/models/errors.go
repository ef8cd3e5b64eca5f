package models

import "errors"

// Custom errors
var (
	ErrNoHorses            = errors.New("no horses provided")
	ErrHorseNameRequired   = errors.New("horse name is required")
	ErrDuplicateHorse      = errors.New("duplicate horse name")
	ErrNoUsableOdds        = errors.New("no horse has usable odds")
	ErrInvalidEngineConfig = errors.New("invalid engine configuration")
	ErrInvalidRequest      = errors.New("invalid prediction request")
)
