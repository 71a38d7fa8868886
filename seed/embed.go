package seed

import _ "embed"

// DefaultExercises is the starter catalog written into an empty database.
//
//go:embed default_exercises.yaml
var DefaultExercises []byte
