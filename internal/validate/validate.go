package validate

// This package wraps go-playground/validator behind a process-wide singleton
// so the CLI and the config loader share one validator instance.
//
// e.g. internal/config/config.go
//   type File struct {
//       DefaultInterval int `yaml:"default_interval" validate:"omitempty,gte=1,lte=59"`
//   }

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

//nolint:gochecknoglobals // Shared validator singleton.
var (
	validatorOnce sync.Once
	validatorInst *validator.Validate
)

func get() *validator.Validate {
	validatorOnce.Do(func() {
		validatorInst = validator.New(validator.WithRequiredStructEnabled())
	})
	return validatorInst
}

// Struct validates a struct using the shared validator instance.
func Struct(v any) error {
	return get().Struct(v)
}

// Var validates a single variable against the provided tag constraints.
func Var(field any, tag string) error {
	return get().Var(field, tag)
}
