// Package validation checks configuration and audit inputs.
//
// It supports struct tag validation (using the validator library) for loaded
// configuration and programmatic validation with error collection for values
// that arrive outside a struct, such as command-line flags.
//
// # Struct Tag Validation
//
//	type VectorConfig struct {
//	    Capacity int    `mapstructure:"capacity" validate:"gte=0,lte=1048576"`
//	    Element  string `mapstructure:"element" validate:"oneof=int string pair bytes"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Range("capacity", capacity, 0, 1<<20).OptionalUUID("run_id", runID)
//	err := v.Validate()
//
// Both return an INVALID_INPUT AppError whose "fields" detail lists every
// FieldError.
package validation
