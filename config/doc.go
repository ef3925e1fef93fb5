// Package config loads configuration for fcvec binaries.
//
// It uses Viper to read a YAML (or JSON/TOML) file and layers environment
// variables on top, optionally after loading a .env file with godotenv.
//
// # Usage
//
//	var cfg MyConfig
//	err := config.LoadConfig("fcvaudit", &cfg, config.WithEnvPrefix("FCVAUDIT"))
//
// With a prefix, FCVAUDIT_VECTOR_CAPACITY overrides vector.capacity. Loaded
// structs that implement ApplyDefaults or Validate have them called, in that
// order.
package config
