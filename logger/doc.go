// Package logger provides structured logging on top of zerolog.
//
// Providers and the audit runner take a *Logger and tag it with a component:
//
//	log := logger.NewDefault("fcvaudit").WithComponent("memory")
//	log.Debug("allocate", logger.Fields(logger.FieldSlots, 8))
//
// A nil *Logger is never required: use Nop for a logger that discards output.
package logger
