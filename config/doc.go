// Package config provides configuration loading and validation for staticd.
//
// The package handles YAML configuration files, environment variables, and CLI flags
// with automatic merging and validation using go-playground/validator.
//
// # Configuration Precedence
//
// Values are loaded in this order (later sources override earlier ones):
//
//  1. Default values
//  2. Configuration file(s) - multiple files merged left-to-right
//  3. Environment variables (STATICD_ prefix)
//  4. CLI flags
//
// # Usage
//
//	cfg, err := config.Load([]string{"config.yaml"}, cmd.Flags())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Store in context for subcommands
//	ctx = config.WithContext(ctx, cfg)
//
//	// Retrieve later
//	cfg, err = config.FromContext(ctx)
//
// # Environment Variables
//
// All config keys map to environment variables with STATICD_ prefix:
//   - server.port → STATICD_SERVER_PORT
//   - cache.seconds → STATICD_CACHE_SECONDS
//   - log.level → STATICD_LOG_LEVEL
//
// # Configuration Structure
//
// The Config struct contains:
//   - Server: HTTP port
//   - Locations: ordered serving roots (directory or zip bundle)
//   - Cache: freshness lifetime and legacy header flags
//   - CORS: cross-origin resource sharing settings
//   - Log: logging level
//
// # Validation
//
// Configuration is validated using struct tags:
//   - Port must be 1-65535
//   - Location type must be dir or zip, with a non-empty path
//   - Log level must be debug, info, warn, or error
package config
