// Package config loads and validates glance settings.
//
// Settings live in a TOML file under the user config directory
// (~/.config/glance/config.toml). A missing or unparseable file is never
// fatal: Load falls back to defaults and reports the problem to the caller
// for logging. The package also derives the per-user directories every
// subsystem agrees on (config, cache, runtime), so socket, lock, and history
// locations need no explicit configuration.
package config
