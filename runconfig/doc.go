// Package runconfig loads the ambient configuration shared by hierclust's
// CLI entrypoints: algorithm selection, damping/lambda/beta coefficients,
// and the observability toggles telemetry consumes. It layers three
// sources, lowest to highest precedence: built-in defaults, an optional
// YAML file, then environment variables (loaded through a .env file via
// godotenv when present, so a checked-in .env works the same as an
// operator's shell exports).
package runconfig
