// Package ogmi defines the contracts shared by the ogmi packages: the logger,
// fetcher and retry interfaces, configuration value types, sentinel errors and
// the process exit codes derived from them.
//
// The package has no dependencies on the rest of the module so that the core
// Open Graph engine (pkg/opengraph) and the infrastructure packages under
// internal/ can both depend on it.
package ogmi
