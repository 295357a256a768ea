// Package roster holds module-level metadata shared by the CLI and library
// consumers.
package roster

// Version is the module version reported by the CLI.
const Version = "v0.1.0"
