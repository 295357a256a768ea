// Package types defines the Roster and Table interfaces, the Member entity,
// the enum field definitions the roster runs on, and the standard error
// values shared by all backends.
package types
