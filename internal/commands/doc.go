// Package commands implements the compile, sync and show operations over
// the ordered layers of an input directory.
package commands
