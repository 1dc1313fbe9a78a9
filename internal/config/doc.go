// Package config defines the format-agnostic configuration model for ptl
// and resolves the effective settings from the environment, an optional
// `.ptl.env` file and the configuration file.
//
// The file format itself is not known here: the Loader interface is
// implemented by the hcl package.
package config
