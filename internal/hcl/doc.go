// Package hcl provides the concrete HCL implementation of the config.Loader
// interface. It parses the file with hclparse, decodes its fixed schema with
// gohcl and converts the attribute values through cty.
package hcl
