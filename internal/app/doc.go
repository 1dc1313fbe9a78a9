// Package app contains the application wiring. It builds the logger,
// resolves the effective configuration, selects the external tool and
// dispatches to the commands, decoupled from the CLI that fills its Options.
package app
