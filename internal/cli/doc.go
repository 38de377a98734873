// Package cli implements the invite command-line interface.
//
// Every command is built by a constructor taking the shared rootOptions, so
// tests can run an isolated tree with NewRootCmd:
//
//	invite              - open the full-screen invitation (same as show)
//	invite rsvp         - confirm presence from the command line
//	invite theme        - print the colour tokens for a temperature
//	invite links        - print the map and calendar links
//	invite init         - write a default .invite.yaml
//	invite config set   - change one value in the config file
//
// # Flag Handling
//
// Global flags (--config, --no-color, --json, --debug) live on the root
// command. Config is loaded lazily by the commands that need it; theme,
// version and completion never read it.
//
// # Output
//
// With --json every command writes a JSONEnvelope to stdout, including
// failures. Otherwise structured errors are printed to stderr in the
// "✗ what / why / how to fix" format.
package cli
