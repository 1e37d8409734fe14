// Package commands defines the cepclima CLI.
//
// Commands
//
//   - lookup   Resolve one postal code into an address and its current weather
//   - shell    Read postal codes from stdin, one per line, until EOF or "sair"
//
// lookup and shell load configuration and build the lookup workflow when they
// run, so help needs no API key. Workflow logs are discarded while a
// subcommand runs unless --verbose is set.
package commands
