// Package driven defines the interfaces the core needs from the outside
// world. Adapters (the sqlite history store) implement these; the core
// and the CLI depend only on the interfaces.
package driven
