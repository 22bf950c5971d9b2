// Package driving defines the interfaces the core exposes to callers.
//
// Driving ports are implemented by core services and consumed by the CLI
// and the scheduler.
package driving
