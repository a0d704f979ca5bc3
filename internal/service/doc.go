// Package service contains the application services that orchestrate the
// domain logic: batch validation, dependency-cycle detection, and
// strategy-based ranking. Services are stateless between invocations and
// safe for concurrent use.
package service
