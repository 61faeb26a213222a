// Package health provides liveness and readiness handlers.
package health
