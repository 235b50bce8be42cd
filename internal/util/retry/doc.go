// Package retry provides bounded retry logic for operations against
// external services that may fail transiently.
//
// The [Do] function retries an operation with a configurable attempt
// budget and delay strategy. A multiplier of 1 gives the fixed-delay
// probing the management API expects; larger multipliers give
// exponential backoff. Errors wrapped with [Fatal] stop the loop early.
package retry
