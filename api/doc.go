// Package api
// Author: momentics <momentics@gmail.com>
//
// Contracts shared by all hioload-mem packages: raw storage allocation,
// capacity growth policies, and common error types.
//
// Implementations live in alloc/ and growth/; the container that composes
// them lives in buffer/.
package api
