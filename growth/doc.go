// Package growth
// Author: momentics <momentics@gmail.com>
//
// Growth policy implementations for buffer capacity amortization.
// All policies are pure and stateless beyond their own configuration.
// See api.GrowthPolicy for the contract.
package growth
