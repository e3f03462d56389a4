// Package services implements the core use-cases: booking creation,
// payment generation and reconciliation, and customer account management.
//
// Services depend only on the driven ports and implement the driving
// ports. They trust their inputs: validation of menu choices, selection
// counts and future-dated scheduling belongs to the driving adapters.
package services
