// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Every failure a flow recovers from is returned as *domain.FlowError so
// that each driving adapter shows the same single message to the operator.
package services
