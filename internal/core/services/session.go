package services

import (
	"sync"

	"github.com/riosdeldesierto/consulta-clientes/internal/core/domain"
	"github.com/riosdeldesierto/consulta-clientes/internal/core/ports/driving"
)

// Ensure Session implements the interface.
var _ driving.Session = (*Session)(nil)

// Session holds the current customer and alert.
// Each alert change bumps the generation so that a pending expiry for an
// older alert becomes a no-op.
type Session struct {
	mu         sync.RWMutex
	customer   *domain.Customer
	alert      domain.Alert
	generation uint64
}

// NewSession creates an empty session.
func NewSession() *Session {
	return &Session{}
}

// Customer returns the current customer, or nil.
func (s *Session) Customer() *domain.Customer {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.customer
}

// Alert returns the current alert.
func (s *Session) Alert() domain.Alert {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.alert
}

// Generation returns the current alert generation.
func (s *Session) Generation() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.generation
}

// CustomerFound replaces the customer and raises the success alert.
func (s *Session) CustomerFound(customer *domain.Customer) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customer = customer
	return s.setAlert(domain.MsgCustomerFound, domain.SeveritySuccess)
}

// Fail raises an error alert. The current customer is kept.
func (s *Session) Fail(message string) uint64 {
	return s.Notify(message, domain.SeverityError)
}

// Notify replaces the alert and returns its generation.
func (s *Session) Notify(message string, severity domain.Severity) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setAlert(message, severity)
}

// Dismiss clears the alert.
func (s *Session) Dismiss() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.setAlert("", s.alert.Severity)
}

// Expire clears the alert only if generation is still current.
func (s *Session) Expire(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if generation != s.generation || !s.alert.Visible() {
		return false
	}
	s.setAlert("", s.alert.Severity)
	return true
}

// setAlert replaces the alert (caller must hold lock).
func (s *Session) setAlert(message string, severity domain.Severity) uint64 {
	s.generation++
	s.alert = domain.Alert{Message: message, Severity: severity}
	return s.generation
}
