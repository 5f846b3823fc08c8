// Package domain defines the core business entities for consulta.
//
// This package is part of the hexagonal architecture's innermost layer.
// It defines the fundamental types the client works with:
//
//   - DocumentType: A kind of identification document (CC, NIT, passport)
//   - Customer: A customer record with its purchase history
//   - Purchase: A single invoice belonging to a customer
//   - Alert: The transient notification shown to the operator
//   - ExportFormat: The formats the server can export a customer in
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. All other packages depend on
// domain, never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library, shopspring/decimal (money values)
//   - Cannot Import: Any internal/ package, any other external dependency
package domain
