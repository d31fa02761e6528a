// Package app provides the application composition layer for the receipt
// points service.
//
// # Package Structure
//
//	internal/app/
//	├── application.go      # Application struct, wiring, and lifecycle
//	├── domain/receipt/     # Receipt model with the pure Validate and Points rules
//	├── storage/            # Store interfaces and the in-memory implementation
//	├── services/receipts/  # Receipt intake and point lookup orchestration
//	├── httpapi/            # HTTP handlers and routing
//	├── metrics/            # Prometheus collectors and HTTP instrumentation
//	├── system/             # Lifecycle management
//	└── runtime/            # Process wiring (config, logger, HTTP server)
//
// The domain package holds pure data and rules with no dependencies; services
// orchestrate domain functions against a store; httpapi adapts HTTP to the
// services. Dependencies point inward only.
package app
