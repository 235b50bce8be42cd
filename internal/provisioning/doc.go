// Package provisioning provides the shared types for the bootstrap
// pipeline.
//
// The bootstrap is organized into focused subpackages, one per concern:
//   - cert/ — proxy certificate bundle
//   - nodes/ — storage-node launch, readiness probing, cluster formation
//   - balancer/ — load-balancer launch and VIP wait
//   - database/ — database creation via the management API
//   - services/ — API and dispatcher container groups
//
// This root package contains the Phase interface, the shared Context and
// State, and the sequential pipeline runner. Phases run strictly in
// order and the pipeline stops at the first failure.
package provisioning
