// Package nodes brings up the storage-node containers and forms them
// into a cluster.
//
// Three phases live here, in their mandatory order: Launch starts the
// storage profile, Readiness waits for the first node's bootstrap
// endpoint, and Cluster issues the create/join/configure admin commands.
package nodes
