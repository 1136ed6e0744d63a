// Package driving defines the inbound port interfaces: the operations the
// CLI invokes on the core services (site generation, drive audits,
// incremental ID patching).
package driving
