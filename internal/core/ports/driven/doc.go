// Package driven defines the outbound port interfaces: contracts the core
// services need the outside world to fulfil (file listings, site data
// persistence, inventory caching). Adapters and connectors implement them.
package driven
