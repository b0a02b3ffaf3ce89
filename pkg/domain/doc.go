// Package domain contains the core domain entities and types used by the
// application: users, watchlists, tracked domain names and the registration
// events detected for them. These types are plain values without live
// back-references; relationships are expressed through identifiers and
// resolved via the storage layer, keeping the package free of infrastructure
// concerns.
package domain
