package domain

import "time"

// Entity is a contact entity attached to a registration record, e.g. the
// registrar or an administrative contact.
type Entity struct {
	// Handle is the registry identifier of the entity.
	Handle string `json:"handle,omitempty"`
	// Name is a display name when the registry publishes one.
	Name string `json:"name,omitempty"`
	// Roles lists the entity's roles (registrar, administrative, technical, ...).
	Roles []string `json:"roles,omitempty"`
}

// Snapshot is the last-known registration state of a domain as returned by a
// registry lookup. It is the unit the change detector compares.
type Snapshot struct {
	// Registrar is the sponsoring registrar's name or handle.
	Registrar string `json:"registrar,omitempty"`
	// ExpiresAt is the registration expiration timestamp; zero when the
	// registry does not publish one.
	ExpiresAt time.Time `json:"expiresAt,omitempty"`
	// Statuses holds the EPP/RDAP status values, e.g. "client transfer prohibited".
	Statuses []string `json:"statuses,omitempty"`
	// Nameservers holds the delegated nameserver host names.
	Nameservers []string `json:"nameservers,omitempty"`
	// Entities holds the contact entities published with the record.
	Entities []Entity `json:"entities,omitempty"`
	// Deleted marks the domain as unresolvable: the registry no longer
	// returns a registration for it.
	Deleted bool `json:"deleted,omitempty"`
}

// Domain is a tracked domain name plus its last-known snapshot. A domain is
// shared by every watchlist that references its name; only the watch pipeline
// mutates it, and the previous snapshot is retained until change detection
// has compared it against the fresh one.
type Domain struct {
	// LdhName is the canonical lookup key: lowercase, fully-qualified,
	// LDH (letters-digits-hyphen) form.
	LdhName string `json:"ldhName"`
	// Snapshot is the last successfully resolved registration state.
	Snapshot Snapshot `json:"snapshot"`
	// RefreshedAt is when Snapshot was last replaced by a successful lookup.
	RefreshedAt time.Time `json:"refreshedAt"`

	// CreatedAt is when the domain was first tracked.
	CreatedAt time.Time `json:"createdAt"`
	// UpdatedAt is when any field last changed.
	UpdatedAt time.Time `json:"updatedAt"`
}

// TLD is an entry of the known top-level-domain catalogue maintained by the
// directory refresh job.
type TLD struct {
	// Name is the ASCII TLD without a leading dot, lowercase.
	Name string `json:"name"`
	// Type distinguishes gTLD/ccTLD/sponsored entries when the source
	// publishes it; empty otherwise.
	Type string `json:"type,omitempty"`
}

// RdapServer routes lookups for one TLD to a registry endpoint. A TLD may
// have several entries; Rank orders them, lowest first.
type RdapServer struct {
	// TLD is the ASCII top-level domain this endpoint serves.
	TLD string `json:"tld"`
	// URL is the RDAP base endpoint, ending with a slash.
	URL string `json:"url"`
	// Rank orders multiple endpoints for the same TLD.
	Rank int `json:"rank"`
	// Source records which external list this entry came from.
	Source string `json:"source"`
	// UpdatedAt is when the entry was last rebuilt from its source.
	UpdatedAt time.Time `json:"updatedAt"`
}
