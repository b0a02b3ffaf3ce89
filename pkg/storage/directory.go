package storage

import (
	"context"

	"domainwatch/pkg/domain"
)

// DirectoryStorage persists the lookup-routing directory: the TLD catalogue
// and the TLD-to-endpoint mappings rebuilt from external authoritative lists.
// Refresh is always a full replace of one source's portion; entries are never
// merged in place.
type DirectoryStorage interface {
	// ReplaceTLDs atomically swaps all TLD rows owned by the given source for
	// the provided set.
	ReplaceTLDs(ctx context.Context, source string, tlds []domain.TLD) error
	// ReplaceRdapServers atomically swaps all endpoint rows owned by the
	// given source for the provided set.
	ReplaceRdapServers(ctx context.Context, source string, servers []domain.RdapServer) error
	// RdapServers returns every endpoint row, ordered by TLD then rank.
	RdapServers(ctx context.Context) ([]domain.RdapServer, error)
}
