// Package rdaphttp provides an rdap.Client implementation speaking the RDAP
// protocol (RFC 9083 JSON responses) over HTTP.
package rdaphttp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"domainwatch/pkg/domain"
	"domainwatch/pkg/rdap"
	"domainwatch/pkg/serrors"
)

// statuses a registry publishes while a domain is being removed; a record
// carrying one of them counts as unresolvable for change detection.
var deletionStatuses = map[string]bool{ //nolint: gochecknoglobals
	"pending delete":    true,
	"redemption period": true,
}

// Client performs RDAP domain queries against arbitrary endpoints resolved
// from the lookup directory. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs the RDAP HTTP requests
}

// rdapDomain mirrors the subset of an RFC 9083 domain object this system
// monitors.
type rdapDomain struct {
	ObjectClassName string `json:"objectClassName"`
	LdhName         string `json:"ldhName"`
	Status          []string `json:"status"`
	Events          []struct {
		EventAction string    `json:"eventAction"`
		EventDate   time.Time `json:"eventDate"`
	} `json:"events"`
	Entities []struct {
		Handle     string            `json:"handle"`
		Roles      []string          `json:"roles"`
		VCardArray []json.RawMessage `json:"vcardArray"`
	} `json:"entities"`
	Nameservers []struct {
		LdhName string `json:"ldhName"`
	} `json:"nameservers"`
}

// vcardFullName extracts the "fn" property from a jCard array
// (["vcard", [["fn", {}, "text", "Name"], ...]]). Empty when absent.
func vcardFullName(vcard []json.RawMessage) string {
	if len(vcard) < 2 {
		return ""
	}

	var props [][]json.RawMessage
	if err := json.Unmarshal(vcard[1], &props); err != nil {
		return ""
	}

	for _, p := range props {
		if len(p) < 4 {
			continue
		}
		var name string
		if err := json.Unmarshal(p[0], &name); err != nil || name != "fn" {
			continue
		}
		var value string
		if err := json.Unmarshal(p[3], &value); err == nil {
			return value
		}
	}

	return ""
}

// toSnapshot converts a decoded RDAP domain object into the canonical
// snapshot shape. Sets are sorted so snapshots compare deterministically.
func toSnapshot(rd *rdapDomain) *domain.Snapshot {
	snap := &domain.Snapshot{}

	for _, s := range rd.Status {
		status := strings.ToLower(strings.TrimSpace(s))
		snap.Statuses = append(snap.Statuses, status)
		if deletionStatuses[status] {
			snap.Deleted = true
		}
	}
	sort.Strings(snap.Statuses)

	for _, ns := range rd.Nameservers {
		if ns.LdhName != "" {
			snap.Nameservers = append(snap.Nameservers, strings.ToLower(ns.LdhName))
		}
	}
	sort.Strings(snap.Nameservers)

	for _, e := range rd.Entities {
		entity := domain.Entity{
			Handle: e.Handle,
			Name:   vcardFullName(e.VCardArray),
			Roles:  e.Roles,
		}
		snap.Entities = append(snap.Entities, entity)

		for _, role := range e.Roles {
			if role == "registrar" && snap.Registrar == "" {
				snap.Registrar = entity.Name
				if snap.Registrar == "" {
					snap.Registrar = entity.Handle
				}
			}
		}
	}
	sort.Slice(snap.Entities, func(i, j int) bool {
		return snap.Entities[i].Handle < snap.Entities[j].Handle
	})

	for _, ev := range rd.Events {
		if ev.EventAction == "expiration" {
			snap.ExpiresAt = ev.EventDate
		}
	}

	return snap
}

// Lookup implements rdap.Client. It issues a GET against
// <endpoint>domain/<fqdn>, follows protocol-level redirects (delegated to the
// HTTP client), and classifies failures per the rdap package taxonomy.
func (c *Client) Lookup(ctx context.Context, endpoint string, fqdn string) (*domain.Snapshot, error) {
	// https://datatracker.ietf.org/doc/html/rfc9082#section-3.1.3
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"domain/"+fqdn, nil)
	if err != nil {
		return nil, serrors.Wrap(rdap.ErrTransport, err, "could not create request")
	}
	req.Header.Set("Accept", "application/rdap+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, serrors.Wrap(rdap.ErrTransport, err, "could not query %s for %s", endpoint, fqdn)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, serrors.Wrap(rdap.ErrProtocol,
			&rdap.StatusError{StatusCode: resp.StatusCode},
			"lookup of %s failed", fqdn)
	}

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, serrors.Wrap(rdap.ErrTransport, err, "could not read response body")
	}

	var rd rdapDomain
	if err := json.Unmarshal(b, &rd); err != nil {
		return nil, serrors.Wrap(rdap.ErrParse, err, "could not decode response for %s", fqdn)
	}
	if rd.ObjectClassName != "domain" || rd.LdhName == "" {
		return nil, serrors.With(rdap.ErrParse, "response for %s is not a domain object", fqdn)
	}

	return toSnapshot(&rd), nil
}

// Ensure Client conforms to the rdap.Client interface at compile time.
var _ rdap.Client = (*Client)(nil)

// New constructs a Client that queries RDAP endpoints with the provided
// http.Client. The caller owns timeout policy, either on the http.Client or
// through request contexts.
func New(httpClient *http.Client) *Client {
	return &Client{httpClient: httpClient}
}
