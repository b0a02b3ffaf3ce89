// Package refresher rebuilds the TLD directory from the external authoritative
// lists: the IANA TLD enumeration, the ICANN gTLD registry and the IANA RDAP
// bootstrap file.
package refresher

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"domainwatch/pkg/domain"
	"domainwatch/pkg/logger"
	"domainwatch/pkg/serrors"

	"go.uber.org/zap"
)

// ErrRefresh marks a directory refresh run in which at least one source step
// failed. The wrapped cause is the first failure in source declaration order;
// later failures are logged but not surfaced.
var ErrRefresh = serrors.NewKind("DIRECTORY_REFRESH")

// Source provenance markers stored with every directory row, so each source's
// rows can be replaced independently.
const (
	SourceIANATLDs  = "iana-tld-list"
	SourceICANN     = "icann-gtlds"
	SourceBootstrap = "rdap-bootstrap"
)

// Catalog is the directory surface the refresher writes to.
type Catalog interface {
	ReplaceTLDs(ctx context.Context, source string, tlds []domain.TLD) error
	ReplaceRdapServers(ctx context.Context, source string, servers []domain.RdapServer) error
}

// Options configure the external source endpoints and the per-download bound.
type Options struct {
	// TLDListURL is the IANA TLD enumeration (plain text, one TLD per line).
	TLDListURL string
	// GTLDListURL is the ICANN gTLD registry (JSON).
	GTLDListURL string
	// BootstrapURL is the IANA RDAP bootstrap file (JSON).
	BootstrapURL string
	// Timeout bounds each individual source download.
	Timeout time.Duration
}

// Refresher runs the three-step directory rebuild.
type Refresher struct {
	httpClient *http.Client
	catalog    Catalog
	options    Options
}

// New creates a Refresher. httpClient may carry its own transport-level
// limits; per-request deadlines come from Options.Timeout.
func New(httpClient *http.Client, catalog Catalog, options Options) *Refresher {
	return &Refresher{httpClient: httpClient, catalog: catalog, options: options}
}

// Refresh executes the three source steps in declaration order. Every step is
// attempted even when an earlier one failed, and every successful step commits
// its portion of the directory. When at least one step failed, the returned
// error carries the first failure; the rest are logged here.
func (r *Refresher) Refresh(ctx context.Context) error {
	steps := []struct {
		name string
		run  func(context.Context) error
	}{
		{name: SourceIANATLDs, run: r.refreshTLDList},
		{name: SourceICANN, run: r.refreshGTLDList},
		{name: SourceBootstrap, run: r.refreshBootstrap},
	}

	var failures []error
	for _, step := range steps {
		if err := step.run(ctx); err != nil {
			logger.Error(ctx, "directory refresh step failed",
				zap.String("source", step.name),
				zap.Error(err))
			failures = append(failures, err)

			continue
		}

		logger.Info(ctx, "directory refresh step completed", zap.String("source", step.name))
	}

	if len(failures) > 0 {
		return serrors.Wrap(ErrRefresh, failures[0],
			"%d of %d refresh steps failed", len(failures), len(steps))
	}

	return nil
}

// refreshTLDList rebuilds the plain TLD catalogue from the IANA enumeration.
func (r *Refresher) refreshTLDList(ctx context.Context) error {
	body, err := r.fetch(ctx, r.options.TLDListURL)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	var tlds []domain.TLD
	scanner := bufio.NewScanner(body)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tlds = append(tlds, domain.TLD{Name: strings.ToLower(line)})
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("could not read TLD list: %w", err)
	}
	if len(tlds) == 0 {
		return fmt.Errorf("TLD list at %s is empty", r.options.TLDListURL)
	}

	return r.catalog.ReplaceTLDs(ctx, SourceIANATLDs, tlds)
}

// refreshGTLDList rebuilds the gTLD catalogue from the ICANN registry,
// keeping only TLDs that are delegated and not yet removed.
func (r *Refresher) refreshGTLDList(ctx context.Context) error {
	body, err := r.fetch(ctx, r.options.GTLDListURL)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	var payload struct {
		GTLDs []struct {
			GTLD           string  `json:"gTLD"`
			DelegationDate *string `json:"delegationDate"`
			RemovalDate    *string `json:"removalDate"`
		} `json:"gTLDs"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return fmt.Errorf("could not decode gTLD registry: %w", err)
	}

	var tlds []domain.TLD
	for _, entry := range payload.GTLDs {
		if entry.GTLD == "" || entry.DelegationDate == nil || entry.RemovalDate != nil {
			continue
		}
		tlds = append(tlds, domain.TLD{Name: strings.ToLower(entry.GTLD), Type: "generic"})
	}
	if len(tlds) == 0 {
		return fmt.Errorf("gTLD registry at %s has no delegated entries", r.options.GTLDListURL)
	}

	return r.catalog.ReplaceTLDs(ctx, SourceICANN, tlds)
}

// refreshBootstrap rebuilds the TLD to endpoint routing table from the IANA
// RDAP bootstrap file. Endpoint order within a service entry becomes the rank.
func (r *Refresher) refreshBootstrap(ctx context.Context) error {
	body, err := r.fetch(ctx, r.options.BootstrapURL)
	if err != nil {
		return err
	}
	defer func() { _ = body.Close() }()

	var payload struct {
		Services [][][]string `json:"services"`
	}
	if err := json.NewDecoder(body).Decode(&payload); err != nil {
		return fmt.Errorf("could not decode bootstrap file: %w", err)
	}

	now := time.Now().UTC()
	var servers []domain.RdapServer
	for _, service := range payload.Services {
		if len(service) < 2 {
			continue
		}
		tlds, urls := service[0], service[1]
		for _, tld := range tlds {
			for i, url := range urls {
				if !strings.HasSuffix(url, "/") {
					url += "/"
				}
				servers = append(servers, domain.RdapServer{
					TLD:       strings.ToLower(tld),
					URL:       url,
					Rank:      i + 1,
					Source:    SourceBootstrap,
					UpdatedAt: now,
				})
			}
		}
	}
	if len(servers) == 0 {
		return fmt.Errorf("bootstrap file at %s has no services", r.options.BootstrapURL)
	}

	return r.catalog.ReplaceRdapServers(ctx, SourceBootstrap, servers)
}

// fetch downloads a source with the configured deadline. The caller owns the
// returned body.
func (r *Refresher) fetch(ctx context.Context, url string) (io.ReadCloser, error) {
	ctx, cancel := context.WithTimeout(ctx, r.options.Timeout)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		cancel()

		return nil, fmt.Errorf("could not create request for %s: %w", url, err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		cancel()

		return nil, fmt.Errorf("could not fetch %s: %w", url, err)
	}
	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		cancel()

		return nil, fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, url)
	}

	return &cancelingBody{ReadCloser: resp.Body, cancel: cancel}, nil
}

// cancelingBody releases the request's timeout context when the body closes.
type cancelingBody struct {
	io.ReadCloser

	cancel context.CancelFunc
}

func (b *cancelingBody) Close() error {
	b.cancel()

	return b.ReadCloser.Close()
}
