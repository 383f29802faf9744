package uri

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/assetchain/asset-registry/internal/adapter"
)

// DefaultGateways is used when no gateways are configured
var DefaultGateways = []string{
	"https://gateway.pinata.cloud/ipfs/",
	"https://ipfs.io/ipfs/",
}

// Resolver turns token URIs into fetchable HTTP URLs
//
//go:generate mockgen -source=resolver.go -destination=../mocks/uri_resolver.go -package=mocks
type Resolver interface {
	// Resolve returns a fetchable HTTP URL for a token URI, probing the
	// configured gateways when the URI points into IPFS
	Resolve(ctx context.Context, tokenURI string) (string, error)

	// Candidates returns every gateway URL a token URI could resolve to,
	// in gateway preference order
	Candidates(tokenURI string) []string
}

type resolver struct {
	gateways   []string
	httpClient adapter.HTTPClient
}

// NewResolver creates a resolver over a fixed gateway list
func NewResolver(gateways []string, httpClient adapter.HTTPClient) Resolver {
	if len(gateways) == 0 {
		gateways = DefaultGateways
	}

	normalized := make([]string, 0, len(gateways))
	for _, gateway := range gateways {
		gateway = strings.TrimRight(gateway, "/")
		if !strings.HasSuffix(gateway, "/ipfs") {
			gateway += "/ipfs"
		}
		normalized = append(normalized, gateway+"/")
	}

	return &resolver{
		gateways:   normalized,
		httpClient: httpClient,
	}
}

// ipfsPath extracts the content path of an IPFS style URI. It returns false
// when the URI does not point into IPFS.
func ipfsPath(tokenURI string) (string, bool) {
	tokenURI = strings.TrimSpace(tokenURI)

	switch {
	case strings.HasPrefix(tokenURI, "ipfs://"):
		return strings.TrimPrefix(strings.TrimPrefix(tokenURI, "ipfs://"), "ipfs/"), true
	case strings.Contains(tokenURI, "/ipfs/"):
		_, path, _ := strings.Cut(tokenURI, "/ipfs/")
		return path, true
	case strings.HasPrefix(tokenURI, "Qm"), strings.HasPrefix(tokenURI, "bafy"):
		// bare CID
		return tokenURI, true
	default:
		return "", false
	}
}

// Candidates returns every gateway URL a token URI could resolve to
func (r *resolver) Candidates(tokenURI string) []string {
	path, ok := ipfsPath(tokenURI)
	if !ok {
		return []string{strings.TrimSpace(tokenURI)}
	}

	candidates := make([]string, 0, len(r.gateways))
	for _, gateway := range r.gateways {
		candidates = append(candidates, gateway+path)
	}
	return candidates
}

// Resolve returns a fetchable HTTP URL for a token URI. IPFS URIs are probed
// against every gateway in parallel and the first reachable one wins; when no
// gateway responds, the first candidate is returned so the caller can still
// surface a link.
func (r *resolver) Resolve(ctx context.Context, tokenURI string) (string, error) {
	tokenURI = strings.TrimSpace(tokenURI)
	if tokenURI == "" {
		return "", fmt.Errorf("empty token URI")
	}

	candidates := r.Candidates(tokenURI)
	if len(candidates) == 1 && candidates[0] == tokenURI {
		return tokenURI, nil
	}

	type probe struct {
		index int
		url   string
	}

	reachable := make(chan probe, len(candidates))
	var wg sync.WaitGroup
	for i, candidate := range candidates {
		wg.Add(1)
		go func(i int, candidate string) {
			defer wg.Done()
			resp, err := r.httpClient.Head(ctx, candidate)
			if err != nil {
				return
			}
			defer resp.Body.Close()
			if resp.StatusCode < 400 {
				reachable <- probe{index: i, url: candidate}
			}
		}(i, candidate)
	}
	wg.Wait()
	close(reachable)

	best := probe{index: len(candidates)}
	for p := range reachable {
		if p.index < best.index {
			best = p
		}
	}

	if best.index < len(candidates) {
		return best.url, nil
	}

	return candidates[0], nil
}
