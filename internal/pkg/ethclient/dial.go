// Package ethclient connects to Ethereum JSON-RPC nodes and instruments the calls.
package ethclient

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/ethclient"
)

// APIKeyPlaceholder is replaced with the provider API key in endpoint templates.
const APIKeyPlaceholder = "{api_key}"

var ErrMissingAPIKey = errors.New("endpoint requires an api key")

// ExpandEndpoint substitutes the API key into an endpoint template.
func ExpandEndpoint(template, apiKey string) (string, error) {
	if !strings.Contains(template, APIKeyPlaceholder) {
		return template, nil
	}
	if apiKey == "" {
		return "", ErrMissingAPIKey
	}
	return strings.ReplaceAll(template, APIKeyPlaceholder, apiKey), nil
}

// Dial connects to url and wraps the client with metrics.
func Dial(ctx context.Context, url string, rpcMetrics RPCMetrics) (*ObservedClient, func(), error) {
	client, err := ethclient.DialContext(ctx, url)
	if err != nil {
		return nil, nil, fmt.Errorf("dial %s: %w", redact(url), err)
	}
	return NewObservedClient(client, rpcMetrics), client.Close, nil
}

// redact drops the path and query, where providers put keys.
func redact(url string) string {
	scheme, rest, ok := strings.Cut(url, "://")
	if !ok {
		return "<endpoint>"
	}
	host, _, _ := strings.Cut(rest, "/")
	host, _, _ = strings.Cut(host, "?")
	return scheme + "://" + host
}
