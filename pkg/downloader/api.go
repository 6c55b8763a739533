// Package downloader integrates with the external download manager that
// performs the actual byte transfer. The pipeline only submits direct URLs
// and polls for terminal states.
package downloader

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/aldesouky/seedarr/pkg/httpx"
)

//go:generate mockgen -source=api.go -destination=mocks/mock.go -package=mocks

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// State is the coarse lifecycle of a submitted download as the manager
// reports it.
type State string

const (
	StateQueued      State = "queued"
	StateDownloading State = "downloading"
	StateFinished    State = "finished"
	StateFailed      State = "failed"
)

// AddRequest submits one resolved URL for transfer.
type AddRequest struct {
	// URL is the direct-download URL to fetch.
	URL string
	// Destination is the directory the manager should write into.
	Destination string
	// PackageName labels the transfer so it can be found again.
	PackageName string
	// Headers hints request headers the gated host requires, e.g. Referer.
	Headers map[string]string
}

type GetRequest struct {
	ID string
}

type Status struct {
	ID          string
	Name        string
	State       State
	Progress    float64 // percentage
	Speed       int64   // bytes/s
	BytesLoaded int64
	BytesTotal  int64
	ETA         time.Duration
	// FilePaths lists the on-disk files of finished transfers.
	FilePaths []string
}

type Client interface {
	Add(ctx context.Context, request AddRequest) (Status, error)
	Get(ctx context.Context, request GetRequest) (Status, error)
	List(ctx context.Context) ([]Status, error)
}

type Config struct {
	Implementation string
	Scheme         string
	Host           string
	Port           int
}

type Factory interface {
	NewClient(config Config) (Client, error)
}

type ClientFactory struct{}

func NewClientFactory() Factory {
	return ClientFactory{}
}

// NewClient returns a download manager client for the given configuration.
func (ClientFactory) NewClient(config Config) (Client, error) {
	switch config.Implementation {
	case "jdownloader":
		host := config.Host
		if config.Port != 0 {
			host = net.JoinHostPort(config.Host, strconv.Itoa(config.Port))
		}
		return NewJDownloaderClient(httpx.NewRateLimitedHTTPClient(), config.Scheme, host), nil
	default:
		return nil, fmt.Errorf("unknown download client implementation: %v", config.Implementation)
	}
}
