package downloader

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/aldesouky/seedarr/pkg/logger"
)

// JDownloaderClient talks to JDownloader's local deprecated API. Links go
// through the linkgrabber first; with autostart they move to the download
// list on their own.
type JDownloaderClient struct {
	http   HTTPClient
	scheme string
	host   string
}

func NewJDownloaderClient(http HTTPClient, scheme, host string) Client {
	return &JDownloaderClient{
		http,
		scheme,
		host,
	}
}

type addLinksRequest struct {
	Autostart                bool   `json:"autostart"`
	Links                    string `json:"links"`
	PackageName              string `json:"packageName"`
	DestinationFolder        string `json:"destinationFolder"`
	OverwritePackagizerRules bool   `json:"overwritePackagizerRules"`
	SourceURL                string `json:"sourceUrl,omitempty"`
}

type packageQuery struct {
	PackageUUIDs []int64 `json:"packageUUIDs,omitempty"`
	BytesLoaded  bool    `json:"bytesLoaded"`
	BytesTotal   bool    `json:"bytesTotal"`
	ChildCount   bool    `json:"childCount"`
	Enabled      bool    `json:"enabled"`
	Eta          bool    `json:"eta"`
	Finished     bool    `json:"finished"`
	SaveTo       bool    `json:"saveTo"`
	Speed        bool    `json:"speed"`
	Status       bool    `json:"status"`
}

type linkQuery struct {
	PackageUUIDs []int64 `json:"packageUUIDs,omitempty"`
	BytesTotal   bool    `json:"bytesTotal"`
	Finished     bool    `json:"finished"`
	Status       bool    `json:"status"`
	URL          bool    `json:"url"`
}

type packageResponse struct {
	Data []jdPackage `json:"data"`
}

type jdPackage struct {
	UUID        int64  `json:"uuid"`
	Name        string `json:"name"`
	BytesLoaded int64  `json:"bytesLoaded"`
	BytesTotal  int64  `json:"bytesTotal"`
	ChildCount  int    `json:"childCount"`
	Enabled     bool   `json:"enabled"`
	Eta         int64  `json:"eta"`
	Finished    bool   `json:"finished"`
	SaveTo      string `json:"saveTo"`
	Speed       int64  `json:"speed"`
	Status      string `json:"status"`
}

type linkResponse struct {
	Data []jdLink `json:"data"`
}

type jdLink struct {
	UUID        int64  `json:"uuid"`
	Name        string `json:"name"`
	URL         string `json:"url"`
	BytesTotal  int64  `json:"bytesTotal"`
	Finished    bool   `json:"finished"`
	Status      string `json:"status"`
	PackageUUID int64  `json:"packageUUID"`
}

func (c *JDownloaderClient) Add(ctx context.Context, request AddRequest) (Status, error) {
	var status Status
	log := logger.FromCtx(ctx)

	if request.URL == "" {
		return status, errors.New("no url to add")
	}

	body := addLinksRequest{
		Autostart:         true,
		Links:             request.URL,
		PackageName:       request.PackageName,
		DestinationFolder: request.Destination,
		SourceURL:         request.Headers["Referer"],
	}

	if _, err := c.do(ctx, "/linkgrabberv2/addLinks", body); err != nil {
		return status, err
	}

	log.Debugw("links added", "package", request.PackageName)

	// The add call returns no handle. Find the package by name; with
	// autostart it may already have left the linkgrabber.
	id, err := c.findPackage(ctx, "/linkgrabberv2/queryPackages", request.PackageName)
	if err != nil {
		id, err = c.findPackage(ctx, "/downloadsV2/queryPackages", request.PackageName)
		if err != nil {
			return status, fmt.Errorf("package %q not found after add: %w", request.PackageName, err)
		}
	}

	status = Status{
		ID:    id,
		Name:  request.PackageName,
		State: StateQueued,
	}
	return status, nil
}

func (c *JDownloaderClient) findPackage(ctx context.Context, endpoint, name string) (string, error) {
	b, err := c.do(ctx, endpoint, packageQuery{})
	if err != nil {
		return "", err
	}

	var response packageResponse
	if err := json.Unmarshal(b, &response); err != nil {
		return "", err
	}

	for _, p := range response.Data {
		if p.Name == name {
			return fmt.Sprintf("%d", p.UUID), nil
		}
	}

	return "", errors.New("no package found")
}

func (c *JDownloaderClient) Get(ctx context.Context, request GetRequest) (Status, error) {
	var status Status
	ss, err := c.List(ctx)
	if err != nil {
		return status, err
	}

	for _, s := range ss {
		if s.ID == request.ID {
			return s, nil
		}
	}

	return status, errors.New("no download found")
}

func (c *JDownloaderClient) List(ctx context.Context) ([]Status, error) {
	b, err := c.do(ctx, "/downloadsV2/queryPackages", packageQuery{
		BytesLoaded: true,
		BytesTotal:  true,
		ChildCount:  true,
		Enabled:     true,
		Eta:         true,
		Finished:    true,
		SaveTo:      true,
		Speed:       true,
		Status:      true,
	})
	if err != nil {
		return nil, err
	}

	var packages packageResponse
	if err := json.Unmarshal(b, &packages); err != nil {
		return nil, err
	}

	b, err = c.do(ctx, "/downloadsV2/queryLinks", linkQuery{
		BytesTotal: true,
		Finished:   true,
		Status:     true,
		URL:        true,
	})
	if err != nil {
		return nil, err
	}

	var links linkResponse
	if err := json.Unmarshal(b, &links); err != nil {
		return nil, err
	}

	return packagesToStatus(packages.Data, links.Data), nil
}

func packagesToStatus(packages []jdPackage, links []jdLink) []Status {
	stats := make([]Status, len(packages))
	for i, p := range packages {
		var progress float64
		if p.BytesTotal > 0 {
			progress = float64(p.BytesLoaded) / float64(p.BytesTotal) * 100
		}

		var paths []string
		for _, l := range links {
			if l.PackageUUID != p.UUID || !l.Finished || l.Name == "" {
				continue
			}
			paths = append(paths, path.Join(p.SaveTo, l.Name))
		}

		stats[i] = Status{
			ID:          fmt.Sprintf("%d", p.UUID),
			Name:        p.Name,
			State:       packageState(p),
			Progress:    progress,
			Speed:       p.Speed,
			BytesLoaded: p.BytesLoaded,
			BytesTotal:  p.BytesTotal,
			ETA:         time.Duration(p.Eta) * time.Second,
			FilePaths:   paths,
		}
	}
	return stats
}

func packageState(p jdPackage) State {
	if p.Finished {
		return StateFinished
	}
	status := strings.ToLower(p.Status)
	if strings.Contains(status, "error") || strings.Contains(status, "failed") {
		return StateFailed
	}
	if p.BytesLoaded > 0 {
		return StateDownloading
	}
	return StateQueued
}

func (c *JDownloaderClient) do(ctx context.Context, endpoint string, payload any) ([]byte, error) {
	log := logger.FromCtx(ctx)
	if c.http == nil {
		return nil, errors.New("http client is nil")
	}

	u := url.URL{
		Host:   c.host,
		Scheme: c.scheme,
		Path:   endpoint,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	log.Debugw("jdownloader do", "url", u.String())

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("status code not ok: %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
