// Package arabseed implements source discovery against the ArabSeed catalog.
// The site serves no API so everything goes through a rendering session.
package arabseed

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/aldesouky/seedarr/pkg/logger"
	"github.com/aldesouky/seedarr/pkg/render"
	"github.com/aldesouky/seedarr/pkg/source"
)

const DefaultBaseURL = "https://a.asd.homes"

const (
	resultLocator      = "a.movie__block"
	resultTitleLocator = "a.movie__block h3"
	resultBadgeLocator = "a.movie__block .mv__pro__type"
	seasonListLocator  = "#seasons__list li span, .list__sub__cats li span"
	seasonDropdown     = ".filter__bttn"
	episodeListLocator = ".episodes__list li a"
	overlayClickTarget = "body"
)

type Client struct {
	factory render.Factory
	baseURL string
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the catalog base URL. The site rotates domains.
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(u, "/")
	}
}

// New creates a discovery client backed by the given session factory.
func New(factory render.Factory, opts ...Option) *Client {
	c := &Client{
		factory: factory,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) searchURL(query string, kind source.Kind) string {
	return fmt.Sprintf("%s/find/?word=%s&type=%s", c.baseURL, url.QueryEscape(query), string(kind))
}

// dismissOverlay triggers and discards the ad overlay that intercepts the
// first click on most pages. Failure is not actionable so it is ignored.
func dismissOverlay(ctx context.Context, s render.Session) {
	_ = s.Click(ctx, overlayClickTarget)
}

func (c *Client) Search(ctx context.Context, query string, kind source.Kind) ([]source.SearchResult, error) {
	log := logger.FromCtx(ctx)

	s, err := c.factory.NewSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	defer s.Close(ctx)

	if err := s.Navigate(ctx, c.searchURL(query, kind)); err != nil {
		return nil, fmt.Errorf("loading search page: %w", err)
	}
	dismissOverlay(ctx, s)

	hrefs, err := s.ReadAttributeAll(ctx, resultLocator, "href")
	if err != nil {
		return nil, fmt.Errorf("reading search results: %w", err)
	}
	titles, err := s.ReadTextAll(ctx, resultTitleLocator)
	if err != nil {
		return nil, fmt.Errorf("reading result titles: %w", err)
	}
	badges, _ := s.ReadTextAll(ctx, resultBadgeLocator)

	log.Debugw("search page scraped", "query", query, "results", len(hrefs))

	queryLower := strings.ToLower(strings.TrimSpace(query))
	results := make([]source.SearchResult, 0, len(hrefs))
	seen := make(map[string]struct{}, len(hrefs))
	for i, href := range hrefs {
		if href == "" || i >= len(titles) {
			continue
		}
		if _, ok := seen[href]; ok {
			continue
		}
		seen[href] = struct{}{}

		title := strings.TrimSpace(titles[i])
		if len(title) <= 2 {
			continue
		}
		// The search page pads results with unrelated content.
		if !strings.Contains(strings.ToLower(title), queryLower) {
			continue
		}

		badge := ""
		if len(badges) == len(hrefs) {
			badge = strings.TrimSpace(badges[i])
		}

		results = append(results, source.SearchResult{
			Title: title,
			URL:   href,
			Kind:  classify(badge, href, title),
			Badge: badge,
		})
	}

	return dedupeSeries(results), nil
}

type seasonEntry struct {
	number int
	label  string
}

// readSeasons opens the season dropdown on the current page and parses its
// entries. An empty result means the page exposes no season navigation,
// which single-season series commonly do.
func readSeasons(ctx context.Context, s render.Session) ([]seasonEntry, error) {
	// The dropdown only populates once opened. Not all pages have one.
	_ = s.Click(ctx, seasonDropdown)

	labels, err := s.ReadTextAll(ctx, seasonListLocator)
	if err != nil {
		return nil, fmt.Errorf("reading season list: %w", err)
	}

	seasons := make([]seasonEntry, 0, len(labels))
	found := make(map[int]struct{}, len(labels))
	for _, label := range labels {
		label = strings.TrimSpace(label)
		if !strings.Contains(label, "الموسم") {
			continue
		}
		n, ok := seasonNumber(label)
		if !ok {
			continue
		}
		if _, dup := found[n]; dup {
			continue
		}
		found[n] = struct{}{}
		seasons = append(seasons, seasonEntry{number: n, label: label})
	}

	sort.Slice(seasons, func(i, j int) bool { return seasons[i].number < seasons[j].number })
	return seasons, nil
}

func (c *Client) ListSeasons(ctx context.Context, seriesURL string) ([]int, error) {
	s, err := c.factory.NewSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	defer s.Close(ctx)

	if err := s.Navigate(ctx, seriesURL); err != nil {
		return nil, fmt.Errorf("loading series page: %w", err)
	}
	dismissOverlay(ctx, s)

	seasons, err := readSeasons(ctx, s)
	if err != nil {
		return nil, err
	}

	numbers := make([]int, len(seasons))
	for i, se := range seasons {
		numbers[i] = se.number
	}
	return numbers, nil
}

func (c *Client) ListEpisodes(ctx context.Context, seriesURL string) ([]source.EpisodeRef, error) {
	log := logger.FromCtx(ctx)

	s, err := c.factory.NewSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("creating session: %w", err)
	}
	defer s.Close(ctx)

	if err := s.Navigate(ctx, seriesURL); err != nil {
		return nil, fmt.Errorf("loading series page: %w", err)
	}
	dismissOverlay(ctx, s)

	seasons, err := readSeasons(ctx, s)
	if err != nil {
		return nil, err
	}

	// Single-season series list their episodes on the series page itself.
	if len(seasons) <= 1 {
		episodes, err := readEpisodeList(ctx, s, 1)
		if err != nil {
			return nil, err
		}
		if len(episodes) > 0 {
			return episodes, nil
		}
	}

	seriesName := seriesNameFromURL(seriesURL)
	if seriesName == "" {
		return nil, fmt.Errorf("cannot derive series name from %q", seriesURL)
	}
	if len(seasons) == 0 {
		seasons = []seasonEntry{{number: 1, label: "الموسم الاول"}}
	}

	var all []source.EpisodeRef
	for _, se := range seasons {
		episodes, err := c.listSeasonEpisodes(ctx, s, seriesName, se)
		if err != nil {
			log.Warnw("season enumeration failed", "series", seriesName, "season", se.number, "error", err)
			continue
		}
		all = append(all, episodes...)
	}

	return all, nil
}

// listSeasonEpisodes searches for a season's first episode and reads the
// full episode list from that episode's page. The series page only ever
// shows the currently selected season, so each season needs its own search.
func (c *Client) listSeasonEpisodes(ctx context.Context, s render.Session, seriesName string, se seasonEntry) ([]source.EpisodeRef, error) {
	query := seriesName + " " + se.label
	if err := s.Navigate(ctx, c.searchURL(query, "")); err != nil {
		return nil, fmt.Errorf("loading season search: %w", err)
	}
	dismissOverlay(ctx, s)

	hrefs, err := s.ReadAttributeAll(ctx, resultLocator, "href")
	if err != nil {
		return nil, fmt.Errorf("reading season search results: %w", err)
	}

	var episodeURL string
	for _, href := range hrefs {
		decoded, derr := url.PathUnescape(href)
		if derr != nil {
			decoded = href
		}
		if strings.Contains(decoded, "الحلقة") {
			episodeURL = href
			break
		}
	}
	if episodeURL == "" {
		return nil, fmt.Errorf("no episode found for season %d", se.number)
	}

	if err := s.Navigate(ctx, episodeURL); err != nil {
		return nil, fmt.Errorf("loading episode page: %w", err)
	}
	dismissOverlay(ctx, s)

	return readEpisodeList(ctx, s, se.number)
}

// readEpisodeList parses the episode navigation list of the current page.
func readEpisodeList(ctx context.Context, s render.Session, season int) ([]source.EpisodeRef, error) {
	hrefs, err := s.ReadAttributeAll(ctx, episodeListLocator, "href")
	if err != nil {
		return nil, fmt.Errorf("reading episode list: %w", err)
	}
	labels, err := s.ReadTextAll(ctx, episodeListLocator)
	if err != nil {
		return nil, fmt.Errorf("reading episode labels: %w", err)
	}

	episodes := make([]source.EpisodeRef, 0, len(hrefs))
	for i, href := range hrefs {
		if href == "" || i >= len(labels) {
			continue
		}
		label := strings.TrimSpace(labels[i])
		n, ok := episodeNumber(label, href)
		if !ok {
			continue
		}
		if label == "" {
			label = fmt.Sprintf("الحلقة %d", n)
		}
		episodes = append(episodes, source.EpisodeRef{
			Season:  season,
			Episode: n,
			Title:   label,
			URL:     href,
		})
	}

	sort.Slice(episodes, func(i, j int) bool { return episodes[i].Episode < episodes[j].Episode })
	return episodes, nil
}
