package arabseed

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/aldesouky/seedarr/pkg/source"
)

// Arabic ordinal words used in season labels, e.g. "الموسم الثاني".
var seasonWords = map[string]int{
	"الأول":  1,
	"الاول":  1,
	"الثاني": 2,
	"الثالث": 3,
	"الرابع": 4,
	"الخامس": 5,
	"السادس": 6,
	"السابع": 7,
	"الثامن": 8,
	"التاسع": 9,
	"العاشر": 10,
}

var (
	seasonDigitsRe  = regexp.MustCompile(`الموسم\s*(\d+)`)
	episodeTitleRe  = regexp.MustCompile(`الحلقة\s*(\d+)`)
	episodeURLRe    = regexp.MustCompile(`الحلقة-(\d+)`)
	seasonStripRe   = regexp.MustCompile(`\s*(الموسم|الحلقة|season|episode)\s*(الأول|الاول|الثاني|الثالث|الرابع|الخامس|السادس|السابع|الثامن|التاسع|العاشر|\d+)`)
	seasonMarkerRe  = regexp.MustCompile(`(الموسم|season)\s*(الأول|الاول|الثاني|الثالث|\d+)`)
	latinEpisodeRe  = regexp.MustCompile(`(?i)(season|episode)\s*\d+`)
	seriesBadgeRe   = regexp.MustCompile(`مسلسل|Series|TV`)
	movieBadgeRe    = regexp.MustCompile(`فيلم|Movie`)
	seriesURLPathRe = regexp.MustCompile(`/مسلسل-|%D9%85%D8%B3%D9%84%D8%B3%D9%84-`)
	movieURLPathRe  = regexp.MustCompile(`/فيلم-|%D9%81%D9%8A%D9%84%D9%85-`)
	seriesNameRe    = regexp.MustCompile(`/مسلسل-([^/]+?)(?:-الموسم.*)?/?$`)
)

// seasonNumber parses a season label into its number. Handles both Arabic
// ordinal words and trailing digits.
func seasonNumber(text string) (int, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	for word, n := range seasonWords {
		if strings.Contains(text, word) {
			return n, true
		}
	}
	if m := seasonDigitsRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil && n >= 1 && n <= 20 {
			return n, true
		}
	}
	return 0, false
}

// episodeNumber parses an episode number from a label, falling back to the
// link URL when the label carries none.
func episodeNumber(text, href string) (int, bool) {
	if m := episodeTitleRe.FindStringSubmatch(text); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, true
		}
	}
	decoded, err := url.PathUnescape(href)
	if err != nil {
		decoded = href
	}
	if m := episodeURLRe.FindStringSubmatch(decoded); m != nil {
		n, err := strconv.Atoi(m[1])
		if err == nil {
			return n, true
		}
	}
	return 0, false
}

// classify decides whether a search result is a series or a movie. The title
// is the strongest signal, then the badge, then the URL path. Movie is the
// default when nothing matches.
func classify(badge, rawURL, title string) source.Kind {
	if title != "" {
		if episodeTitleRe.MatchString(title) || seasonMarkerRe.MatchString(title) || latinEpisodeRe.MatchString(title) {
			return source.KindSeries
		}
	}
	if badge != "" {
		if seriesBadgeRe.MatchString(badge) {
			return source.KindSeries
		}
		if movieBadgeRe.MatchString(badge) {
			return source.KindMovie
		}
	}
	if seriesURLPathRe.MatchString(rawURL) {
		return source.KindSeries
	}
	if movieURLPathRe.MatchString(rawURL) {
		return source.KindMovie
	}
	return source.KindMovie
}

// baseTitle strips season and episode suffixes so results for different
// seasons of one series group together.
func baseTitle(title string) string {
	return strings.TrimSpace(seasonStripRe.ReplaceAllString(title, ""))
}

// dedupeSeries collapses per-season entries of the same series down to one
// result, preferring the entry without a season marker in its title since
// that is usually the main series page. Movies pass through untouched.
func dedupeSeries(results []source.SearchResult) []source.SearchResult {
	out := make([]source.SearchResult, 0, len(results))
	seen := make(map[string]int)

	for _, r := range results {
		if r.Kind != source.KindSeries {
			out = append(out, r)
			continue
		}

		key := strings.ToLower(baseTitle(r.Title))
		idx, ok := seen[key]
		if !ok {
			seen[key] = len(out)
			out = append(out, r)
			continue
		}

		if seasonMarkerRe.MatchString(out[idx].Title) && !seasonMarkerRe.MatchString(r.Title) {
			out[idx] = r
		}
	}

	return out
}

// seriesNameFromURL recovers a searchable series name from a series or
// episode URL.
func seriesNameFromURL(rawURL string) string {
	decoded, err := url.PathUnescape(rawURL)
	if err != nil {
		decoded = rawURL
	}

	if m := seriesNameRe.FindStringSubmatch(decoded); m != nil {
		return strings.ReplaceAll(m[1], "-", " ")
	}

	// Fall back to the first path segment that is not a marker.
	for _, part := range strings.Split(decoded, "/") {
		if part == "" || strings.HasPrefix(part, "http") ||
			strings.Contains(part, "الموسم") || strings.Contains(part, "الحلقة") ||
			strings.ContainsAny(part, ".:") {
			continue
		}
		name := strings.TrimSpace(strings.ReplaceAll(part, "-", " "))
		if len(name) > 2 {
			return name
		}
	}

	return ""
}
