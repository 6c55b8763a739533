// Package storage defines the persisted catalog: tracked items, their known
// episodes, and the bookkeeping records of submitted downloads.
package storage

import (
	"context"
	"errors"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/go-jet/jet/v2/sqlite"

	"github.com/aldesouky/seedarr/pkg/machine"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/model"
)

//go:generate mockgen -source=storage.go -destination=mocks/mock.go -package=mocks

var ErrNotFound = errors.New("not found in storage")

type MediaKind string

const (
	MediaKindSeries MediaKind = "series"
	MediaKindMovie  MediaKind = "movie"
)

type Language string

const (
	LanguageEnglish Language = "english"
	LanguageArabic  Language = "arabic"
)

type Storage interface {
	Init(ctx context.Context) error
	TrackedItemStorage
	EpisodeStorage
	DownloadStorage
}

type TrackedItemStorage interface {
	CreateTrackedItem(ctx context.Context, item model.TrackedItem) (int64, error)
	GetTrackedItem(ctx context.Context, id int64) (*model.TrackedItem, error)
	GetTrackedItemByURL(ctx context.Context, sourceURL string) (*model.TrackedItem, error)
	ListTrackedItems(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.TrackedItem, error)
	UpdateTrackedItemSeasons(ctx context.Context, id int64, seasons *string) error
	UpdateTrackedItemChecked(ctx context.Context, id int64, at time.Time) error
	DeleteTrackedItem(ctx context.Context, id int64) error
}

type EpisodeStorage interface {
	CreateEpisode(ctx context.Context, episode model.Episode) (int64, error)
	GetEpisode(ctx context.Context, where sqlite.BoolExpression) (*model.Episode, error)
	ListEpisodes(ctx context.Context, where ...sqlite.BoolExpression) ([]*model.Episode, error)
	MarkEpisodeDownloaded(ctx context.Context, id int64, filePath string, fileSize int64) error
	DeleteEpisode(ctx context.Context, id int64) error
}

type DownloadState string

const (
	DownloadStateNew        DownloadState = ""
	DownloadStatePending    DownloadState = "pending"
	DownloadStateInProgress DownloadState = "in_progress"
	DownloadStateCompleted  DownloadState = "completed"
	DownloadStateFailed     DownloadState = "failed"
)

// Download is a download record joined with its current state.
type Download struct {
	model.DownloadRecord
	State DownloadState `alias:"download_transition.to_state" json:"state"`
}

type DownloadTransition model.DownloadTransition

func (d Download) Machine() *machine.StateMachine[DownloadState] {
	return machine.New(d.State,
		machine.From(DownloadStateNew).To(DownloadStatePending),
		machine.From(DownloadStatePending).To(DownloadStateInProgress, DownloadStateFailed),
		machine.From(DownloadStateInProgress).To(DownloadStateCompleted, DownloadStateFailed),
	)
}

// Active reports whether the download still occupies its target.
func (d Download) Active() bool {
	return d.State == DownloadStatePending || d.State == DownloadStateInProgress
}

// TransitionMetadata carries record fields that change together with a state
// transition.
type TransitionMetadata struct {
	// ExternalID is the download manager's handle, set when submission
	// succeeds.
	ExternalID *string
	// FinalPath is the placed file location, set on completion.
	FinalPath *string
	// Error explains a transition to failed.
	Error *string
}

type DownloadStorage interface {
	CreateDownload(ctx context.Context, download Download, initialState DownloadState) (int64, error)
	GetDownload(ctx context.Context, id int64) (*Download, error)
	ListDownloads(ctx context.Context, where ...sqlite.BoolExpression) ([]*Download, error)
	ListDownloadsByState(ctx context.Context, state DownloadState) ([]*Download, error)
	// GetActiveDownload finds the pending or in-progress download for a
	// target. episodeID is nil for movie targets. Returns ErrNotFound when
	// the target has no active download.
	GetActiveDownload(ctx context.Context, trackedItemID int64, episodeID *int64) (*Download, error)
	UpdateDownloadState(ctx context.Context, id int64, state DownloadState, metadata *TransitionMetadata) error
	UpdateDownloadProgress(ctx context.Context, id int64, progress float64) error
	DeleteDownload(ctx context.Context, id int64) error
}

// Season selection is stored as a nullable text column: NULL means every
// season, the empty string means no seasons, anything else is a comma
// separated set of season numbers.

// WantsSeason reports whether a selection includes the given season.
func WantsSeason(seasons *string, season int) bool {
	if seasons == nil {
		return true
	}
	if *seasons == "" {
		return false
	}
	for _, part := range strings.Split(*seasons, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		if n == season {
			return true
		}
	}
	return false
}

// FormatSeasons encodes a season set for storage. A nil slice selects every
// season, an empty slice selects none.
func FormatSeasons(seasons []int) *string {
	if seasons == nil {
		return nil
	}
	sorted := make([]int, len(seasons))
	copy(sorted, seasons)
	sort.Ints(sorted)

	parts := make([]string, len(sorted))
	for i, n := range sorted {
		parts[i] = strconv.Itoa(n)
	}
	s := strings.Join(parts, ",")
	return &s
}

// ParseSeasons decodes a stored selection. all is true when every season is
// selected.
func ParseSeasons(seasons *string) (selected []int, all bool) {
	if seasons == nil {
		return nil, true
	}
	if *seasons == "" {
		return nil, false
	}
	for _, part := range strings.Split(*seasons, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			continue
		}
		selected = append(selected, n)
	}
	sort.Ints(selected)
	return selected, false
}
