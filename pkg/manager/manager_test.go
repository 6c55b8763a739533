package manager

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/go-jet/jet/v2/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/aldesouky/seedarr/config"
	"github.com/aldesouky/seedarr/pkg/downloader"
	dlmocks "github.com/aldesouky/seedarr/pkg/downloader/mocks"
	mio "github.com/aldesouky/seedarr/pkg/io"
	"github.com/aldesouky/seedarr/pkg/library"
	"github.com/aldesouky/seedarr/pkg/resolver"
	"github.com/aldesouky/seedarr/pkg/source"
	srcmocks "github.com/aldesouky/seedarr/pkg/source/mocks"
	"github.com/aldesouky/seedarr/pkg/storage"
	sqlitestore "github.com/aldesouky/seedarr/pkg/storage/sqlite"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/model"
	"github.com/aldesouky/seedarr/pkg/storage/sqlite/schema/gen/table"
)

type fakeResolver struct {
	result *resolver.Result
	err    error
	calls  int
}

func (f *fakeResolver) Resolve(_ context.Context, _ resolver.Request) (*resolver.Result, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type testFixture struct {
	manager   MediaManager
	storage   storage.Storage
	discovery *srcmocks.MockDiscovery
	client    *dlmocks.MockClient
	resolver  *fakeResolver
	tmp       string
}

func newFixture(t *testing.T) *testFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	store, err := sqlitestore.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, store.Init(context.Background()))

	tmp := t.TempDir()
	discovery := srcmocks.NewMockDiscovery(ctrl)
	client := dlmocks.NewMockClient(ctrl)
	res := &fakeResolver{result: &resolver.Result{
		URL:     "https://cdn.test/file.mkv",
		Quality: "1080",
		Headers: map[string]string{"Referer": "https://server.test/get"},
	}}

	lib := library.New(&mio.MediaFileSystem{}, library.Roots{
		SeriesEnglish: filepath.Join(tmp, "english-series"),
		SeriesArabic:  filepath.Join(tmp, "arabic-series"),
		MovieEnglish:  filepath.Join(tmp, "english-movies"),
		MovieArabic:   filepath.Join(tmp, "arabic-movies"),
	})

	cfg := config.Config{
		Downloader: config.Downloader{DestinationDir: filepath.Join(tmp, "downloads")},
		Source:     config.Source{Quality: "1080"},
	}

	return &testFixture{
		manager:   New(store, discovery, res, client, lib, &mio.MediaFileSystem{}, cfg),
		storage:   store,
		discovery: discovery,
		client:    client,
		resolver:  res,
		tmp:       tmp,
	}
}

func (f *testFixture) trackSeries(t *testing.T, seasons []int) *model.TrackedItem {
	t.Helper()
	id, err := f.storage.CreateTrackedItem(context.Background(), model.TrackedItem{
		Title:     "Example Show",
		Kind:      string(storage.MediaKindSeries),
		Language:  string(storage.LanguageEnglish),
		SourceURL: "https://site.test/series/example-show",
		Quality:   "1080",
		Seasons:   storage.FormatSeasons(seasons),
		Monitored: true,
	})
	require.NoError(t, err)

	item, err := f.storage.GetTrackedItem(context.Background(), id)
	require.NoError(t, err)
	return item
}

func TestMediaManager_CheckItem(t *testing.T) {
	refs := []source.EpisodeRef{
		{Season: 1, Episode: 1, Title: "الحلقة 1", URL: "https://site.test/s1e1"},
		{Season: 1, Episode: 2, Title: "الحلقة 2", URL: "https://site.test/s1e2"},
		{Season: 2, Episode: 1, Title: "الحلقة 1", URL: "https://site.test/s2e1"},
	}

	t.Run("detection is idempotent", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		item := f.trackSeries(t, nil)

		f.discovery.EXPECT().ListEpisodes(ctx, item.SourceURL).Times(2).Return(refs, nil)

		created, err := f.manager.CheckItem(ctx, int64(item.ID))
		require.NoError(t, err)
		assert.Len(t, created, 3)

		created, err = f.manager.CheckItem(ctx, int64(item.ID))
		require.NoError(t, err)
		assert.Empty(t, created)

		episodes, err := f.storage.ListEpisodes(ctx)
		require.NoError(t, err)
		assert.Len(t, episodes, 3)

		got, err := f.storage.GetTrackedItem(ctx, int64(item.ID))
		require.NoError(t, err)
		assert.NotNil(t, got.LastCheckedAt)
	})

	t.Run("season selection filters candidates", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		item := f.trackSeries(t, []int{2})

		f.discovery.EXPECT().ListEpisodes(ctx, item.SourceURL).Return(refs, nil)

		created, err := f.manager.CheckItem(ctx, int64(item.ID))
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, "https://site.test/s2e1", created[0].SourceURL)
	})

	t.Run("empty season selection wants nothing", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		item := f.trackSeries(t, []int{})

		f.discovery.EXPECT().ListEpisodes(ctx, item.SourceURL).Return(refs, nil)

		created, err := f.manager.CheckItem(ctx, int64(item.ID))
		require.NoError(t, err)
		assert.Empty(t, created)
	})

	t.Run("movie gets a single entry once", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)

		id, err := f.storage.CreateTrackedItem(ctx, model.TrackedItem{
			Title:     "The Matrix",
			Kind:      string(storage.MediaKindMovie),
			Language:  string(storage.LanguageEnglish),
			SourceURL: "https://site.test/movie/the-matrix",
			Quality:   "1080",
			Monitored: true,
		})
		require.NoError(t, err)

		created, err := f.manager.CheckItem(ctx, id)
		require.NoError(t, err)
		require.Len(t, created, 1)
		assert.Equal(t, int32(0), created[0].Season)

		created, err = f.manager.CheckItem(ctx, id)
		require.NoError(t, err)
		assert.Empty(t, created)
	})
}

func TestMediaManager_FulfillEpisode(t *testing.T) {
	newEpisode := func(t *testing.T, f *testFixture, item *model.TrackedItem) *model.Episode {
		t.Helper()
		id, err := f.storage.CreateEpisode(context.Background(), model.Episode{
			TrackedItemID: item.ID,
			Season:        1,
			EpisodeNumber: 1,
			SourceURL:     "https://site.test/s1e1",
		})
		require.NoError(t, err)
		episode, err := f.storage.GetEpisode(context.Background(), table.Episode.ID.EQ(sqlite.Int64(id)))
		require.NoError(t, err)
		return episode
	}

	t.Run("submits once per target", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		item := f.trackSeries(t, nil)
		episode := newEpisode(t, f, item)
		f.resolver.result.Attempts = 2

		f.client.EXPECT().Add(ctx, gomock.Any()).Times(1).DoAndReturn(
			func(_ context.Context, req downloader.AddRequest) (downloader.Status, error) {
				assert.Equal(t, "https://cdn.test/file.mkv", req.URL)
				assert.Equal(t, "Example Show - S01E01", req.PackageName)
				assert.Equal(t, "https://server.test/get", req.Headers["Referer"])
				return downloader.Status{ID: "jd-1", State: downloader.StateQueued}, nil
			})

		id, err := f.manager.FulfillEpisode(ctx, item, episode)
		require.NoError(t, err)
		require.NotZero(t, id)

		// a second fulfillment of the same target is a no-op
		again, err := f.manager.FulfillEpisode(ctx, item, episode)
		require.NoError(t, err)
		assert.Equal(t, id, again)
		assert.Equal(t, 1, f.resolver.calls)

		got, err := f.storage.GetDownload(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, storage.DownloadStatePending, got.State)
		require.NotNil(t, got.ExternalID)
		assert.Equal(t, "jd-1", *got.ExternalID)
		assert.Equal(t, int32(2), got.Attempts)
	})

	t.Run("resolution failure is recorded", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		f.resolver.err = &resolver.Error{Class: resolver.ClassExtractionFailed, State: resolver.StateGate2, Attempts: 3}
		item := f.trackSeries(t, nil)
		episode := newEpisode(t, f, item)

		_, err := f.manager.FulfillEpisode(ctx, item, episode)
		require.Error(t, err)

		failed, err := f.storage.ListDownloadsByState(ctx, storage.DownloadStateFailed)
		require.NoError(t, err)
		require.Len(t, failed, 1)
		require.NotNil(t, failed[0].ErrorMessage)
		assert.Contains(t, *failed[0].ErrorMessage, "extraction_failed")
		assert.Equal(t, int32(3), failed[0].Attempts)
	})

	t.Run("submission failure is recorded", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		item := f.trackSeries(t, nil)
		episode := newEpisode(t, f, item)

		f.client.EXPECT().Add(ctx, gomock.Any()).Return(downloader.Status{}, errors.New("connection refused"))

		_, err := f.manager.FulfillEpisode(ctx, item, episode)
		require.Error(t, err)

		failed, err := f.storage.ListDownloadsByState(ctx, storage.DownloadStateFailed)
		require.NoError(t, err)
		assert.Len(t, failed, 1)
	})

	t.Run("already downloaded target is skipped", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		item := f.trackSeries(t, nil)
		episode := newEpisode(t, f, item)

		require.NoError(t, f.storage.MarkEpisodeDownloaded(ctx, int64(episode.ID), "/library/done.mkv", 10))
		episode, err := f.storage.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int32(episode.ID)))
		require.NoError(t, err)

		id, err := f.manager.FulfillEpisode(ctx, item, episode)
		require.NoError(t, err)
		assert.Zero(t, id)
		assert.Zero(t, f.resolver.calls)
	})
}

func TestMediaManager_RetryDownload(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.resolver.err = &resolver.Error{Class: resolver.ClassTimedOut, State: resolver.StateGate1, Attempts: 3}
	item := f.trackSeries(t, nil)

	episodeID, err := f.storage.CreateEpisode(ctx, model.Episode{
		TrackedItemID: item.ID,
		Season:        1,
		EpisodeNumber: 1,
		SourceURL:     "https://site.test/s1e1",
	})
	require.NoError(t, err)
	episode, err := f.storage.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int64(episodeID)))
	require.NoError(t, err)

	_, err = f.manager.FulfillEpisode(ctx, item, episode)
	require.Error(t, err)

	failed, err := f.storage.ListDownloadsByState(ctx, storage.DownloadStateFailed)
	require.NoError(t, err)
	require.Len(t, failed, 1)

	// a retry re-resolves and creates a fresh record
	f.resolver.err = nil
	f.client.EXPECT().Add(ctx, gomock.Any()).Return(downloader.Status{ID: "jd-2"}, nil)

	id, err := f.manager.RetryDownload(ctx, int64(failed[0].ID))
	require.NoError(t, err)
	assert.NotEqual(t, int64(failed[0].ID), id)

	got, err := f.storage.GetDownload(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, storage.DownloadStatePending, got.State)

	// only failed downloads can be retried
	_, err = f.manager.RetryDownload(ctx, id)
	assert.Error(t, err)
}

func TestPackageName(t *testing.T) {
	series := &model.TrackedItem{Title: "Example: Show", Kind: string(storage.MediaKindSeries)}
	movie := &model.TrackedItem{Title: "The Matrix", Kind: string(storage.MediaKindMovie)}
	episode := &model.Episode{Season: 2, EpisodeNumber: 5}

	snaps.MatchSnapshot(t, []string{
		packageName(series, episode),
		packageName(movie, episode),
	})
}

func TestMediaManager_TrackItem(t *testing.T) {
	t.Run("tracking a movie queues its entry", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)

		id, err := f.manager.TrackItem(ctx, TrackRequest{
			Title:     "The Matrix",
			SourceURL: "https://site.test/movie/the-matrix",
			Kind:      storage.MediaKindMovie,
			Language:  storage.LanguageEnglish,
		})
		require.NoError(t, err)
		require.NotZero(t, id)

		episodes, err := f.storage.ListEpisodes(ctx)
		require.NoError(t, err)
		assert.Len(t, episodes, 1)

		// tracking the same URL again returns the existing item
		again, err := f.manager.TrackItem(ctx, TrackRequest{
			Title:     "The Matrix",
			SourceURL: "https://site.test/movie/the-matrix",
			Kind:      storage.MediaKindMovie,
			Language:  storage.LanguageEnglish,
		})
		require.NoError(t, err)
		assert.Equal(t, id, again)
	})

	t.Run("re-tracking with seasons updates the selection", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)

		refs := []source.EpisodeRef{
			{Season: 1, Episode: 1, URL: "https://site.test/show/s1e1"},
			{Season: 2, Episode: 1, URL: "https://site.test/show/s2e1"},
		}
		f.discovery.EXPECT().ListEpisodes(ctx, "https://site.test/series/show").Times(2).Return(refs, nil)

		req := TrackRequest{
			Title:     "Show",
			SourceURL: "https://site.test/series/show",
			Kind:      storage.MediaKindSeries,
			Language:  storage.LanguageArabic,
			Seasons:   []int{1},
		}
		id, err := f.manager.TrackItem(ctx, req)
		require.NoError(t, err)

		episodes, err := f.storage.ListEpisodes(ctx)
		require.NoError(t, err)
		require.Len(t, episodes, 1)

		req.Seasons = []int{1, 2}
		again, err := f.manager.TrackItem(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, id, again)

		item, err := f.storage.GetTrackedItem(ctx, id)
		require.NoError(t, err)
		require.NotNil(t, item.Seasons)
		assert.Equal(t, "1,2", *item.Seasons)

		episodes, err = f.storage.ListEpisodes(ctx)
		require.NoError(t, err)
		assert.Len(t, episodes, 2)

		// no selection leaves the item untouched
		req.Seasons = nil
		_, err = f.manager.TrackItem(ctx, req)
		require.NoError(t, err)
	})

	t.Run("tracking a series runs initial detection", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)

		f.discovery.EXPECT().ListEpisodes(ctx, "https://site.test/series/new-show").Return([]source.EpisodeRef{
			{Season: 1, Episode: 1, URL: "https://site.test/new-show/s1e1"},
		}, nil)

		_, err := f.manager.TrackItem(ctx, TrackRequest{
			Title:     "New Show",
			SourceURL: "https://site.test/series/new-show",
			Kind:      storage.MediaKindSeries,
			Language:  storage.LanguageArabic,
			Seasons:   []int{1},
		})
		require.NoError(t, err)

		episodes, err := f.storage.ListEpisodes(ctx)
		require.NoError(t, err)
		assert.Len(t, episodes, 1)
	})
}

func TestMediaManager_Reconcile(t *testing.T) {
	seed := func(t *testing.T, f *testFixture) (*model.TrackedItem, *model.Episode, int64) {
		t.Helper()
		ctx := context.Background()
		item := f.trackSeries(t, nil)

		episodeID, err := f.storage.CreateEpisode(ctx, model.Episode{
			TrackedItemID: item.ID,
			Season:        1,
			EpisodeNumber: 1,
			SourceURL:     "https://site.test/s1e1",
		})
		require.NoError(t, err)
		episode, err := f.storage.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int64(episodeID)))
		require.NoError(t, err)

		externalID := "jd-1"
		downloadID, err := f.storage.CreateDownload(ctx, storage.Download{
			DownloadRecord: model.DownloadRecord{
				TrackedItemID:   item.ID,
				EpisodeID:       &episode.ID,
				DownloadURL:     "https://cdn.test/file.mkv",
				ExternalID:      &externalID,
				DestinationPath: filepath.Join(f.tmp, "downloads"),
			},
		}, storage.DownloadStatePending)
		require.NoError(t, err)

		return item, episode, downloadID
	}

	t.Run("progress updates move the record forward", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		_, _, downloadID := seed(t, f)

		f.client.EXPECT().List(ctx).Return([]downloader.Status{
			{ID: "jd-1", Name: "Example Show - S01E01", State: downloader.StateDownloading, Progress: 40},
		}, nil)

		require.NoError(t, f.manager.Reconcile(ctx))

		got, err := f.storage.GetDownload(ctx, downloadID)
		require.NoError(t, err)
		assert.Equal(t, storage.DownloadStateInProgress, got.State)
		assert.Equal(t, float64(40), got.Progress)
	})

	t.Run("finished transfer is verified and placed", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		_, episode, downloadID := seed(t, f)

		small := filepath.Join(f.tmp, "downloads", "sample.mkv")
		full := filepath.Join(f.tmp, "downloads", "episode.mkv")
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(small, []byte("x"), 0o644))
		require.NoError(t, os.WriteFile(full, []byte("full episode content"), 0o644))

		f.client.EXPECT().List(ctx).Return([]downloader.Status{
			{ID: "jd-1", State: downloader.StateFinished, Progress: 100, FilePaths: []string{small, full}},
		}, nil)

		require.NoError(t, f.manager.Reconcile(ctx))

		got, err := f.storage.GetDownload(ctx, downloadID)
		require.NoError(t, err)
		assert.Equal(t, storage.DownloadStateCompleted, got.State)
		require.NotNil(t, got.FinalPath)

		want := filepath.Join(f.tmp, "english-series", "Example Show", "Season 01", "Example Show - S01E01.mkv")
		assert.Equal(t, want, *got.FinalPath)

		updated, err := f.storage.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int32(episode.ID)))
		require.NoError(t, err)
		assert.True(t, updated.Downloaded)
		require.NotNil(t, updated.FilePath)
		assert.Equal(t, want, *updated.FilePath)
	})

	t.Run("placement collision completes the record but not the episode", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		_, episode, downloadID := seed(t, f)

		full := filepath.Join(f.tmp, "downloads", "episode.mkv")
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("full episode content"), 0o644))

		collision := library.EpisodePath(filepath.Join(f.tmp, "english-series"), "Example Show", 1, 1, ".mkv")
		require.NoError(t, os.MkdirAll(filepath.Dir(collision), 0o755))
		require.NoError(t, os.WriteFile(collision, []byte("already here"), 0o644))

		f.client.EXPECT().List(ctx).Return([]downloader.Status{
			{ID: "jd-1", State: downloader.StateFinished, Progress: 100, FilePaths: []string{full}},
		}, nil)

		require.NoError(t, f.manager.Reconcile(ctx))

		got, err := f.storage.GetDownload(ctx, downloadID)
		require.NoError(t, err)
		assert.Equal(t, storage.DownloadStateCompleted, got.State)
		assert.Nil(t, got.FinalPath)
		require.NotNil(t, got.ErrorMessage)
		assert.Contains(t, *got.ErrorMessage, "placement failed")

		updated, err := f.storage.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int32(episode.ID)))
		require.NoError(t, err)
		assert.False(t, updated.Downloaded)
	})

	t.Run("manager failure marks the record failed", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		_, _, downloadID := seed(t, f)

		f.client.EXPECT().List(ctx).Return([]downloader.Status{
			{ID: "jd-1", Name: "Example Show - S01E01", State: downloader.StateFailed},
		}, nil)

		require.NoError(t, f.manager.Reconcile(ctx))

		got, err := f.storage.GetDownload(ctx, downloadID)
		require.NoError(t, err)
		assert.Equal(t, storage.DownloadStateFailed, got.State)
		assert.NotNil(t, got.ErrorMessage)
	})

	t.Run("unreachable manager leaves records untouched", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		_, _, downloadID := seed(t, f)

		f.client.EXPECT().List(ctx).Return(nil, errors.New("connection refused"))

		err := f.manager.Reconcile(ctx)
		require.Error(t, err)

		got, err := f.storage.GetDownload(ctx, downloadID)
		require.NoError(t, err)
		assert.Equal(t, storage.DownloadStatePending, got.State)
	})

	t.Run("nothing active skips the manager call", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)

		require.NoError(t, f.manager.Reconcile(ctx))
	})
}

func TestMediaManager_PlaceDownload(t *testing.T) {
	seed := func(t *testing.T, f *testFixture) (*model.Episode, int64) {
		t.Helper()
		ctx := context.Background()
		item := f.trackSeries(t, nil)

		episodeID, err := f.storage.CreateEpisode(ctx, model.Episode{
			TrackedItemID: item.ID,
			Season:        1,
			EpisodeNumber: 1,
			SourceURL:     "https://site.test/s1e1",
		})
		require.NoError(t, err)
		episode, err := f.storage.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int64(episodeID)))
		require.NoError(t, err)

		externalID := "jd-1"
		downloadID, err := f.storage.CreateDownload(ctx, storage.Download{
			DownloadRecord: model.DownloadRecord{
				TrackedItemID:   item.ID,
				EpisodeID:       &episode.ID,
				DownloadURL:     "https://cdn.test/file.mkv",
				ExternalID:      &externalID,
				DestinationPath: filepath.Join(f.tmp, "downloads"),
			},
		}, storage.DownloadStatePending)
		require.NoError(t, err)

		return episode, downloadID
	}

	t.Run("manual placement completes the catalog entry only", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		episode, downloadID := seed(t, f)

		full := filepath.Join(f.tmp, "downloads", "episode.mkv")
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte("full episode content"), 0o644))

		// a colliding file makes the first placement fail during reconciliation
		collision := library.EpisodePath(filepath.Join(f.tmp, "english-series"), "Example Show", 1, 1, ".mkv")
		require.NoError(t, os.MkdirAll(filepath.Dir(collision), 0o755))
		require.NoError(t, os.WriteFile(collision, []byte("already here"), 0o644))

		f.client.EXPECT().List(ctx).Return([]downloader.Status{
			{ID: "jd-1", State: downloader.StateFinished, Progress: 100, FilePaths: []string{full}},
		}, nil)

		require.NoError(t, f.manager.Reconcile(ctx))

		before, err := f.storage.GetDownload(ctx, downloadID)
		require.NoError(t, err)
		require.Equal(t, storage.DownloadStateCompleted, before.State)
		require.NotNil(t, before.ErrorMessage)

		require.NoError(t, os.Remove(collision))

		f.client.EXPECT().Get(ctx, downloader.GetRequest{ID: "jd-1"}).Return(downloader.Status{
			ID: "jd-1", State: downloader.StateFinished, Progress: 100, FilePaths: []string{full},
		}, nil)

		path, err := f.manager.PlaceDownload(ctx, downloadID)
		require.NoError(t, err)
		assert.Equal(t, collision, path)

		updated, err := f.storage.GetEpisode(ctx, table.Episode.ID.EQ(sqlite.Int32(episode.ID)))
		require.NoError(t, err)
		assert.True(t, updated.Downloaded)

		// the record keeps its completion exactly as reconciliation left it
		after, err := f.storage.GetDownload(ctx, downloadID)
		require.NoError(t, err)
		assert.Equal(t, storage.DownloadStateCompleted, after.State)
		assert.Nil(t, after.FinalPath)
		assert.Equal(t, before.ErrorMessage, after.ErrorMessage)
		assert.Equal(t, before.CompletedAt, after.CompletedAt)
	})

	t.Run("only completed downloads can be placed", func(t *testing.T) {
		ctx := context.Background()
		f := newFixture(t)
		_, downloadID := seed(t, f)

		_, err := f.manager.PlaceDownload(ctx, downloadID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "only completed downloads")
	})
}

func TestScheduler_Run(t *testing.T) {
	f := newFixture(t)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s := NewScheduler(f.manager, config.Manager{
		CheckInterval:     10 * time.Millisecond,
		ReconcileInterval: 10 * time.Millisecond,
	})

	err := s.Run(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
