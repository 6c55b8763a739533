package downloader_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/aldesouky/seedarr/pkg/downloader"
	"github.com/aldesouky/seedarr/pkg/downloader/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func jsonResponse(body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(bytes.NewBufferString(body)),
	}
}

func TestJDownloaderClient_Add(t *testing.T) {
	t.Run("package found in linkgrabber", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		gomock.InOrder(
			mhttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "/linkgrabberv2/addLinks", req.URL.Path)
				assert.Equal(t, http.MethodPost, req.Method)
				b, err := io.ReadAll(req.Body)
				require.NoError(t, err)
				assert.Contains(t, string(b), `"links":"https://host.example/file.mp4"`)
				assert.Contains(t, string(b), `"autostart":true`)
				return jsonResponse(`{}`), nil
			}),
			mhttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "/linkgrabberv2/queryPackages", req.URL.Path)
				return jsonResponse(`{"data":[{"uuid":171234,"name":"Example Show - S01E02"}]}`), nil
			}),
		)

		client := downloader.NewJDownloaderClient(mhttp, "http", "localhost:3128")
		status, err := client.Add(context.Background(), downloader.AddRequest{
			URL:         "https://host.example/file.mp4",
			Destination: "/downloads",
			PackageName: "Example Show - S01E02",
		})
		assert.NoError(t, err)
		assert.Equal(t, "171234", status.ID)
		assert.Equal(t, downloader.StateQueued, status.State)
	})

	t.Run("package already moved to downloads", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		gomock.InOrder(
			mhttp.EXPECT().Do(gomock.Any()).Return(jsonResponse(`{}`), nil),
			mhttp.EXPECT().Do(gomock.Any()).Return(jsonResponse(`{"data":[]}`), nil),
			mhttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "/downloadsV2/queryPackages", req.URL.Path)
				return jsonResponse(`{"data":[{"uuid":99,"name":"pkg"}]}`), nil
			}),
		)

		client := downloader.NewJDownloaderClient(mhttp, "http", "localhost:3128")
		status, err := client.Add(context.Background(), downloader.AddRequest{
			URL:         "https://host.example/file.mp4",
			PackageName: "pkg",
		})
		assert.NoError(t, err)
		assert.Equal(t, "99", status.ID)
	})

	t.Run("empty url", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		client := downloader.NewJDownloaderClient(mhttp, "http", "localhost:3128")
		_, err := client.Add(context.Background(), downloader.AddRequest{PackageName: "pkg"})
		assert.Error(t, err)
	})

	t.Run("add request fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		mhttp.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))

		client := downloader.NewJDownloaderClient(mhttp, "http", "localhost:3128")
		_, err := client.Add(context.Background(), downloader.AddRequest{
			URL:         "https://host.example/file.mp4",
			PackageName: "pkg",
		})
		assert.Error(t, err)
	})
}

func TestJDownloaderClient_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	mhttp := mocks.NewMockHTTPClient(ctrl)

	gomock.InOrder(
		mhttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/downloadsV2/queryPackages", req.URL.Path)
			return jsonResponse(`{"data":[
				{"uuid":1,"name":"done","bytesLoaded":100,"bytesTotal":100,"finished":true,"saveTo":"/downloads/done","eta":0},
				{"uuid":2,"name":"active","bytesLoaded":50,"bytesTotal":200,"finished":false,"status":"Running","speed":1024,"eta":30},
				{"uuid":3,"name":"broken","bytesLoaded":10,"bytesTotal":200,"finished":false,"status":"An error occurred"}
			]}`), nil
		}),
		mhttp.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/downloadsV2/queryLinks", req.URL.Path)
			return jsonResponse(`{"data":[
				{"uuid":11,"name":"movie.mp4","finished":true,"packageUUID":1},
				{"uuid":12,"name":"partial.mp4","finished":false,"packageUUID":2}
			]}`), nil
		}),
	)

	client := downloader.NewJDownloaderClient(mhttp, "http", "localhost:3128")
	statuses, err := client.List(context.Background())
	require.NoError(t, err)
	require.Len(t, statuses, 3)

	assert.Equal(t, "1", statuses[0].ID)
	assert.Equal(t, downloader.StateFinished, statuses[0].State)
	assert.Equal(t, []string{"/downloads/done/movie.mp4"}, statuses[0].FilePaths)
	assert.Equal(t, float64(100), statuses[0].Progress)

	assert.Equal(t, downloader.StateDownloading, statuses[1].State)
	assert.Equal(t, float64(25), statuses[1].Progress)
	assert.Equal(t, int64(1024), statuses[1].Speed)
	assert.Equal(t, 30*time.Second, statuses[1].ETA)
	assert.Empty(t, statuses[1].FilePaths)

	assert.Equal(t, downloader.StateFailed, statuses[2].State)
}

func TestJDownloaderClient_Get(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		gomock.InOrder(
			mhttp.EXPECT().Do(gomock.Any()).Return(jsonResponse(`{"data":[{"uuid":7,"name":"pkg","finished":true,"saveTo":"/downloads"}]}`), nil),
			mhttp.EXPECT().Do(gomock.Any()).Return(jsonResponse(`{"data":[]}`), nil),
		)

		client := downloader.NewJDownloaderClient(mhttp, "http", "localhost:3128")
		status, err := client.Get(context.Background(), downloader.GetRequest{ID: "7"})
		assert.NoError(t, err)
		assert.Equal(t, downloader.StateFinished, status.State)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mhttp := mocks.NewMockHTTPClient(ctrl)

		gomock.InOrder(
			mhttp.EXPECT().Do(gomock.Any()).Return(jsonResponse(`{"data":[]}`), nil),
			mhttp.EXPECT().Do(gomock.Any()).Return(jsonResponse(`{"data":[]}`), nil),
		)

		client := downloader.NewJDownloaderClient(mhttp, "http", "localhost:3128")
		_, err := client.Get(context.Background(), downloader.GetRequest{ID: "7"})
		assert.Error(t, err)
	})
}

func TestClientFactory_NewClient(t *testing.T) {
	factory := downloader.NewClientFactory()

	t.Run("jdownloader", func(t *testing.T) {
		client, err := factory.NewClient(downloader.Config{
			Implementation: "jdownloader",
			Scheme:         "http",
			Host:           "localhost",
			Port:           3128,
		})
		assert.NoError(t, err)
		assert.NotNil(t, client)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := factory.NewClient(downloader.Config{Implementation: "wget"})
		assert.Error(t, err)
	})
}
