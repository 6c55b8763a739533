package resolver

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aldesouky/seedarr/pkg/render"
)

const (
	contentURL      = "https://site.test/watch/ep1"
	downloadURL     = "https://site.test/download/ep1"
	serverURL       = "https://server.test/get?x=1"
	shortCircuitURL = "https://server.test/get?asd7b=1"
	directURL       = "https://cdn.test/ep1.1080.mp4"
)

type fakeWindow string

func (w fakeWindow) URL() string { return string(w) }

type page struct {
	anchors []string
	attrs   map[string]string
	texts   map[string]string
	notYet  map[string]int
	clicks  map[string]func()
}

type fakeSession struct {
	current  string
	pages    map[string]*page
	popups   []string
	closed   int
	observed []string
	done     bool
}

func (s *fakeSession) page() *page {
	p, ok := s.pages[s.current]
	if !ok {
		return &page{}
	}
	return p
}

func (s *fakeSession) Navigate(_ context.Context, url string) error {
	s.current = url
	return nil
}

func (s *fakeSession) CurrentURL() string { return s.current }

func (s *fakeSession) Click(_ context.Context, locator string) error {
	fn, ok := s.page().clicks[locator]
	if !ok {
		return render.ErrNotFound
	}
	fn()
	return nil
}

func (s *fakeSession) WaitForNewWindow(_ context.Context, _ time.Duration) (render.Window, error) {
	if len(s.popups) == 0 {
		return nil, render.ErrNoWindow
	}
	w := fakeWindow(s.popups[0])
	s.popups = s.popups[1:]
	return w, nil
}

func (s *fakeSession) CloseWindow(_ context.Context, _ render.Window) error {
	s.closed++
	return nil
}

func (s *fakeSession) ReadAttribute(_ context.Context, locator, _ string) (string, error) {
	v, ok := s.page().attrs[locator]
	if !ok {
		return "", render.ErrNotFound
	}
	return v, nil
}

func (s *fakeSession) ReadText(_ context.Context, locator string) (string, error) {
	p := s.page()
	if p.notYet[locator] > 0 {
		p.notYet[locator]--
		return "", render.ErrNotFound
	}
	v, ok := p.texts[locator]
	if !ok {
		return "", render.ErrNotFound
	}
	return v, nil
}

func (s *fakeSession) ReadAttributeAll(_ context.Context, locator, _ string) ([]string, error) {
	p := s.page()
	if locator == anchorLocator {
		return p.anchors, nil
	}
	if v, ok := p.attrs[locator]; ok {
		return []string{v}, nil
	}
	return nil, nil
}

func (s *fakeSession) ReadTextAll(_ context.Context, locator string) ([]string, error) {
	if v, err := s.ReadText(context.Background(), locator); err == nil {
		return []string{v}, nil
	}
	return nil, nil
}

func (s *fakeSession) ObservedRequests(_ string) []string { return s.observed }

func (s *fakeSession) Close(_ context.Context) error {
	s.done = true
	return nil
}

type fakeFactory struct {
	session *fakeSession
	err     error
}

func (f *fakeFactory) NewSession(_ context.Context) (render.Session, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.session, nil
}

// flakyFactory fails the first few session requests before recovering.
type flakyFactory struct {
	failures int
	session  *fakeSession
}

func (f *flakyFactory) NewSession(_ context.Context) (render.Session, error) {
	if f.failures > 0 {
		f.failures--
		return nil, errors.New("browser crashed")
	}
	return f.session, nil
}

// countingFactory hands out fresh scripted sessions and tracks how many are
// live at once.
type countingFactory struct {
	mu      sync.Mutex
	live    int
	maxLive int
}

func (f *countingFactory) NewSession(_ context.Context) (render.Session, error) {
	f.mu.Lock()
	f.live++
	if f.live > f.maxLive {
		f.maxLive = f.live
	}
	f.mu.Unlock()
	return &countedSession{fakeSession: happyFlow(), factory: f}, nil
}

func (f *countingFactory) max() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.maxLive
}

type countedSession struct {
	*fakeSession
	factory *countingFactory
}

func (s *countedSession) Close(ctx context.Context) error {
	s.factory.mu.Lock()
	s.factory.live--
	s.factory.mu.Unlock()
	return s.fakeSession.Close(ctx)
}

// happyFlow scripts the two-gate flow: content page, download page with
// quality and server controls, and a server page whose start control shows
// up after two polls and reveals the direct link once clicked.
func happyFlow() *fakeSession {
	s := &fakeSession{}

	server := &page{
		texts:  map[string]string{gateButtonLocator: "اضغط للتحميل"},
		notYet: map[string]int{gateButtonLocator: 2},
		clicks: map[string]func(){},
	}
	server.clicks[gateButtonLocator] = func() {
		server.anchors = []string{directURL}
	}

	s.pages = map[string]*page{
		contentURL: {
			attrs: map[string]string{downloadAnchorLocator: downloadURL},
		},
		downloadURL: {
			clicks: map[string]func(){
				`[data-quality="1080"]`: func() {},
				serverLocator:           func() { s.current = serverURL },
			},
		},
		serverURL: server,
	}

	return s
}

func fastOptions() []Option {
	return []Option{
		WithPollInterval(time.Millisecond),
		WithGateCeiling(100 * time.Millisecond),
		WithWindowWait(time.Millisecond),
		WithBackoff(time.Millisecond),
	}
}

func TestResolver_Resolve(t *testing.T) {
	t.Run("two gate flow", func(t *testing.T) {
		session := happyFlow()
		r := New(&fakeFactory{session: session}, fastOptions()...)

		got, err := r.Resolve(context.Background(), Request{SourceURL: contentURL})
		require.NoError(t, err)
		assert.Equal(t, directURL, got.URL)
		assert.Equal(t, "1080", got.Quality)
		assert.Equal(t, serverURL, got.Headers["Referer"])
		assert.Equal(t, 1, got.Attempts)
		assert.True(t, session.done)
	})

	t.Run("short circuit flow", func(t *testing.T) {
		session := happyFlow()
		server := session.pages[serverURL]
		server.clicks[gateButtonLocator] = func() { session.current = shortCircuitURL }
		session.pages[shortCircuitURL] = &page{anchors: []string{directURL}}

		r := New(&fakeFactory{session: session}, fastOptions()...)

		got, err := r.Resolve(context.Background(), Request{SourceURL: contentURL})
		require.NoError(t, err)
		assert.Equal(t, directURL, got.URL)
		assert.Equal(t, shortCircuitURL, got.Headers["Referer"])
	})

	t.Run("intermediate page is followed once", func(t *testing.T) {
		intermediate := "https://server.test/ready?asd7b=1&k=2"
		session := happyFlow()
		server := session.pages[serverURL]
		server.clicks[gateButtonLocator] = func() {
			server.attrs = map[string]string{finalButtonLocator: intermediate}
		}
		session.pages[intermediate] = &page{anchors: []string{directURL}}

		r := New(&fakeFactory{session: session}, fastOptions()...)

		got, err := r.Resolve(context.Background(), Request{SourceURL: contentURL})
		require.NoError(t, err)
		assert.Equal(t, directURL, got.URL)
	})

	t.Run("quality unavailable is not retried", func(t *testing.T) {
		session := happyFlow()
		delete(session.pages[downloadURL].clicks, `[data-quality="1080"]`)

		r := New(&fakeFactory{session: session}, fastOptions()...)

		_, err := r.Resolve(context.Background(), Request{SourceURL: contentURL})
		var resErr *Error
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, ClassQualityUnavailable, resErr.Class)
		assert.Equal(t, StateStart, resErr.State)
		assert.Equal(t, 1, resErr.Attempts)
	})

	t.Run("missing server entry", func(t *testing.T) {
		session := happyFlow()
		delete(session.pages[downloadURL].clicks, serverLocator)

		r := New(&fakeFactory{session: session}, fastOptions()...)

		_, err := r.Resolve(context.Background(), Request{SourceURL: contentURL})
		var resErr *Error
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, ClassServerUnavailable, resErr.Class)
		assert.Equal(t, StateQualitySelected, resErr.State)
	})

	t.Run("one ad window is closed and the click retried", func(t *testing.T) {
		session := happyFlow()
		download := session.pages[downloadURL]
		intercepted := false
		download.clicks[serverLocator] = func() {
			if !intercepted {
				intercepted = true
				session.popups = append(session.popups, "https://ads.obqj2.com/landing")
				return
			}
			session.current = serverURL
		}

		r := New(&fakeFactory{session: session}, fastOptions()...)

		got, err := r.Resolve(context.Background(), Request{SourceURL: contentURL})
		require.NoError(t, err)
		assert.Equal(t, directURL, got.URL)
		assert.Equal(t, 1, session.closed)
	})

	t.Run("repeated ad interception fails the step", func(t *testing.T) {
		session := happyFlow()
		download := session.pages[downloadURL]
		download.clicks[serverLocator] = func() {
			session.popups = append(session.popups, "https://68s8.com/pop")
		}

		r := New(&fakeFactory{session: session}, fastOptions()...)

		_, err := r.Resolve(context.Background(), Request{SourceURL: contentURL})
		var resErr *Error
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, ClassAdInterception, resErr.Class)
		assert.Equal(t, 2, session.closed)
	})

	t.Run("gate timeout is retried then reported", func(t *testing.T) {
		session := happyFlow()
		session.pages[serverURL].notYet[gateButtonLocator] = 1 << 30

		r := New(&fakeFactory{session: session},
			append(fastOptions(), WithMaxAttempts(2), WithGateCeiling(10*time.Millisecond))...)

		_, err := r.Resolve(context.Background(), Request{SourceURL: contentURL})
		var resErr *Error
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, ClassTimedOut, resErr.Class)
		assert.Equal(t, StateServerSelected, resErr.State)
		assert.Equal(t, 2, resErr.Attempts)
	})

	t.Run("falls back to observed network requests", func(t *testing.T) {
		session := happyFlow()
		server := session.pages[serverURL]
		server.clicks[gateButtonLocator] = func() {}
		session.observed = []string{"https://cdn.test/old.mp4", directURL}

		r := New(&fakeFactory{session: session},
			append(fastOptions(), WithGateCeiling(5*time.Millisecond))...)

		got, err := r.Resolve(context.Background(), Request{SourceURL: contentURL})
		require.NoError(t, err)
		assert.Equal(t, directURL, got.URL)
	})

	t.Run("extraction failure when nothing is found", func(t *testing.T) {
		session := happyFlow()
		session.pages[serverURL].clicks[gateButtonLocator] = func() {}

		r := New(&fakeFactory{session: session},
			append(fastOptions(), WithGateCeiling(5*time.Millisecond))...)

		_, err := r.Resolve(context.Background(), Request{SourceURL: contentURL})
		var resErr *Error
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, ClassExtractionFailed, resErr.Class)
		assert.Equal(t, StateGate2, resErr.State)
	})

	t.Run("retried resolution reports consumed attempts", func(t *testing.T) {
		factory := &flakyFactory{failures: 1, session: happyFlow()}
		r := New(factory, append(fastOptions(), WithMaxAttempts(3))...)

		got, err := r.Resolve(context.Background(), Request{SourceURL: contentURL})
		require.NoError(t, err)
		assert.Equal(t, directURL, got.URL)
		assert.Equal(t, 2, got.Attempts)
	})

	t.Run("session factory failure is retried", func(t *testing.T) {
		r := New(&fakeFactory{err: errors.New("browser crashed")},
			append(fastOptions(), WithMaxAttempts(2))...)

		_, err := r.Resolve(context.Background(), Request{SourceURL: contentURL})
		var resErr *Error
		require.ErrorAs(t, err, &resErr)
		assert.Equal(t, 2, resErr.Attempts)
	})

	t.Run("session pool bounds concurrency", func(t *testing.T) {
		factory := &countingFactory{}
		r := New(factory, append(fastOptions(), WithConcurrency(2))...)

		var wg sync.WaitGroup
		for i := 0; i < 5; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res, err := r.Resolve(context.Background(), Request{SourceURL: contentURL})
				assert.NoError(t, err)
				assert.NotNil(t, res)
			}()
		}
		wg.Wait()

		assert.LessOrEqual(t, factory.max(), 2)
	})
}

func TestTransient(t *testing.T) {
	assert.True(t, Transient(errors.New("connection reset")))
	assert.True(t, Transient(&Error{Class: ClassTimedOut}))
	assert.False(t, Transient(&Error{Class: ClassQualityUnavailable}))
	assert.False(t, Transient(&Error{Class: ClassExtractionFailed}))
}
