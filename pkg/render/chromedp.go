package render

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/network"
	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/cdproto/target"
	"github.com/chromedp/chromedp"

	"github.com/aldesouky/seedarr/pkg/logger"
)

// Config selects and tunes the rendering engine.
type Config struct {
	Implementation string
	Headless       bool
	UserAgent      string
}

// NewFactory returns a session factory for the configured engine.
func NewFactory(config Config) (Factory, error) {
	switch config.Implementation {
	case "", "chromedp":
		return NewChromeFactory(config), nil
	default:
		return nil, fmt.Errorf("unknown render engine: %v", config.Implementation)
	}
}

// ChromeFactory launches Chrome sessions over the DevTools protocol. Each
// session is its own browser process, so closing one cannot disturb another.
type ChromeFactory struct {
	opts []chromedp.ExecAllocatorOption
}

func NewChromeFactory(config Config) *ChromeFactory {
	opts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	if !config.Headless {
		opts = append(opts, chromedp.Flag("headless", false))
	}
	if config.UserAgent != "" {
		opts = append(opts, chromedp.UserAgent(config.UserAgent))
	}
	return &ChromeFactory{opts: opts}
}

func (f *ChromeFactory) NewSession(ctx context.Context) (Session, error) {
	allocCtx, allocCancel := chromedp.NewExecAllocator(ctx, f.opts...)
	browserCtx, browserCancel := chromedp.NewContext(allocCtx)

	s := &chromeSession{
		ctx:     browserCtx,
		cancels: []context.CancelFunc{browserCancel, allocCancel},
		windows: make(map[target.ID]*chromeWindow),
		popups:  make(chan *chromeWindow, 16),
	}

	// starting the browser also tells us our own target, so popups can be
	// told apart from it
	if err := chromedp.Run(browserCtx, network.Enable()); err != nil {
		s.teardown()
		return nil, fmt.Errorf("failed to start browser: %w", err)
	}
	if c := chromedp.FromContext(browserCtx); c != nil && c.Target != nil {
		s.self = c.Target.TargetID
	}

	chromedp.ListenTarget(browserCtx, func(ev interface{}) {
		if e, ok := ev.(*network.EventRequestWillBeSent); ok {
			s.mu.Lock()
			s.requests = append(s.requests, e.Request.URL)
			s.mu.Unlock()
		}
	})

	chromedp.ListenBrowser(browserCtx, func(ev interface{}) {
		switch e := ev.(type) {
		case *target.EventTargetCreated:
			if e.TargetInfo.Type != "page" || e.TargetInfo.TargetID == s.self {
				return
			}
			w := &chromeWindow{id: e.TargetInfo.TargetID, url: e.TargetInfo.URL}
			s.mu.Lock()
			s.windows[w.id] = w
			s.mu.Unlock()
			select {
			case s.popups <- w:
			default:
				logger.FromCtx(ctx).Warnw("dropping popup window event", "url", e.TargetInfo.URL)
			}
		case *target.EventTargetInfoChanged:
			s.mu.Lock()
			if w, ok := s.windows[e.TargetInfo.TargetID]; ok {
				w.setURL(e.TargetInfo.URL)
			}
			s.mu.Unlock()
		}
	})

	return s, nil
}

type chromeWindow struct {
	id target.ID

	mu  sync.Mutex
	url string
}

func (w *chromeWindow) URL() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.url
}

func (w *chromeWindow) setURL(u string) {
	w.mu.Lock()
	w.url = u
	w.mu.Unlock()
}

type chromeSession struct {
	ctx     context.Context
	cancels []context.CancelFunc
	self    target.ID

	mu       sync.Mutex
	requests []string
	windows  map[target.ID]*chromeWindow

	popups chan *chromeWindow
}

// run executes actions on the session's browser context while honoring the
// caller's deadline. The derived context carries the chromedp target, so
// cancelling it aborts the actions without tearing the browser down.
func (s *chromeSession) run(ctx context.Context, actions ...chromedp.Action) error {
	runCtx := s.ctx
	cancel := func() {}
	if deadline, ok := ctx.Deadline(); ok {
		runCtx, cancel = context.WithDeadline(s.ctx, deadline)
	}
	defer cancel()

	stop := context.AfterFunc(ctx, func() {
		cancel()
	})
	defer stop()

	return chromedp.Run(runCtx, actions...)
}

func (s *chromeSession) Navigate(ctx context.Context, url string) error {
	return s.run(ctx, chromedp.Navigate(url))
}

func (s *chromeSession) CurrentURL() string {
	var u string
	if err := chromedp.Run(s.ctx, chromedp.Location(&u)); err != nil {
		return ""
	}
	return u
}

func (s *chromeSession) Click(ctx context.Context, locator string) error {
	var nodes []*cdp.Node
	if err := s.run(ctx, chromedp.Nodes(locator, &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0))); err != nil {
		return err
	}
	if len(nodes) == 0 {
		return ErrNotFound
	}
	return s.run(ctx, chromedp.MouseClickNode(nodes[0]))
}

func (s *chromeSession) WaitForNewWindow(ctx context.Context, timeout time.Duration) (Window, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case w := <-s.popups:
		return w, nil
	case <-timer.C:
		return nil, ErrNoWindow
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (s *chromeSession) CloseWindow(ctx context.Context, w Window) error {
	cw, ok := w.(*chromeWindow)
	if !ok {
		return fmt.Errorf("window was not opened by this session")
	}

	popupCtx, cancel := chromedp.NewContext(s.ctx, chromedp.WithTargetID(cw.id))
	defer cancel()

	err := chromedp.Run(popupCtx, page.Close())

	s.mu.Lock()
	delete(s.windows, cw.id)
	s.mu.Unlock()
	return err
}

func (s *chromeSession) ReadAttribute(ctx context.Context, locator, attr string) (string, error) {
	// anchors resolve href through the property so relative links come back
	// absolute
	expr := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		if (el === null) return null;
		if (%q in el && typeof el[%q] === "string") return el[%q];
		return el.getAttribute(%q);
	})()`, locator, attr, attr, attr, attr)

	var value *string
	if err := s.run(ctx, chromedp.Evaluate(expr, &value)); err != nil {
		return "", err
	}
	if value == nil {
		return "", ErrNotFound
	}
	return *value, nil
}

func (s *chromeSession) ReadText(ctx context.Context, locator string) (string, error) {
	expr := fmt.Sprintf(`(() => {
		const el = document.querySelector(%q);
		return el === null ? null : el.textContent;
	})()`, locator)

	var value *string
	if err := s.run(ctx, chromedp.Evaluate(expr, &value)); err != nil {
		return "", err
	}
	if value == nil {
		return "", ErrNotFound
	}
	return *value, nil
}

func (s *chromeSession) ReadAttributeAll(ctx context.Context, locator, attr string) ([]string, error) {
	expr := fmt.Sprintf(`Array.from(document.querySelectorAll(%q)).map(el => {
		if (%q in el && typeof el[%q] === "string") return el[%q];
		return el.getAttribute(%q) || "";
	})`, locator, attr, attr, attr, attr)

	var values []string
	if err := s.run(ctx, chromedp.Evaluate(expr, &values)); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *chromeSession) ReadTextAll(ctx context.Context, locator string) ([]string, error) {
	expr := fmt.Sprintf(`Array.from(document.querySelectorAll(%q)).map(el => el.textContent)`, locator)

	var values []string
	if err := s.run(ctx, chromedp.Evaluate(expr, &values)); err != nil {
		return nil, err
	}
	return values, nil
}

func (s *chromeSession) ObservedRequests(pattern string) []string {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var matched []string
	for _, u := range s.requests {
		if re.MatchString(u) {
			matched = append(matched, u)
		}
	}
	return matched
}

func (s *chromeSession) Close(ctx context.Context) error {
	s.teardown()
	return nil
}

func (s *chromeSession) teardown() {
	for _, cancel := range s.cancels {
		cancel()
	}
}
