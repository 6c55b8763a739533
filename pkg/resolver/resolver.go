// Package resolver drives a render session through the source site's
// download flow until a direct media URL is found. The flow crosses ad
// interstitials, timed gates, and two variants of the final page, so the
// walk is modeled as an explicit state machine with a typed failure for
// every way it can go wrong.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"

	"github.com/aldesouky/seedarr/pkg/logger"
	"github.com/aldesouky/seedarr/pkg/machine"
	"github.com/aldesouky/seedarr/pkg/render"
	"github.com/aldesouky/seedarr/pkg/retry"
)

// State is a stop on the walk from a content page to a direct media URL.
type State string

const (
	StateStart           State = "start"
	StateQualitySelected State = "quality_selected"
	StateServerSelected  State = "server_selected"
	StateGate1           State = "gate1_pending"
	StateGate2           State = "gate2_pending"
	StateShortCircuit    State = "short_circuit"
	StateLinkExtracted   State = "link_extracted"
	StateDone            State = "done"
)

const (
	downloadAnchorLocator = `a.download__btn, a[href*="/download/"]`
	qualityLocator        = `[data-quality="%s"]`
	serverLocator         = `a.arabseed`
	gateButtonLocator     = `button#start`
	finalButtonLocator    = `a#btn.downloadbtn, a.downloadbtn`
	anchorLocator         = `a`

	// shortCircuitMarker on the current URL means the site skipped the
	// second gate and the direct link appears on this page.
	shortCircuitMarker = "asd7b=1"

	mediaRequestPattern = `\.(mp4|mkv)`

	DefaultQuality     = "1080"
	DefaultConcurrency = 2
	DefaultMaxAttempts = 3

	defaultGateCeiling   = 30 * time.Second
	defaultPollInterval  = 2 * time.Second
	defaultWindowWait    = 2 * time.Second
	defaultAttemptBudget = 3 * time.Minute
)

// DefaultAdDomains are the interstitial hosts the source site is known to
// open in new windows.
var DefaultAdDomains = []string{
	"obqj2.com",
	"68s8.com",
	"cm65.com",
	"abstractdemonicsilence.com",
}

// Request identifies a content page and the desired quality.
type Request struct {
	SourceURL string
	Quality   string
}

// Result is a successfully resolved direct media URL.
type Result struct {
	URL string
	// Quality is the quality that was actually selected.
	Quality string
	// Headers are hints the download manager should send when fetching the
	// URL, currently the referer of the page the link was extracted from.
	Headers map[string]string
	// Attempts is how many end-to-end attempts the resolution consumed.
	Attempts int
}

// Resolver resolves content page URLs into direct media URLs. Render
// sessions are expensive, so attempts run through a bounded pool.
type Resolver struct {
	factory  render.Factory
	sessions *semaphore.Weighted

	maxAttempts   int
	adDomains     map[string]struct{}
	gateCeiling   time.Duration
	pollInterval  time.Duration
	windowWait    time.Duration
	attemptBudget time.Duration
	backoff       time.Duration
}

type Option func(*Resolver)

// WithConcurrency bounds how many resolution attempts may hold a render
// session at once.
func WithConcurrency(n int64) Option {
	return func(r *Resolver) {
		r.sessions = semaphore.NewWeighted(n)
	}
}

// WithMaxAttempts bounds how many times a resolution is tried end to end.
func WithMaxAttempts(n int) Option {
	return func(r *Resolver) {
		r.maxAttempts = n
	}
}

// WithAdDomains replaces the ad-domain blockset.
func WithAdDomains(domains []string) Option {
	return func(r *Resolver) {
		r.adDomains = make(map[string]struct{}, len(domains))
		for _, d := range domains {
			r.adDomains[strings.ToLower(d)] = struct{}{}
		}
	}
}

// WithGateCeiling bounds how long a gate is polled before timing out.
func WithGateCeiling(d time.Duration) Option {
	return func(r *Resolver) {
		r.gateCeiling = d
	}
}

// WithPollInterval sets the delay between gate polls.
func WithPollInterval(d time.Duration) Option {
	return func(r *Resolver) {
		r.pollInterval = d
	}
}

// WithWindowWait bounds how long a click waits for a new window before
// concluding none opened.
func WithWindowWait(d time.Duration) Option {
	return func(r *Resolver) {
		r.windowWait = d
	}
}

// WithAttemptBudget caps the wall clock of a single attempt.
func WithAttemptBudget(d time.Duration) Option {
	return func(r *Resolver) {
		r.attemptBudget = d
	}
}

// WithBackoff sets the initial delay between attempts.
func WithBackoff(d time.Duration) Option {
	return func(r *Resolver) {
		r.backoff = d
	}
}

func New(factory render.Factory, opts ...Option) *Resolver {
	r := &Resolver{
		factory:       factory,
		sessions:      semaphore.NewWeighted(DefaultConcurrency),
		maxAttempts:   DefaultMaxAttempts,
		gateCeiling:   defaultGateCeiling,
		pollInterval:  defaultPollInterval,
		windowWait:    defaultWindowWait,
		attemptBudget: defaultAttemptBudget,
		backoff:       500 * time.Millisecond,
	}
	WithAdDomains(DefaultAdDomains)(r)

	for _, opt := range opts {
		opt(r)
	}

	return r
}

func newMachine() *machine.StateMachine[State] {
	return machine.New(StateStart,
		machine.From(StateStart).To(StateQualitySelected),
		machine.From(StateQualitySelected).To(StateServerSelected),
		machine.From(StateServerSelected).To(StateGate1),
		machine.From(StateGate1).To(StateGate2, StateShortCircuit),
		machine.From(StateGate2).To(StateLinkExtracted),
		machine.From(StateShortCircuit).To(StateLinkExtracted),
		machine.From(StateLinkExtracted).To(StateDone),
	)
}

// Resolve walks the download flow for the requested page and returns the
// direct media URL. Gate timeouts and network errors are retried with
// backoff up to the attempt bound; structural failures abort immediately.
func (r *Resolver) Resolve(ctx context.Context, req Request) (*Result, error) {
	if req.Quality == "" {
		req.Quality = DefaultQuality
	}

	if err := r.sessions.Acquire(ctx, 1); err != nil {
		return nil, &Error{Class: ClassAborted, State: StateStart, Err: err}
	}
	defer r.sessions.Release(1)

	policy := retry.Policy{
		MaxAttempts: uint64(r.maxAttempts),
		Initial:     r.backoff,
		Max:         10 * time.Second,
		Transient:   Transient,
	}

	var result *Result
	attempts := 0
	err := policy.Do(ctx, func(ctx context.Context) error {
		attempts++
		res, err := r.attempt(ctx, req)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, r.terminal(err, attempts)
	}

	result.Attempts = attempts
	return result, nil
}

// terminal stamps the attempt count onto the failure that ended the
// resolution. Plain errors that survived every retry are reported as
// aborted.
func (r *Resolver) terminal(err error, attempts int) error {
	var resErr *Error
	if errors.As(err, &resErr) {
		resErr.Attempts = attempts
		return resErr
	}

	return &Error{Class: ClassAborted, State: StateStart, Attempts: attempts, Err: err}
}

func (r *Resolver) attempt(ctx context.Context, req Request) (*Result, error) {
	ctx, cancel := context.WithTimeout(ctx, r.attemptBudget)
	defer cancel()

	log := logger.FromCtx(ctx).With("attempt_id", uuid.NewString(), "source_url", req.SourceURL)

	session, err := r.factory.NewSession(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open render session: %w", err)
	}
	defer session.Close(context.WithoutCancel(ctx))

	m := newMachine()

	log.Debug("navigating to content page")
	if err := session.Navigate(ctx, req.SourceURL); err != nil {
		return nil, fmt.Errorf("failed to load content page: %w", err)
	}

	downloadPage, err := session.ReadAttribute(ctx, downloadAnchorLocator, "href")
	if err != nil {
		if errors.Is(err, render.ErrNotFound) {
			return nil, &Error{Class: ClassLayoutDrift, State: m.Current(), Err: errors.New("download anchor missing")}
		}
		return nil, fmt.Errorf("failed to read download anchor: %w", err)
	}

	log.Debugw("navigating to download page", "url", downloadPage)
	if err := session.Navigate(ctx, downloadPage); err != nil {
		return nil, fmt.Errorf("failed to load download page: %w", err)
	}

	if err := r.clickThroughAds(ctx, session, fmt.Sprintf(qualityLocator, req.Quality)); err != nil {
		if errors.Is(err, render.ErrNotFound) {
			return nil, &Error{Class: ClassQualityUnavailable, State: m.Current(), Err: fmt.Errorf("quality %s not offered", req.Quality)}
		}
		return nil, r.classify(err, m.Current())
	}
	if err := m.Transition(StateQualitySelected); err != nil {
		return nil, err
	}

	if err := r.clickThroughAds(ctx, session, serverLocator); err != nil {
		if errors.Is(err, render.ErrNotFound) {
			return nil, &Error{Class: ClassServerUnavailable, State: m.Current(), Err: errors.New("direct server entry missing")}
		}
		return nil, r.classify(err, m.Current())
	}
	if err := m.Transition(StateServerSelected); err != nil {
		return nil, err
	}

	// first gate: the start control appears once the countdown elapses
	log.Debug("waiting out the first gate")
	if err := r.awaitControl(ctx, session, gateButtonLocator); err != nil {
		return nil, r.classify(err, m.Current())
	}
	if err := r.clickThroughAds(ctx, session, gateButtonLocator); err != nil {
		return nil, r.classify(err, m.Current())
	}
	if err := m.Transition(StateGate1); err != nil {
		return nil, err
	}

	variant := StateGate2
	if strings.Contains(session.CurrentURL(), shortCircuitMarker) {
		variant = StateShortCircuit
		log.Debug("short-circuit page detected, skipping the second gate")
	}
	if err := m.Transition(variant); err != nil {
		return nil, err
	}

	directURL, err := r.awaitDirectLink(ctx, session)
	if err != nil {
		return nil, r.classify(err, m.Current())
	}
	if err := m.Transition(StateLinkExtracted); err != nil {
		return nil, err
	}

	referer := session.CurrentURL()
	if err := m.Transition(StateDone); err != nil {
		return nil, err
	}

	log.Infow("resolved direct media url", "url", directURL)
	return &Result{
		URL:     directURL,
		Quality: req.Quality,
		Headers: map[string]string{"Referer": referer},
	}, nil
}

var (
	errGateTimeout    = errors.New("gate ceiling elapsed")
	errAdInterception = errors.New("ad window reopened after retry")
)

// classify wraps sentinel step failures with the state they occurred in.
func (r *Resolver) classify(err error, state State) error {
	switch {
	case errors.Is(err, errGateTimeout):
		return &Error{Class: ClassTimedOut, State: state, Err: err}
	case errors.Is(err, errAdInterception):
		return &Error{Class: ClassAdInterception, State: state, Err: err}
	case errors.Is(err, errNoDirectLink):
		return &Error{Class: ClassExtractionFailed, State: state, Err: err}
	default:
		return err
	}
}

// clickThroughAds clicks a control and watches for a new window. A window
// landing on a blocklisted host is closed and the click is retried exactly
// once; a second interception fails the step.
func (r *Resolver) clickThroughAds(ctx context.Context, session render.Session, locator string) error {
	for try := 0; try < 2; try++ {
		if err := session.Click(ctx, locator); err != nil {
			return err
		}

		w, err := session.WaitForNewWindow(ctx, r.windowWait)
		if err != nil {
			if errors.Is(err, render.ErrNoWindow) {
				return nil
			}
			return err
		}

		if !r.isAdWindow(w) {
			return nil
		}

		if err := session.CloseWindow(ctx, w); err != nil {
			return fmt.Errorf("failed to close ad window: %w", err)
		}
	}

	return errAdInterception
}

func (r *Resolver) isAdWindow(w render.Window) bool {
	u, err := url.Parse(w.URL())
	if err != nil {
		return false
	}

	host := strings.ToLower(u.Hostname())
	for domain := range r.adDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

// awaitControl polls until the locator matches something, instead of
// sleeping the gate's advertised duration.
func (r *Resolver) awaitControl(ctx context.Context, session render.Session, locator string) error {
	deadline := time.Now().Add(r.gateCeiling)
	for {
		_, err := session.ReadText(ctx, locator)
		if err == nil {
			return nil
		}
		if !errors.Is(err, render.ErrNotFound) {
			return err
		}

		if time.Now().After(deadline) {
			return fmt.Errorf("%w: %s never appeared", errGateTimeout, locator)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(r.pollInterval):
		}
	}
}

var errNoDirectLink = errors.New("no direct media link found")

// awaitDirectLink polls the page for a direct media anchor. An intermediate
// short-circuit link is followed once and polling continues on the new page.
// When the ceiling elapses the most recently observed media request is used
// as a last resort.
func (r *Resolver) awaitDirectLink(ctx context.Context, session render.Session) (string, error) {
	followed := false
	deadline := time.Now().Add(r.gateCeiling)
	for {
		direct, candidate, err := r.extractLink(ctx, session)
		if err != nil {
			return "", err
		}
		if direct != "" {
			return direct, nil
		}

		if candidate != "" && !followed && strings.Contains(candidate, shortCircuitMarker) {
			followed = true
			if err := session.Navigate(ctx, candidate); err != nil {
				return "", err
			}
			deadline = time.Now().Add(r.gateCeiling)
			continue
		}

		if time.Now().After(deadline) {
			if observed := session.ObservedRequests(mediaRequestPattern); len(observed) > 0 {
				return observed[len(observed)-1], nil
			}
			return "", errNoDirectLink
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(r.pollInterval):
		}
	}
}

// extractLink reads the page for a media URL. direct is set when an anchor
// points straight at a media file; candidate is the fallback download
// button's target, which may be an intermediate page.
func (r *Resolver) extractLink(ctx context.Context, session render.Session) (direct, candidate string, err error) {
	hrefs, err := session.ReadAttributeAll(ctx, anchorLocator, "href")
	if err != nil && !errors.Is(err, render.ErrNotFound) {
		return "", "", err
	}
	for _, href := range hrefs {
		if isMediaURL(href) {
			return href, "", nil
		}
	}

	candidate, err = session.ReadAttribute(ctx, finalButtonLocator, "href")
	if err != nil {
		if errors.Is(err, render.ErrNotFound) {
			return "", "", nil
		}
		return "", "", err
	}
	if isMediaURL(candidate) {
		return candidate, "", nil
	}

	return "", candidate, nil
}

func isMediaURL(u string) bool {
	return strings.Contains(u, ".mp4") || strings.Contains(u, ".mkv")
}
