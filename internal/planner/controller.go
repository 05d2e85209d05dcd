package planner

import (
	"context"
	"errors"
	"sync"

	"github.com/pageza/nutriplan/backend/internal/options"
	"github.com/pageza/nutriplan/backend/internal/plantext"
	"github.com/pageza/nutriplan/backend/internal/service"
	"github.com/pageza/nutriplan/backend/internal/types"
)

var (
	// ErrNotReady is returned by exports while a plan is streaming or before one exists.
	ErrNotReady = errors.New("plan is not ready")
	// ErrClosed is returned by Submit after Close.
	ErrClosed = errors.New("controller is closed")
)

// Generator starts a generation for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (<-chan Chunk, error)
}

// NoticeKind classifies a notice shown next to the plan.
type NoticeKind int

const (
	NoticeNone NoticeKind = iota
	NoticeInfo
	NoticeError
)

// Notice is a short message for the user about the last submission.
type Notice struct {
	Kind    NoticeKind
	Message string
	Err     error
}

// Snapshot is what subscribers see after every change.
type Snapshot struct {
	Generation uint64
	Text       string
	Loading    bool
	Notice     Notice
}

type envelope struct {
	seq  uint64
	snap Snapshot
}

// Controller owns the plan form and the stream it submits. Snapshots are
// delivered in the order they were taken; a snapshot older than one already
// delivered is dropped. Subscribers are called synchronously and must not
// call back into the Controller.
type Controller struct {
	gen Generator

	mu       sync.Mutex
	profile  types.UserProfile
	language string
	vibe     string
	state    StreamState
	notice   Notice
	cancel   context.CancelFunc
	done     chan struct{}
	seq      uint64
	subs     map[int]func(Snapshot)
	nextSub  int
	closed   bool
	streams  sync.WaitGroup

	pubMu     sync.Mutex
	published uint64
}

// NewController returns a controller with the default form values.
func NewController(gen Generator) *Controller {
	return &Controller{
		gen:      gen,
		profile:  types.DefaultProfile(),
		language: options.DefaultLanguage,
		vibe:     options.DefaultVibe,
		subs:     make(map[int]func(Snapshot)),
	}
}

// Subscribe registers fn for every future snapshot and returns a function that removes it.
func (c *Controller) Subscribe(fn func(Snapshot)) func() {
	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.nextSub
	c.nextSub++
	c.subs[id] = fn
	return func() {
		c.mu.Lock()
		delete(c.subs, id)
		c.mu.Unlock()
	}
}

// Profile returns a copy of the current form values.
func (c *Controller) Profile() types.UserProfile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.profile.Clone()
}

// Language returns the selected output language, "" when cleared.
func (c *Controller) Language() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.language
}

// Vibe returns the selected goal, "" when cleared.
func (c *Controller) Vibe() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.vibe
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked().snap
}

func (c *Controller) SetProfile(p types.UserProfile) {
	c.mu.Lock()
	c.profile = p.Clone()
	c.mu.Unlock()
}

// UpdateProfile applies fn to the form values under the controller's lock.
func (c *Controller) UpdateProfile(fn func(*types.UserProfile)) {
	c.mu.Lock()
	fn(&c.profile)
	c.mu.Unlock()
}

// SelectLanguage picks a language; picking the selected one clears it.
func (c *Controller) SelectLanguage(value string) {
	c.mu.Lock()
	c.language = options.Toggle(c.language, value)
	c.mu.Unlock()
}

// SelectVibe picks a goal; picking the selected one clears it.
func (c *Controller) SelectVibe(value string) {
	c.mu.Lock()
	c.vibe = options.Toggle(c.vibe, value)
	c.mu.Unlock()
}

// Submit builds the prompt from the form and starts streaming a new plan.
// Any stream still running is cancelled first and can no longer change the state.
func (c *Controller) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	c.stopLocked()

	prompt := service.BuildPrompt(c.profile, c.language, c.vibe)
	gen := c.state.begin()
	c.notice = Notice{}

	streamCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	c.cancel = cancel
	c.done = done
	c.streams.Add(1)
	env := c.snapshotLocked()
	c.mu.Unlock()

	c.publish(env)
	go c.run(streamCtx, cancel, gen, prompt, done)
	return nil
}

// Wait blocks until the latest submission finishes or ctx is done.
func (c *Controller) Wait(ctx context.Context) error {
	c.mu.Lock()
	done := c.done
	c.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Cancel stops the running stream and keeps what arrived so far.
func (c *Controller) Cancel() {
	c.mu.Lock()
	if !c.state.Active {
		c.mu.Unlock()
		return
	}
	c.stopLocked()
	c.state.Active = false
	env := c.snapshotLocked()
	c.mu.Unlock()
	c.publish(env)
}

// Reset cancels any stream, clears the plan and restores the default form values.
func (c *Controller) Reset() {
	c.mu.Lock()
	c.stopLocked()
	c.profile = types.DefaultProfile()
	c.language = options.DefaultLanguage
	c.vibe = options.DefaultVibe
	c.state.AccumulatedText = ""
	c.state.Active = false
	c.notice = Notice{}
	env := c.snapshotLocked()
	c.mu.Unlock()
	c.publish(env)
}

// Close cancels any stream, drops all subscribers and waits for stream goroutines to exit.
func (c *Controller) Close() {
	c.mu.Lock()
	c.stopLocked()
	c.state.Active = false
	c.closed = true
	c.subs = make(map[int]func(Snapshot))
	c.mu.Unlock()
	c.streams.Wait()
}

// Markdown returns the finished plan with headings and list items in markdown form.
func (c *Controller) Markdown() (string, error) {
	text, err := c.finishedText()
	if err != nil {
		return "", err
	}
	return plantext.ToMarkdownish(text), nil
}

// PlainText returns the finished plan with every tag removed.
func (c *Controller) PlainText() (string, error) {
	text, err := c.finishedText()
	if err != nil {
		return "", err
	}
	return plantext.ToPlainText(text), nil
}

func (c *Controller) finishedText() (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state.Active || c.state.AccumulatedText == "" {
		return "", ErrNotReady
	}
	return c.state.AccumulatedText, nil
}

func (c *Controller) run(ctx context.Context, cancel context.CancelFunc, gen uint64, prompt string, done chan struct{}) {
	defer c.streams.Done()
	defer close(done)
	defer cancel()

	chunks, err := c.gen.Generate(ctx, prompt)
	if err != nil {
		c.fail(gen, err)
		return
	}

	text, err := Consume(ctx, chunks, func(acc string) {
		c.apply(gen, func() { c.state.AccumulatedText = acc })
	})
	if err != nil {
		c.fail(gen, err)
		return
	}

	c.apply(gen, func() {
		c.state.AccumulatedText = text
		c.state.Active = false
		c.notice = Notice{Kind: NoticeInfo, Message: "Plan ready"}
	})
}

func (c *Controller) fail(gen uint64, err error) {
	c.apply(gen, func() {
		c.state.AccumulatedText = ""
		c.state.Active = false
		c.notice = Notice{Kind: NoticeError, Message: err.Error(), Err: err}
	})
}

// apply runs mutate and publishes the result only if gen still owns the state.
func (c *Controller) apply(gen uint64, mutate func()) {
	c.mu.Lock()
	if !c.state.owns(gen) {
		c.mu.Unlock()
		return
	}
	mutate()
	env := c.snapshotLocked()
	c.mu.Unlock()
	c.publish(env)
}

func (c *Controller) stopLocked() {
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
}

func (c *Controller) snapshotLocked() envelope {
	c.seq++
	return envelope{
		seq: c.seq,
		snap: Snapshot{
			Generation: c.state.Generation,
			Text:       c.state.AccumulatedText,
			Loading:    c.state.Active,
			Notice:     c.notice,
		},
	}
}

func (c *Controller) publish(env envelope) {
	c.pubMu.Lock()
	defer c.pubMu.Unlock()
	if env.seq <= c.published {
		return
	}
	c.published = env.seq

	c.mu.Lock()
	subs := make([]func(Snapshot), 0, len(c.subs))
	for _, fn := range c.subs {
		subs = append(subs, fn)
	}
	c.mu.Unlock()

	for _, fn := range subs {
		fn(env.snap)
	}
}
