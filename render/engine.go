package render

import (
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/engrave/logger"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/score"
)

// Engine re-renders the score a short while after it stops changing and
// hands the result to OnRender.
type Engine struct {
	store    *score.Store
	opts     Options
	workers  int
	OnRender func([]*model.Render, error)

	mu          sync.Mutex
	latest      []*model.Render
	debounced   func(func())
	unsubscribe func()
}

func NewEngine(s *score.Store, opts Options, workers int, wait time.Duration) *Engine {
	return &Engine{
		store:     s,
		opts:      opts,
		workers:   workers,
		debounced: debounce.New(wait),
	}
}

// Start subscribes to the store. Every burst of mutations leads to one
// render.
func (e *Engine) Start() {
	e.unsubscribe = e.store.Subscribe(func() {
		e.debounced(e.Render)
	})
}

func (e *Engine) Stop() {
	if e.unsubscribe != nil {
		e.unsubscribe()
		e.unsubscribe = nil
	}
}

// Render renders every flow now.
func (e *Engine) Render() {
	renders, err := All(e.store, e.opts, e.workers)
	if err != nil {
		logger.Warn("render incomplete", logger.Fields{"error": err.Error()})
	}
	e.mu.Lock()
	e.latest = renders
	e.mu.Unlock()
	if e.OnRender != nil {
		e.OnRender(renders, err)
	}
}

// Latest is the last result of Render.
func (e *Engine) Latest() []*model.Render {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.latest
}
