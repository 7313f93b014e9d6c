package render

import (
	"sync"

	"github.com/jsphweid/engrave/logger"
	"github.com/jsphweid/engrave/model"
	"github.com/jsphweid/engrave/score"
	"github.com/remeh/sizedwaitgroup"
)

// All renders every flow in score order, at most workers at a time. The
// first error is returned alongside whatever did render.
func All(s *score.Store, opts Options, workers int) ([]*model.Render, error) {
	if workers < 1 {
		workers = 1
	}
	s.RLock()
	keys := append([]string(nil), s.FlowOrder...)
	s.RUnlock()

	res := make([]*model.Render, len(keys))
	var mu sync.Mutex
	var first error

	wg := sizedwaitgroup.New(workers)
	for i, key := range keys {
		wg.Add()
		go func(i int, key string) {
			defer wg.Done()
			r, err := Flow(s, key, opts)
			if err != nil {
				logger.Error("could not render flow", err, logger.Fields{"flow": key})
				mu.Lock()
				if first == nil {
					first = err
				}
				mu.Unlock()
				return
			}
			res[i] = r
		}(i, key)
	}
	wg.Wait()

	if first != nil {
		kept := res[:0]
		for _, r := range res {
			if r != nil {
				kept = append(kept, r)
			}
		}
		return kept, first
	}
	return res, nil
}
