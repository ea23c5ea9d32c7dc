package sim

import (
	"sync"

	"github.com/rokroskar/galpy/internal/orbit"
)

// Ensemble integrates many orbits concurrently, one goroutine per
// request. Each request builds its own force terms, so no state is
// shared between orbits. The driver must carry no extra metrics or
// observer; those are shared across its calls.
type Ensemble struct {
	driver *Driver
}

func NewEnsemble(d *Driver) *Ensemble {
	return &Ensemble{driver: d}
}

// Run integrates every request and returns one result per request, in
// order. The first error encountered is returned; results for other
// orbits may still be populated.
func (e *Ensemble) Run(reqs []Request) ([]*orbit.Result, error) {
	results := make([]*orbit.Result, len(reqs))
	errs := make([]error, len(reqs))

	var wg sync.WaitGroup
	for i := range reqs {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx], errs[idx] = e.driver.Integrate(reqs[idx])
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return results, err
		}
	}
	return results, nil
}
