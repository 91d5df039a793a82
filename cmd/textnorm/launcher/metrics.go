package launcher

import (
	"github.com/ethereum/go-ethereum/log"
	"github.com/ethereum/go-ethereum/metrics"

	"github.com/rony4d/go-rewrite/normalize"
)

// stats counts what a run did. The counters are forced so they work without
// flipping the global metrics.Enabled switch.
type stats struct {
	registry metrics.Registry

	unchanged metrics.Counter // files whose output equals the input
	rewritten metrics.Counter // files with at least one changing pass
	borrowed  metrics.Counter // outputs that needed no copy (unchanged or only shortened)
	bytesIn   metrics.Counter
	bytesOut  metrics.Counter
}

func newStats() *stats {
	r := metrics.NewRegistry()
	return &stats{
		registry:  r,
		unchanged: metrics.NewRegisteredCounterForced("files/unchanged", r),
		rewritten: metrics.NewRegisteredCounterForced("files/rewritten", r),
		borrowed:  metrics.NewRegisteredCounterForced("files/borrowed", r),
		bytesIn:   metrics.NewRegisteredCounterForced("bytes/in", r),
		bytesOut:  metrics.NewRegisteredCounterForced("bytes/out", r),
	}
}

func (s *stats) record(inLen int, res normalize.Result) {
	if res.Unchanged() {
		s.unchanged.Inc(1)
	} else {
		s.rewritten.Inc(1)
	}
	if res.Borrowed {
		s.borrowed.Inc(1)
	}
	s.bytesIn.Inc(int64(inLen))
	s.bytesOut.Inc(int64(len(res.Output)))
}

// report logs every registered counter.
func (s *stats) report() {
	ctx := []interface{}{}
	s.registry.Each(func(name string, m interface{}) {
		if c, ok := m.(metrics.Counter); ok {
			ctx = append(ctx, name, c.Count())
		}
	})
	log.Info("Rewrite summary", ctx...)
}
