package dashboard

import (
	"cmp"
	"slices"
	"sync"

	"github.com/r-heap47/scaling-agent/internal/metric"
	"github.com/samber/lo"
)

type urlStat struct {
	average float64
	hits    int
}

// urlAggregate keeps a running average per URL for the process lifetime
type urlAggregate struct {
	mu    sync.Mutex
	stats map[string]urlStat
}

func newURLAggregate() *urlAggregate {
	return &urlAggregate{stats: make(map[string]urlStat)}
}

func (u *urlAggregate) record(s metric.HTTP) {
	u.mu.Lock()
	defer u.mu.Unlock()

	st, ok := u.stats[s.URL]
	if !ok {
		u.stats[s.URL] = urlStat{average: s.Duration, hits: 1}
		return
	}

	hits := float64(st.hits)
	u.stats[s.URL] = urlStat{
		average: (st.average*hits + s.Duration) / (hits + 1),
		hits:    st.hits + 1,
	}
}

// snapshot returns URL averages sorted by URL
func (u *urlAggregate) snapshot() []URLLine {
	u.mu.Lock()
	lines := lo.MapToSlice(u.stats, func(url string, st urlStat) URLLine {
		return URLLine{URL: url, AverageResponseTime: st.average}
	})
	u.mu.Unlock()

	slices.SortFunc(lines, func(a, b URLLine) int {
		return cmp.Compare(a.URL, b.URL)
	})

	return lines
}
