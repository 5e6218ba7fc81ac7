package analyze

import "sort"

// counter tallies string keys while remembering first-encounter order so
// that descending sorts break ties deterministically
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(k string) {
	if _, ok := c.counts[k]; !ok {
		c.order = append(c.order, k)
	}
	c.counts[k]++
}

// pair is one (key, count) row
type pair struct {
	key   string
	count int
}

// sortedDesc returns all pairs by descending count, ties by first encounter
func (c *counter) sortedDesc() []pair {
	out := make([]pair, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, pair{key: k, count: c.counts[k]})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].count > out[j].count })
	return out
}

func (c *counter) total() int {
	n := 0
	for _, v := range c.counts {
		n += v
	}
	return n
}
