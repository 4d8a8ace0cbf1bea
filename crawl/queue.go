// Package crawl — crawl frontier.
// A FIFO frontier with URL deduplication so no page is visited twice.
package crawl

// Frontier is a deduplicating FIFO of URLs to visit.
type Frontier struct {
	pending []string
	seen    map[string]bool
	all     []string
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{seen: make(map[string]bool)}
}

// Push enqueues a URL unless it has been seen before.
func (f *Frontier) Push(url string) {
	if f.seen[url] {
		return
	}
	f.seen[url] = true
	f.pending = append(f.pending, url)
	f.all = append(f.all, url)
}

// Pop returns the next URL to visit; ok is false when the frontier is
// exhausted.
func (f *Frontier) Pop() (url string, ok bool) {
	if len(f.pending) == 0 {
		return "", false
	}
	url = f.pending[0]
	f.pending = f.pending[1:]
	return url, true
}

// Seen returns the total number of unique URLs encountered.
func (f *Frontier) Seen() int {
	return len(f.seen)
}

// URLs returns every discovered URL in discovery order.
func (f *Frontier) URLs() []string {
	return f.all
}
