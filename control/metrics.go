// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Prometheus collector over named ring buffers.
// Values are read at scrape time; the ring hot path is untouched.

package control

import (
	"sort"
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/momentics/hioload-ring/api"
)

// Collector exposes len, capacity and drop counts for registered rings.
// Scraping reads ring state from another goroutine, which is race-free only
// for thread-safe rings.
type Collector struct {
	mu    sync.RWMutex
	rings map[string]api.Inspector

	length   *prometheus.Desc
	capacity *prometheus.Desc
	usable   *prometheus.Desc
	dropped  *prometheus.Desc
}

var _ prometheus.Collector = (*Collector)(nil)

// NewCollector creates an empty collector with metric names under namespace.
func NewCollector(namespace string) *Collector {
	labels := []string{"ring"}
	return &Collector{
		rings: make(map[string]api.Inspector),
		length: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "ring", "len"),
			"Current number of items in the ring buffer", labels, nil),
		capacity: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "ring", "capacity"),
			"Storage slots of the ring buffer, sentinel included", labels, nil),
		usable: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "ring", "usable"),
			"Maximum number of items the ring buffer can hold", labels, nil),
		dropped: prometheus.NewDesc(
			prometheus.BuildFQName(namespace, "ring", "dropped_total"),
			"Items discarded by overwriting pushes", labels, nil),
	}
}

// Register starts reporting r under name, replacing any ring with that name.
func (c *Collector) Register(name string, r api.Inspector) {
	c.mu.Lock()
	c.rings[name] = r
	c.mu.Unlock()
}

// Unregister stops reporting name. Returns false if it was unknown.
func (c *Collector) Unregister(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.rings[name]; !ok {
		return false
	}
	delete(c.rings, name)
	return true
}

// Names returns registered ring names in sorted order.
func (c *Collector) Names() []string {
	c.mu.RLock()
	out := make([]string, 0, len(c.rings))
	for k := range c.rings {
		out = append(out, k)
	}
	c.mu.RUnlock()
	sort.Strings(out)
	return out
}

// Describe implements prometheus.Collector.
func (c *Collector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.length
	ch <- c.capacity
	ch <- c.usable
	ch <- c.dropped
}

// Collect implements prometheus.Collector.
func (c *Collector) Collect(ch chan<- prometheus.Metric) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for name, r := range c.rings {
		capacity := r.Cap()
		ch <- prometheus.MustNewConstMetric(c.length, prometheus.GaugeValue, float64(r.Len()), name)
		ch <- prometheus.MustNewConstMetric(c.capacity, prometheus.GaugeValue, float64(capacity), name)
		ch <- prometheus.MustNewConstMetric(c.usable, prometheus.GaugeValue, float64(capacity-1), name)
		ch <- prometheus.MustNewConstMetric(c.dropped, prometheus.CounterValue, float64(r.Dropped()), name)
	}
}
