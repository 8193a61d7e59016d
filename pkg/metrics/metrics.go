package metrics

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/openbess/bessd/pkg/namespace"
	"github.com/openbess/bessd/pkg/port"
	"github.com/openbess/bessd/pkg/sched"
	"github.com/openbess/bessd/pkg/worker"
)

var (
	WorkersActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bessd_workers_active",
		Help: "Number of occupied worker slots",
	})

	WorkerSilentDrops = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bessd_worker_silent_drops_total",
		Help: "Packets dropped without accounting, per worker",
	}, []string{"wid"})

	ModulesActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bessd_modules_active",
		Help: "Number of modules in the dataflow graph",
	})

	PortsActive = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "bessd_ports_active",
		Help: "Number of ports",
	})

	PortPackets = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bessd_port_packets_total",
		Help: "Packets seen on a port, per direction",
	}, []string{"port", "dir"})

	PortDropped = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bessd_port_dropped_total",
		Help: "Packets dropped on a port, per direction",
	}, []string{"port", "dir"})

	PortBytes = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bessd_port_bytes_total",
		Help: "Bytes seen on a port, per direction",
	}, []string{"port", "dir"})

	TcUsage = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Name: "bessd_tc_usage_total",
		Help: "Accumulated traffic class usage, per resource",
	}, []string{"tc", "resource"})
)

func init() {
	prometheus.MustRegister(
		WorkersActive,
		WorkerSilentDrops,
		ModulesActive,
		PortsActive,
		PortPackets,
		PortDropped,
		PortBytes,
		TcUsage,
	)
}

// Handler returns the HTTP handler exposing the metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}

// Source is the view of control-plane state the collector reads. The manager
// implements it.
type Source interface {
	Namespace() *namespace.Registry
	Workers() *worker.Set
}

// Collector periodically snapshots worker, port, and TC counters into the
// Prometheus gauges. It shares the control service's serialization lock so
// snapshots never race a mutating RPC.
type Collector struct {
	src    Source
	mu     sync.Locker
	stopCh chan struct{}
}

func NewCollector(src Source, mu sync.Locker) *Collector {
	return &Collector{
		src:    src,
		mu:     mu,
		stopCh: make(chan struct{}),
	}
}

// Start begins collecting every 15 seconds.
func (c *Collector) Start() {
	ticker := time.NewTicker(15 * time.Second)
	go func() {
		c.Collect()

		for {
			select {
			case <-ticker.C:
				c.Collect()
			case <-c.stopCh:
				ticker.Stop()
				return
			}
		}
	}()
}

// Stop stops the collector.
func (c *Collector) Stop() {
	close(c.stopCh)
}

// Collect takes one snapshot.
func (c *Collector) Collect() {
	c.mu.Lock()
	defer c.mu.Unlock()

	ws := c.src.Workers()
	WorkersActive.Set(float64(ws.NumWorkers()))
	WorkerSilentDrops.Reset()
	for wid := 0; wid < worker.MaxWorkers; wid++ {
		if w := ws.Get(wid); w != nil {
			WorkerSilentDrops.WithLabelValues(strconv.Itoa(wid)).Set(float64(w.SilentDrops()))
		}
	}

	ns := c.src.Namespace()
	ModulesActive.Set(float64(ns.Count(namespace.KindModule)))
	PortsActive.Set(float64(ns.Count(namespace.KindPort)))

	PortPackets.Reset()
	PortDropped.Reset()
	PortBytes.Reset()
	for _, obj := range ns.List(namespace.KindPort, 0, ns.Count(namespace.KindPort)) {
		p := obj.(*port.Port)
		for dir, label := range map[int]string{port.DirInc: "inc", port.DirOut: "out"} {
			stats := p.Stats(dir)
			PortPackets.WithLabelValues(p.Name(), label).Set(float64(stats.Packets))
			PortDropped.WithLabelValues(p.Name(), label).Set(float64(stats.Dropped))
			PortBytes.WithLabelValues(p.Name(), label).Set(float64(stats.Bytes))
		}
	}

	TcUsage.Reset()
	it := ns.NewIter(namespace.KindTC)
	for {
		obj := it.Next()
		if obj == nil {
			break
		}
		tc := obj.(*sched.Class)
		usage := tc.Usage()
		for res := 0; res < sched.NumResources; res++ {
			TcUsage.WithLabelValues(tc.Settings.Name, sched.Resource(res).String()).
				Set(float64(usage[res]))
		}
	}
	it.Release()
}
