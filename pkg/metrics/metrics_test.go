package metrics

import (
	"os"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbess/bessd/pkg/log"
	"github.com/openbess/bessd/pkg/manager"
	"github.com/openbess/bessd/pkg/namespace"
	"github.com/openbess/bessd/pkg/port"
)

func TestMain(m *testing.M) {
	log.Init(log.Config{Level: log.ErrorLevel})
	os.Exit(m.Run())
}

func TestCollect(t *testing.T) {
	mgr := manager.New(manager.Config{DefaultCore: 0})
	t.Cleanup(mgr.DestroyAllWorkers)

	p, err := port.Create(mgr.Drivers().Find("Null"), "p0", port.QueueConfig{}, "", &port.NullConfig{})
	require.NoError(t, err)
	require.NoError(t, mgr.Namespace().Insert(namespace.KindPort, "p0", p))
	p.Record(port.DirInc, 7, 420)

	var mu sync.Mutex
	c := NewCollector(mgr, &mu)
	c.Collect()

	assert.Equal(t, float64(0), testutil.ToFloat64(WorkersActive))
	assert.Equal(t, float64(1), testutil.ToFloat64(PortsActive))
	assert.Equal(t, float64(0), testutil.ToFloat64(ModulesActive))
	assert.Equal(t, float64(7), testutil.ToFloat64(PortPackets.WithLabelValues("p0", "inc")))
	assert.Equal(t, float64(420), testutil.ToFloat64(PortBytes.WithLabelValues("p0", "inc")))
}
