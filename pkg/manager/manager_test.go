package manager

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openbess/bessd/pkg/log"
	"github.com/openbess/bessd/pkg/namespace"
)

func TestMain(m *testing.M) {
	log.Init(log.Config{Level: log.ErrorLevel})
	os.Exit(m.Run())
}

func newTestManager(t *testing.T) *Manager {
	t.Helper()
	m := New(Config{DefaultCore: 0})
	t.Cleanup(m.DestroyAllWorkers)
	return m
}

func TestNewRegistersBuiltins(t *testing.T) {
	m := newTestManager(t)

	assert.NotEmpty(t, m.InstanceID())
	assert.NotNil(t, m.MClasses().Find("Source"))
	assert.NotNil(t, m.MClasses().Find("Sink"))
	assert.NotNil(t, m.Drivers().Find("Null"))
	assert.Nil(t, m.FindModule("src"))
	assert.Nil(t, m.FindPort("p0"))
	assert.Nil(t, m.FindTC("bulk"))
}

func TestGenerateName(t *testing.T) {
	m := newTestManager(t)

	assert.Equal(t, "source0", m.GenerateName("Source"))
	require.NoError(t, m.Namespace().Insert(namespace.KindModule, "source0", "x"))
	assert.Equal(t, "source1", m.GenerateName("Source"))
}

func TestLaunchWorkerMaterializesDefaultClass(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.LaunchWorker(0, 0))
	require.True(t, m.Workers().IsActive(0))

	c := m.FindTC("_default_0")
	require.NotNil(t, c)
	assert.True(t, c.Settings.AutoFree)
	assert.Same(t, m.Workers().Get(0).DefaultClass(), c)
	assert.Equal(t, 0, m.WorkerFor(c))
}

func TestDestroyAllWorkersReleasesDefaults(t *testing.T) {
	m := newTestManager(t)

	require.NoError(t, m.LaunchWorker(0, 0))
	require.NoError(t, m.LaunchWorker(1, 0))
	w := m.Workers().Get(0)
	require.Eventually(t, w.Running, time.Second, time.Millisecond)

	m.DestroyAllWorkers()
	assert.Zero(t, m.Workers().NumWorkers())
	assert.Nil(t, m.FindTC("_default_0"))
	assert.Nil(t, m.FindTC("_default_1"))
}

func TestUnderPauseReusesClientPause(t *testing.T) {
	m := newTestManager(t)
	b := m.Workers().Barrier()

	m.UnderPause(func() {
		assert.True(t, b.Paused())
	})
	assert.False(t, b.Paused(), "scope releases its own pause")

	b.Pause()
	m.UnderPause(func() {
		assert.True(t, b.Paused())
	})
	assert.True(t, b.Paused(), "a client-held pause stays held")
	b.Resume()
}
