package timing

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type recorder struct {
	mu   sync.Mutex
	args []string
}

func (r *recorder) record(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.args = append(r.args, s)
}

func (r *recorder) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.args...)
}

func TestDebounce_DeliversLastCall(t *testing.T) {
	rec := &recorder{}
	d := Debounce(rec.record, 20*time.Millisecond)

	d.Call("s")
	d.Call("sh")
	d.Call("sho")

	require.Eventually(t, func() bool { return len(rec.calls()) == 1 }, time.Second, time.Millisecond)
	time.Sleep(40 * time.Millisecond)
	assert.Equal(t, []string{"sho"}, rec.calls())
}

func TestDebounce_SeparateBursts(t *testing.T) {
	rec := &recorder{}
	d := Debounce(rec.record, 10*time.Millisecond)

	d.Call("a")
	require.Eventually(t, func() bool { return len(rec.calls()) == 1 }, time.Second, time.Millisecond)
	d.Call("b")
	require.Eventually(t, func() bool { return len(rec.calls()) == 2 }, time.Second, time.Millisecond)

	assert.Equal(t, []string{"a", "b"}, rec.calls())
}

func TestDebounce_Stop(t *testing.T) {
	rec := &recorder{}
	d := Debounce(rec.record, 10*time.Millisecond)

	d.Call("a")
	d.Stop()
	d.Call("b")

	time.Sleep(40 * time.Millisecond)
	assert.Empty(t, rec.calls())
}

func TestThrottle_DropsCallsInWindow(t *testing.T) {
	rec := &recorder{}
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	th := Throttle(rec.record, 100*time.Millisecond)
	th.now = func() time.Time { return now }

	assert.True(t, th.Call("1"))
	assert.False(t, th.Call("2"))

	now = now.Add(99 * time.Millisecond)
	assert.False(t, th.Call("3"))

	now = now.Add(time.Millisecond)
	assert.True(t, th.Call("4"))

	assert.Equal(t, []string{"1", "4"}, rec.calls())
}
