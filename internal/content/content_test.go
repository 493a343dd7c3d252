package content

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jpl-au/codefind/internal/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubFetcher serves bodies from a map, fails names in broken with a
// transport error and reports everything else as 404.
type stubFetcher struct {
	bodies map[string]string
	broken map[string]bool
	delay  map[string]time.Duration
	calls  atomic.Int32
}

func (s *stubFetcher) Fetch(_ context.Context, name string) (string, error) {
	s.calls.Add(1)
	if d := s.delay[name]; d > 0 {
		time.Sleep(d)
	}
	if s.broken[name] {
		return "", errors.New("connection reset")
	}
	body, ok := s.bodies[name]
	if !ok {
		return "", &source.StatusError{Name: name, Status: 404}
	}
	return body, nil
}

func (s *stubFetcher) Resolve(name string) string { return name }

type countingReporter struct {
	mu    sync.Mutex
	count int
	done  bool
}

func (r *countingReporter) Increment() { r.mu.Lock(); r.count++; r.mu.Unlock() }
func (r *countingReporter) Print()     {}
func (r *countingReporter) Done()      { r.done = true }

func TestSanitize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Alpha_One", "Alpha_One"},
		{"  Beta Two  ", "Beta_Two"},
		{"tab\there", "tab_here"},
		{"many   spaces  here", "many_spaces_here"},
		{"single", "single"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Sanitize(tt.in), "Sanitize(%q)", tt.in)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "Beta_Two.txt", Filename(" Beta Two ", ""))
	assert.Equal(t, "Beta_Two.md", Filename("Beta Two", ".md"))
}

func TestLoad(t *testing.T) {
	f := &stubFetcher{
		bodies: map[string]string{"Beta_Two.txt": "<div>beta</div>"},
		broken: map[string]bool{"Gamma.txt": true},
	}
	ctx := context.Background()

	assert.Equal(t, "<div>beta</div>", Load(ctx, f, "Beta Two"))
	assert.Equal(t,
		"// Error: Could not load code for Alpha One. Check if file Alpha_One.txt exists.",
		Load(ctx, f, "Alpha One"))
	assert.Equal(t, "// Error fetching file: Gamma.txt", Load(ctx, f, "Gamma"))
}

func TestLoader_PartialFailure(t *testing.T) {
	names := []string{"Alpha", "Beta", "Gamma"}
	f := &stubFetcher{bodies: map[string]string{
		"Alpha.txt": "alpha body",
		"Gamma.txt": "gamma body",
	}}

	for _, policy := range []Policy{Sequential, Concurrent} {
		t.Run(policy.String(), func(t *testing.T) {
			rep := &countingReporter{}
			l := &Loader{Fetcher: f, Policy: policy, Progress: rep}

			results := l.LoadAll(context.Background(), names)
			require.Len(t, results, 3)

			failed := 0
			for i, r := range results {
				assert.Equal(t, names[i], r.Name)
				assert.NotEmpty(t, r.Content)
				if r.Failed() {
					failed++
					assert.Contains(t, r.Content, "Beta.txt")
				}
			}
			assert.Equal(t, 1, failed)
			assert.Equal(t, 3, rep.count)
			assert.True(t, rep.done)
		})
	}
}

func TestLoader_ConcurrentKeepsManifestOrder(t *testing.T) {
	// The first entry is the slowest, so completion order differs from
	// manifest order.
	f := &stubFetcher{
		bodies: map[string]string{"a.txt": "A", "b.txt": "B", "c.txt": "C", "d.txt": "D"},
		delay:  map[string]time.Duration{"a.txt": 40 * time.Millisecond, "b.txt": 20 * time.Millisecond},
	}

	var seen []string
	l := &Loader{
		Fetcher: f,
		Policy:  Concurrent,
		Workers: 4,
		OnResult: func(_ int, r Result) {
			seen = append(seen, r.Content)
		},
	}
	results := l.LoadAll(context.Background(), []string{"a", "b", "c", "d"})

	got := make([]string, len(results))
	for i, r := range results {
		got[i] = r.Content
	}
	assert.Equal(t, []string{"A", "B", "C", "D"}, got)
	assert.Equal(t, []string{"A", "B", "C", "D"}, seen)
	assert.EqualValues(t, 4, f.calls.Load())
}

func TestLoader_SequentialReportsInOrder(t *testing.T) {
	f := &stubFetcher{bodies: map[string]string{"x.txt": "X", "y.txt": "Y"}}

	var idx []int
	l := &Loader{Fetcher: f, OnResult: func(i int, _ Result) { idx = append(idx, i) }}
	l.LoadAll(context.Background(), []string{"x", "y"})

	assert.Equal(t, []int{0, 1}, idx)
}
