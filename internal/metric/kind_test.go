package metric

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		names []string
		want  []Kind
	}{
		{
			name:  "nil",
			names: nil,
			want:  []Kind{},
		},
		{
			name:  "order preserved",
			names: []string{"ResponseTime", "CPU", "Memory"},
			want:  []Kind{KindResponseTime, KindCPU, KindMemory},
		},
		{
			name:  "unknown dropped",
			names: []string{"CPU", "GC", "Throughput"},
			want:  []Kind{KindCPU, KindThroughput},
		},
		{
			name:  "duplicates dropped",
			names: []string{"Memory", "CPU", "Memory"},
			want:  []Kind{KindMemory, KindCPU},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.want, ParseKinds(tc.names))
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	for _, k := range AllKinds() {
		parsed, ok := ParseKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, parsed)
	}

	assert.Equal(t, "Unknown", Kind(42).String())
}
