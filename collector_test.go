package tagarena

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollector(t *testing.T) {
	a := NewTaggedArena(WithBlockSize(128))
	defer a.Close()

	c := Collector(a)
	assert.Equal(t, NumTags*5, testutil.CollectAndCount(c))

	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(c))

	_, err := a.Alloc(TagGame, 32, 1)
	require.NoError(t, err)
	require.NoError(t, a.Free(TagRendering))

	expected := `
		# HELP tagarena_capacity_bytes Bytes of block storage reserved for each tag.
		# TYPE tagarena_capacity_bytes gauge
		tagarena_capacity_bytes{tag="game"} 128
		tagarena_capacity_bytes{tag="gpu"} 128
		tagarena_capacity_bytes{tag="rendering"} 0
		tagarena_capacity_bytes{tag="shared"} 128
		# HELP tagarena_used_bytes Bytes claimed by allocations under each tag, padding included.
		# TYPE tagarena_used_bytes gauge
		tagarena_used_bytes{tag="game"} 32
		tagarena_used_bytes{tag="gpu"} 0
		tagarena_used_bytes{tag="rendering"} 0
		tagarena_used_bytes{tag="shared"} 0
		# HELP tagarena_frees_total Number of bulk frees performed per tag.
		# TYPE tagarena_frees_total counter
		tagarena_frees_total{tag="game"} 0
		tagarena_frees_total{tag="gpu"} 0
		tagarena_frees_total{tag="rendering"} 1
		tagarena_frees_total{tag="shared"} 0
	`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"tagarena_capacity_bytes",
		"tagarena_used_bytes",
		"tagarena_frees_total"))
}
