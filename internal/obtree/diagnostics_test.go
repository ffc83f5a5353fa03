// internal/obtree/diagnostics_test.go
package obtree

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateDetectsNothingWrongOnHealthyTree(t *testing.T) {
	tr, err := New(4)
	require.NoError(t, err)

	for i := Key(0); i < 200; i++ {
		require.NoError(t, tr.Insert(i, nil))
	}
	require.True(t, tr.Validate())
}

func TestPrintEmitsIndentedPreorderDump(t *testing.T) {
	tr, err := New(4)
	require.NoError(t, err)

	for _, k := range []Key{50, 25, 75, 10, 30, 60, 90} {
		require.NoError(t, tr.Insert(k, nil))
	}

	out := tr.Print()
	require.NotEmpty(t, out)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)

	sawLeaf := false
	for _, line := range lines {
		if strings.Contains(line, "(leaf)") {
			sawLeaf = true
		}
		require.True(t, strings.Contains(line, "["), "expected every line to show a key list: %q", line)
	}
	require.True(t, sawLeaf, "expected at least one leaf line in the dump")
}

func TestStatsGetSnapshotIsIndependentOfLiveCounters(t *testing.T) {
	tr, err := New(4)
	require.NoError(t, err)

	require.NoError(t, tr.Insert(1, nil))
	snapshot := tr.StatsGet()

	require.NoError(t, tr.Insert(2, nil))
	require.Equal(t, uint64(1), snapshot.InsertOps, "snapshot should not observe later mutation")

	later := tr.StatsGet()
	require.Equal(t, uint64(2), later.InsertOps)
}

func TestHeightMatchesStatsGetHeight(t *testing.T) {
	tr, err := New(4)
	require.NoError(t, err)

	for i := Key(0); i < 500; i++ {
		require.NoError(t, tr.Insert(i, nil))
	}

	require.Equal(t, tr.Height(), tr.StatsGet().Height)
}
