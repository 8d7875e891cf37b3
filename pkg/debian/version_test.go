package debian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVersion(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		epoch    uint64
		upstream string
		revision string
	}{
		{"simple revision", "1.2.6-1ubuntu1", 0, "1.2.6", "1ubuntu1"},
		{"no revision", "3.20191218.1ubuntu2", 0, "3.20191218.1ubuntu2", ""},
		{"multi-segment revision", "1.2.3-4.5.6", 0, "1.2.3", "4.5.6"},
		{"epoch and revision", "1:1.2.3-4.5.6", 1, "1.2.3", "4.5.6"},
		{"scenario A", "1:1.2.3-4.5.6", 1, "1.2.3", "4.5.6"},
		{"scenario B", "3.20191218.1ubuntu2", 0, "3.20191218.1ubuntu2", ""},
		{"upstream contains hyphens", "1.0-beta-2", 0, "1.0-beta", "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := ParseVersion(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.epoch, v.Epoch)
			assert.Equal(t, tt.upstream, v.Upstream)
			assert.Equal(t, tt.revision, v.Revision)
		})
	}
}

func TestParseVersion_InvalidEpoch(t *testing.T) {
	_, err := ParseVersion("x:1.0")
	assert.Error(t, err)
}

func TestCompare_Epoch(t *testing.T) {
	v1, _ := ParseVersion("1.2.3-4.5.6")
	v2, _ := ParseVersion("1:1.2.3-4.5.6")
	assert.True(t, v1.Less(v2))

	c, err := Compare(v1, v1)
	require.NoError(t, err)
	assert.Equal(t, 0, c)
}

func TestCompare_Upstream(t *testing.T) {
	v1, _ := ParseVersion("1.2.3-4.5.6")
	v2, _ := ParseVersion("1.2.4-4.5.6")
	assert.True(t, v1.Less(v2))
}

func TestCompare_UpstreamTilde(t *testing.T) {
	v1, _ := ParseVersion("1.2.3-4.5.6")
	v2, _ := ParseVersion("~1-4.5.6")
	assert.True(t, v2.Less(v1))
}

func TestCompare_Revision(t *testing.T) {
	v1, _ := ParseVersion("1.2.3-4.5.6")
	v2, _ := ParseVersion("1.2.3-4.6.6")
	assert.True(t, v1.Less(v2))
}

func TestCompare_RevisionTilde(t *testing.T) {
	v1, _ := ParseVersion("1.2.3-4.5.6")
	v2, _ := ParseVersion("1.2.3-~6")
	assert.True(t, v2.Less(v1))
}

func TestCompareBlocks(t *testing.T) {
	assert.Equal(t, -1, compareBlocks(versionBlock{"", 1}, versionBlock{"", 2}))
	assert.Equal(t, 0, compareBlocks(versionBlock{"", 1}, versionBlock{"", 1}))
	assert.Equal(t, 1, compareBlocks(versionBlock{"b", 1}, versionBlock{"a", 2}))
	assert.Equal(t, 1, compareBlocks(versionBlock{"", 1}, versionBlock{"~", 2}))
}

func TestDecomposeBlocks(t *testing.T) {
	blocks, err := decomposeBlocks("1.2.3")
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, versionBlock{"", 1}, blocks[0])
	assert.Equal(t, versionBlock{".", 2}, blocks[1])
	assert.Equal(t, versionBlock{".", 3}, blocks[2])
}

func TestDecomposeBlocks_MultiDigitRun(t *testing.T) {
	blocks, err := decomposeBlocks("10.20")
	require.NoError(t, err)
	require.Len(t, blocks, 2)
	assert.Equal(t, versionBlock{"", uint64(10)}, blocks[0])
	assert.Equal(t, versionBlock{".", uint64(20)}, blocks[1])
}

func TestCompare_TildeInvariant(t *testing.T) {
	versions := []string{"1.0", "2.5-1", "1ubuntu2", "0.9.1"}
	for _, v := range versions {
		plain, err := ParseVersion(v)
		require.NoError(t, err)
		tilded, err := ParseVersion("~" + v)
		require.NoError(t, err)
		assert.True(t, tilded.Less(plain), "~%s should be less than %s", v, v)
	}
}

func TestCompare_TotalOrder(t *testing.T) {
	raw := []string{"1.0-1", "1.0-2", "1.1-1", "2.0-1", "~1.0-1", "1:0.1-1"}
	versions := make([]Version, len(raw))
	for i, r := range raw {
		v, err := ParseVersion(r)
		require.NoError(t, err)
		versions[i] = v
	}
	for _, a := range versions {
		for _, b := range versions {
			for _, c := range versions {
				ab, _ := Compare(a, b)
				bc, _ := Compare(b, c)
				ac, _ := Compare(a, c)
				if ab <= 0 && bc <= 0 {
					assert.LessOrEqual(t, ac, 0, "transitivity violated")
				}
			}
		}
	}
}
