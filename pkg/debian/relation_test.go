package debian

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRelationList_AlternativeChaining(t *testing.T) {
	rels := ParseRelationList("libc6 (>= 2.31), libssl3 | libssl1.1")
	require.Len(t, rels, 2)

	assert.Equal(t, "libc6", rels[0].Package)
	assert.Equal(t, GTE, rels[0].Op)
	require.NotNil(t, rels[0].Version)
	assert.Equal(t, "2.31", rels[0].Version.Upstream)
	assert.Nil(t, rels[0].Alternative)

	assert.Equal(t, "libssl3", rels[1].Package)
	assert.Equal(t, ANY, rels[1].Op)
	require.NotNil(t, rels[1].Alternative)
	assert.Equal(t, "libssl1.1", rels[1].Alternative.Package)
	assert.Equal(t, ANY, rels[1].Alternative.Op)
	assert.Nil(t, rels[1].Alternative.Alternative)
}

func TestParseRelationList_DropsMalformedKeepsRest(t *testing.T) {
	rels := ParseRelationList("good-pkg, bad-pkg (?? 1.0), another-good")
	require.Len(t, rels, 2)
	assert.Equal(t, "good-pkg", rels[0].Package)
	assert.Equal(t, "another-good", rels[1].Package)
}

func TestRelation_Matches(t *testing.T) {
	rels := ParseRelationList("libc6 (>= 2.31)")
	require.Len(t, rels, 1)

	v231, _ := ParseVersion("2.31")
	v230, _ := ParseVersion("2.30")
	v240, _ := ParseVersion("2.40")

	assert.True(t, rels[0].Matches("libc6", v231))
	assert.True(t, rels[0].Matches("libc6", v240))
	assert.False(t, rels[0].Matches("libc6", v230))
	assert.False(t, rels[0].Matches("other", v240))
}

func TestRelation_MatchesNoVersion(t *testing.T) {
	rels := ParseRelationList("libssl3 | libssl1.1")
	require.Len(t, rels, 1)

	anyVersion, _ := ParseVersion("1.0")
	assert.True(t, rels[0].Matches("libssl1.1", anyVersion))
	assert.False(t, rels[0].Matches("libssl-other", anyVersion))
}
