package rfc822

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStanzas_TwoStanzas(t *testing.T) {
	doc := "Field-A: v1\n continuation\nField-B: v2\n\nField-C: v3"

	var stanzas Document
	for s, err := range ParseStanzas(strings.NewReader(doc)) {
		require.NoError(t, err)
		stanzas = append(stanzas, s)
	}
	require.Len(t, stanzas, 2)

	a, ok := stanzas[0].Get("Field-A")
	require.True(t, ok)
	assert.Equal(t, []string{"v1", " continuation"}, a)

	b, ok := stanzas[0].Get("Field-B")
	require.True(t, ok)
	assert.Equal(t, []string{"v2"}, b)

	c, ok := stanzas[1].Get("Field-C")
	require.True(t, ok)
	assert.Equal(t, []string{"v3"}, c)
}

func TestParseStanzas_MalformedLineDropsField(t *testing.T) {
	doc := "Good: ok\nthis has no colon\n more continuation\nNext: fine"
	stanzas, err := ParseDocument(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, stanzas, 1)

	s := stanzas[0]
	assert.False(t, s.Has("this has no colon"))
	next, ok := s.Get("Next")
	require.True(t, ok)
	assert.Equal(t, []string{"fine"}, next)
}

func TestParseStanzas_DuplicateFieldOverwrites(t *testing.T) {
	doc := "Key: first\nKey: second\n"
	stanzas, err := ParseDocument(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, stanzas, 1)

	fields := stanzas[0].Fields()
	require.Len(t, fields, 1)
	assert.Equal(t, []string{"second"}, fields[0].Lines)
}

func TestParseStanzas_CaseSensitive(t *testing.T) {
	stanzas, err := ParseDocument(strings.NewReader("Package: foo\n"))
	require.NoError(t, err)
	require.Len(t, stanzas, 1)

	assert.True(t, stanzas[0].Has("Package"))
	assert.False(t, stanzas[0].Has("package"))
}

func TestStanzaRoundTrip(t *testing.T) {
	src := "Name: value\nOther: thing\n"
	stanzas, err := ParseDocument(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, stanzas, 1)

	var buf strings.Builder
	require.NoError(t, stanzas[0].Write(&buf))

	again, err := ParseDocument(strings.NewReader(buf.String()))
	require.NoError(t, err)
	require.Len(t, again, 1)

	assert.Equal(t, stanzas[0].Fields(), again[0].Fields())
}
