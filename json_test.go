package vecmap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapJSONRoundTrip(t *testing.T) {
	m := From([]Entry[int, string]{{2, "b"}, {1, "a"}, {3, "c"}})

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":1,"value":"a"},{"key":2,"value":"b"},{"key":3,"value":"c"}]`, string(data))

	back := New[int, string]()
	require.NoError(t, json.Unmarshal(data, back))
	assert.Equal(t, m.Entries(), back.Entries())
	requireMapInvariant(t, back)
}

// Unsorted, duplicated input still decodes into a valid container with the
// last-wins tie-break.
func TestMapUnmarshal_AdversarialInput(t *testing.T) {
	data := []byte(`[
		{"key":4,"value":"a"},
		{"key":2,"value":"b"},
		{"key":5,"value":"c"},
		{"key":2,"value":"d"}
	]`)

	m := New[int, string]()
	require.NoError(t, json.Unmarshal(data, m))

	assert.Equal(t, []Entry[int, string]{{2, "d"}, {4, "a"}, {5, "c"}}, m.Entries())
	requireMapInvariant(t, m)
}

func TestMapUnmarshal_NoComparator(t *testing.T) {
	var m Map[int, string]
	err := json.Unmarshal([]byte(`[]`), &m)
	require.ErrorIs(t, err, errNoComparator)
}

func TestMapMarshal_Empty(t *testing.T) {
	m := New[int, string]()
	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSetJSONRoundTrip(t *testing.T) {
	s := SetFrom([]int{3, 1, 2})

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, "[1,2,3]", string(data))

	back := NewSet[int]()
	require.NoError(t, json.Unmarshal(data, back))
	assert.Equal(t, s.Slice(), back.Slice())
	requireSetInvariant(t, back)
}

func TestSetUnmarshal_AdversarialInput(t *testing.T) {
	s := NewSet[int]()
	require.NoError(t, json.Unmarshal([]byte(`[5,1,3,1,5,2]`), s))
	assert.Equal(t, []int{1, 2, 3, 5}, s.Slice())
}

func TestSetUnmarshal_NoComparator(t *testing.T) {
	var s Set[int]
	err := json.Unmarshal([]byte(`[1]`), &s)
	require.ErrorIs(t, err, errNoComparator)
}

func TestSetMarshal_Empty(t *testing.T) {
	data, err := json.Marshal(NewSet[int]())
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSplitMapJSONRoundTrip(t *testing.T) {
	m := SplitFrom([]Entry[int, string]{{2, "b"}, {1, "a"}})

	data, err := json.Marshal(m)
	require.NoError(t, err)
	assert.JSONEq(t, `[{"key":1,"value":"a"},{"key":2,"value":"b"}]`, string(data))

	back := NewSplit[int, string]()
	require.NoError(t, json.Unmarshal(data, back))
	assert.Equal(t, m.Entries(), back.Entries())
	requireSplitInvariant(t, back)
}

func TestSplitMapUnmarshal_AdversarialInput(t *testing.T) {
	data := []byte(`[{"key":4,"value":"a"},{"key":2,"value":"b"},{"key":2,"value":"d"}]`)

	m := NewSplit[int, string]()
	require.NoError(t, json.Unmarshal(data, m))

	assert.Equal(t, []int{2, 4}, m.Keys())
	assert.Equal(t, []string{"d", "a"}, m.Values())
	requireSplitInvariant(t, m)
}

func TestSplitMapUnmarshal_NoComparator(t *testing.T) {
	var m SplitMap[int, string]
	err := json.Unmarshal([]byte(`[]`), &m)
	require.ErrorIs(t, err, errNoComparator)
}

// A map nested in a struct round-trips through the interfaces the same way.
func TestMapJSON_Embedded(t *testing.T) {
	type snapshot struct {
		Name  string           `json:"name"`
		Index *Map[string, int] `json:"index"`
	}

	in := snapshot{Name: "s1", Index: From([]Entry[string, int]{{"b", 2}, {"a", 1}})}
	data, err := json.Marshal(in)
	require.NoError(t, err)

	out := snapshot{Index: New[string, int]()}
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Index.Entries(), out.Index.Entries())
}
