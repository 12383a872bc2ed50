package venue

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVenue_UnmarshalJSON(t *testing.T) {
	testCases := []struct {
		name     string
		input    string
		expected Venue
		hasError bool
	}{
		{
			name:     "numeric capacity",
			input:    `{"id":"v1","name":"Hall A","location":"Floor 1","description":"Main hall","capacity":200}`,
			expected: Venue{Id: "v1", Name: "Hall A", Location: "Floor 1", Description: "Main hall", Capacity: 200},
		},
		{
			name:     "form string capacity",
			input:    `{"id":"","name":"Hall A","location":"Floor 1","description":"Main hall","capacity":"200"}`,
			expected: Venue{Name: "Hall A", Location: "Floor 1", Description: "Main hall", Capacity: 200},
		},
		{
			name:     "blank capacity",
			input:    `{"name":"Hall B","capacity":""}`,
			expected: Venue{Name: "Hall B"},
		},
		{
			name:     "legacy Desc key",
			input:    `{"id":"v2","name":"Hall C","Desc":"Side hall","capacity":null}`,
			expected: Venue{Id: "v2", Name: "Hall C", Description: "Side hall"},
		},
		{
			name:     "description wins over Desc",
			input:    `{"description":"new","Desc":"old"}`,
			expected: Venue{Description: "new"},
		},
		{
			name:     "decimal string capacity",
			input:    `{"id":"a","capacity":"12.5"}`,
			expected: Venue{Id: "a", Capacity: 12},
		},
		{
			name:     "exponent string capacity",
			input:    `{"id":"b","capacity":"1e3"}`,
			expected: Venue{Id: "b", Capacity: 1000},
		},
		{
			name:     "decimal number capacity",
			input:    `{"id":"c","capacity":12.5}`,
			expected: Venue{Id: "c", Capacity: 12},
		},
		{
			name:     "non numeric capacity",
			input:    `{"capacity":"many"}`,
			hasError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var actual Venue
			err := json.Unmarshal([]byte(tc.input), &actual)
			if tc.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.EqualValues(t, tc.expected, actual)
		})
	}
}

func TestVenue_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(&Venue{Name: "Hall A", Capacity: 200})
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"","name":"Hall A","location":"","description":"","capacity":200}`, string(data))
}

func TestCollection(t *testing.T) {
	a := &Venue{Id: "a", Name: "A"}
	b := &Venue{Id: "b", Name: "B"}
	input := []*Venue{a, b}

	assert.Same(t, b, Find(input, "b"))
	assert.Nil(t, Find(input, "x"))

	appended := Append(input, &Venue{Name: "C"})
	assert.Len(t, appended, 3)
	assert.Len(t, input, 2)

	patch := &Venue{Id: "a", Name: "A2"}
	replaced := Replace(input, "a", patch)
	assert.Equal(t, []*Venue{patch, b}, replaced)
	assert.Same(t, a, input[0])

	assert.Equal(t, []*Venue{b}, Remove(input, "a"))
	assert.Equal(t, input, Remove(input, "x"))
}

func TestParseCapacity(t *testing.T) {
	c, err := ParseCapacity(" 42 ")
	require.NoError(t, err)
	assert.EqualValues(t, 42, c)

	c, err = ParseCapacity("")
	require.NoError(t, err)
	assert.EqualValues(t, 0, c)

	c, err = ParseCapacity("12.5")
	require.NoError(t, err)
	assert.EqualValues(t, 12, c)

	_, err = ParseCapacity("4x")
	assert.Error(t, err)

	_, err = ParseCapacity("NaN")
	assert.Error(t, err)
}
