package payload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryList_Fold(t *testing.T) {
	tests := []struct {
		name     string
		entries  EntryList
		expected Data
	}{
		{
			name:     "distinct keys",
			entries:  EntryList{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}},
			expected: Data{"a": "1", "b": "2"},
		},
		{
			name:     "last write wins on duplicate key",
			entries:  EntryList{{Key: "x", Value: "1"}, {Key: "x", Value: "2"}},
			expected: Data{"x": "2"},
		},
		{
			name:     "empty key is kept",
			entries:  EntryList{{Key: "", Value: "v"}},
			expected: Data{"": "v"},
		},
		{
			name:     "empty list folds to empty map",
			entries:  EntryList{},
			expected: Data{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.entries.Fold())
		})
	}
}

func TestEntryList_KeyIdentity(t *testing.T) {
	t.Run("IndexOf matches on key regardless of value", func(t *testing.T) {
		list := EntryList{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}

		assert.Equal(t, 1, list.IndexOf("b"))
		assert.Equal(t, -1, list.IndexOf("c"))
	})

	t.Run("Upsert replaces the value of an existing key in place", func(t *testing.T) {
		list := EntryList{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}

		list = list.Upsert("a", "3")

		assert.Equal(t, EntryList{{Key: "a", Value: "3"}, {Key: "b", Value: "2"}}, list)
	})

	t.Run("Upsert appends a new key", func(t *testing.T) {
		list := EntryList{{Key: "a", Value: "1"}}

		list = list.Upsert("b", "2")

		assert.Equal(t, EntryList{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, list)
	})

	t.Run("Remove deletes by key only", func(t *testing.T) {
		list := EntryList{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}, {Key: "c", Value: "3"}}

		list = list.Remove("b")

		assert.Equal(t, EntryList{{Key: "a", Value: "1"}, {Key: "c", Value: "3"}}, list)
	})

	t.Run("Remove of a missing key is a no-op", func(t *testing.T) {
		list := EntryList{{Key: "a", Value: "1"}}

		assert.Equal(t, list, list.Remove("z"))
	})
}
