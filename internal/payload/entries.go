package payload

// KeyValueEntry is one row of the data table. Entry identity is the key
// alone: two entries with the same key are the same entry for lookup and
// removal, regardless of their values.
type KeyValueEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// EntryList is the ordered set of data rows as entered.
type EntryList []KeyValueEntry

// IndexOf returns the position of the first entry with the given key, or -1.
func (l EntryList) IndexOf(key string) int {
	for i, e := range l {
		if e.Key == key {
			return i
		}
	}
	return -1
}

// Upsert replaces the value of the entry with the given key, or appends a
// new entry when the key is not present.
func (l EntryList) Upsert(key, value string) EntryList {
	if i := l.IndexOf(key); i >= 0 {
		l[i].Value = value
		return l
	}
	return append(l, KeyValueEntry{Key: key, Value: value})
}

// Remove deletes the first entry with the given key, preserving the order of
// the rest.
func (l EntryList) Remove(key string) EntryList {
	i := l.IndexOf(key)
	if i < 0 {
		return l
	}
	return append(l[:i:i], l[i+1:]...)
}

// Fold builds the data map from the list, last write wins on duplicate keys.
func (l EntryList) Fold() Data {
	data := make(Data, len(l))
	for _, e := range l {
		data[e.Key] = e.Value
	}
	return data
}
