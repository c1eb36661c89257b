package converter

// NameLookup resolves a soft reference to its display name. Unknown ids
// resolve to "".
type NameLookup map[string]string

func (n NameLookup) Name(id string) string {
	if id == "" || n == nil {
		return ""
	}
	return n[id]
}
