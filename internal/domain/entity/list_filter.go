package entity

import "strings"

// ListFilter is a domain-level filter for listing a user's records.
// Empty values and "all" disable the corresponding filter.
type ListFilter struct {
	Search string // case-insensitive substring over the entity's text fields
	Status string // exact status match
	Type   string // exact type match (test results only)
	Sort   string // "<field>-asc" or "<field>-desc", e.g. date-desc, name-asc
}

// Sort fields
const (
	SortByDate = "date"
	SortByName = "name"
)

// SortOrder splits Sort into a field and direction. Title and condition are
// accepted as aliases for name. ok is false for an empty or unknown sort.
func (f ListFilter) SortOrder() (field string, desc bool, ok bool) {
	idx := strings.LastIndex(f.Sort, "-")
	if idx <= 0 {
		return "", false, false
	}
	field, dir := f.Sort[:idx], f.Sort[idx+1:]
	switch dir {
	case "asc":
	case "desc":
		desc = true
	default:
		return "", false, false
	}
	switch field {
	case SortByDate:
	case SortByName, "title", "condition":
		field = SortByName
	default:
		return "", false, false
	}
	return field, desc, true
}

// MatchStatus reports whether status passes the status filter
func (f ListFilter) MatchStatus(status string) bool {
	return f.Status == "" || f.Status == "all" || f.Status == status
}

// MatchType reports whether typ passes the type filter
func (f ListFilter) MatchType(typ string) bool {
	return f.Type == "" || f.Type == "all" || f.Type == typ
}

// MatchSearch reports whether any of fields contains the search term.
func (f ListFilter) MatchSearch(fields ...string) bool {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	for _, field := range fields {
		if field != "" && strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}
