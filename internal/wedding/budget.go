package wedding

import "strings"

// The remote schema keeps a budget item's description concatenated onto its
// category in a single text column. These two functions are the only place
// that convention lives. A category that itself contains the separator is
// not escaped and will be mis-split on load.
const budgetFieldSep = " ::: "

// JoinBudgetField encodes category and description into the combined
// remote column value.
func JoinBudgetField(category, description string) string {
	if description == "" {
		return category
	}
	return category + budgetFieldSep + description
}

// SplitBudgetField decodes the combined remote column value back into
// category and description.
func SplitBudgetField(s string) (category, description string) {
	before, after, found := strings.Cut(s, budgetFieldSep)
	if !found {
		return s, ""
	}
	return before, after
}
