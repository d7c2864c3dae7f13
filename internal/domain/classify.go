package domain

import "strings"

// filterTokens maps the user-facing filter vocabulary to event categories.
var filterTokens = map[string]Category{
	"push":    CategoryPush,
	"pull":    CategoryPullRequest,
	"star":    CategoryStar,
	"issues":  CategoryIssues,
	"fork":    CategoryFork,
	"delete":  CategoryDelete,
	"comment": CategoryComment,
	"create":  CategoryCreate,
}

// ParseFilter resolves a user-supplied filter token to its category,
// case-insensitively. Tokens outside the fixed vocabulary yield
// CategoryNone, which callers must treat as a fatal invalid-filter
// condition. Callers that have no token at all never call ParseFilter.
func ParseFilter(token string) Category {
	if cat, ok := filterTokens[strings.ToLower(token)]; ok {
		return cat
	}
	return CategoryNone
}
