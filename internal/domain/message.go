package domain

import "fmt"

// FormatMessage renders one display line for a category with a non-zero
// count in a group. ref carries the branch/repository reference for
// Create and Delete events; those categories are suppressed (empty
// string) when no reference was recorded. An empty result always means
// "no line for this entry", never an error.
func FormatMessage(cat Category, count int, repoName string, ref *RefInfo) string {
	if repoName == "" {
		return ""
	}

	switch cat {
	case CategoryPush:
		plural := "s"
		if count == 1 {
			plural = ""
		}
		return fmt.Sprintf("- Pushed %d commit%s to %s", count, plural, repoName)
	case CategoryPullRequest:
		return fmt.Sprintf("- Opened a pull request in %s", repoName)
	case CategoryStar:
		return fmt.Sprintf("- Starred %s", repoName)
	case CategoryIssues:
		return fmt.Sprintf("- Opened a new issue in %s", repoName)
	case CategoryFork:
		return fmt.Sprintf("- Forked %s", repoName)
	case CategoryComment:
		return fmt.Sprintf("- Commented on an issue in %s", repoName)
	case CategoryCreate, CategoryDelete:
		return formatRefMessage(cat, repoName, ref)
	}
	return ""
}

func formatRefMessage(cat Category, repoName string, ref *RefInfo) string {
	if ref == nil {
		return ""
	}
	switch ref.Type {
	case "repository":
		return fmt.Sprintf("- Created a new repository %s", repoName)
	case "branch":
		if cat == CategoryCreate {
			return fmt.Sprintf("- Created a new branch %s", ref.Name)
		}
		return fmt.Sprintf("- Deleted a branch %s", ref.Name)
	}
	return ""
}
