// github-activity is a CLI tool that displays a GitHub user's recent
// public activity as an interactive, pageable feed.
package main

import "github.com/naka-gawa/github-activity/cmd"

func main() {
	cmd.Execute()
}
