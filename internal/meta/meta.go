// Package meta holds the identifying constants shared by the over command
// line tools (cmd/overfmt, cmd/over-repl): name, description, and the
// config/cache directory helpers kong's default-value plumbing needs at
// startup.
package meta

const (
	// Name is the canonical command identifier used in help text and
	// default config paths.
	Name = "overfmt"
	// Description is a short summary of the project used in help output.
	Description = "Formatter and evaluator for the OVER data-interchange format"
)

// AuthorInfo names one author for display in metadata.
type AuthorInfo struct {
	Name  string
	Email string
}

// Author lists the primary author(s) of the project.
var Author = []AuthorInfo{
	{"m-cat", "m-cat@users.noreply.github.com"},
}
