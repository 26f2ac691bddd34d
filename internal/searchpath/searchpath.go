// Package searchpath builds and resolves the include search path overfmt
// consults when an <include> path isn't found relative to the including
// file: a PATH-like, de-duplicated, most-recently-added-wins list of
// directories, built with github.com/ardnew/mung.
package searchpath

import (
	"context"
	"os"
	"path/filepath"

	"github.com/ardnew/mung"

	"github.com/m-cat/over/errs"
	"github.com/m-cat/over/include"
)

// List is an ordered, de-duplicated set of directories to search for
// include paths that aren't found relative to the including file.
type List struct {
	joined string
}

// New builds a List from dirs, in order, plus $OVER_INCLUDE_PATH if set
// (lowest priority). Later entries win ties, matching mung's prefix
// semantics: each subsequent Add moves a repeated directory back to the
// front rather than leaving a stale duplicate behind.
func New(dirs ...string) *List {
	l := &List{}

	if env := os.Getenv("OVER_INCLUDE_PATH"); env != "" {
		l.joined = env
	}

	l.Add(dirs...)

	return l
}

// Add prepends dirs to the search list, de-duplicating against whatever is
// already present.
func (l *List) Add(dirs ...string) {
	if len(dirs) == 0 {
		return
	}

	// mung moves each prefix item in front of the ones before it, so the
	// group is passed reversed to keep dirs in the order given.
	rev := make([]string, len(dirs))
	for i, d := range dirs {
		rev[len(dirs)-1-i] = d
	}

	l.joined = mung.Make(
		mung.WithSubjectItems(l.joined),
		mung.WithDelim(string(os.PathListSeparator)),
		mung.WithPrefixItems(rev...),
	).String()
}

// Dirs returns the search list as an ordered slice.
func (l *List) Dirs() []string {
	if l.joined == "" {
		return nil
	}

	return filepathSplitList(l.joined)
}

func filepathSplitList(s string) []string {
	list := filepath.SplitList(s)

	out := make([]string, 0, len(list))

	for _, d := range list {
		if d != "" {
			out = append(out, d)
		}
	}

	return out
}

// Loader wraps include.OSLoader, falling back to each directory in a List
// (in order) when a requested include path isn't found relative to the
// including file.
type Loader struct {
	List *List
}

// Load implements include.Loader.
func (l Loader) Load(ctx context.Context, fromFile, path string) (string, []byte, error) {
	canonical, data, err := include.OSLoader{}.Load(ctx, fromFile, path)
	if err == nil || filepath.IsAbs(path) || l.List == nil {
		return canonical, data, err
	}

	for _, dir := range l.List.Dirs() {
		candidate := filepath.Join(dir, path)

		c, d, e := include.OSLoader{}.Load(ctx, "", candidate)
		if e == nil {
			return c, d, nil
		}
	}

	return "", nil, errs.ErrIncludeNotFound.Wrap(err)
}
