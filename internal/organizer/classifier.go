package organizer

import (
	"path/filepath"

	"github.com/jensettl/folder-organizer/internal/category"
)

// Classifier resolves a file's category and destination directory from its
// extension. It never touches the filesystem; directory creation belongs to
// the executor.
type Classifier struct {
	categories category.Map
	root       string
}

// NewClassifier builds a classifier rooted at the source directory.
func NewClassifier(categories category.Map, root string) *Classifier {
	return &Classifier{categories: categories, root: root}
}

// Classify returns the entry's category and destination directory
// (root/category).
func (c *Classifier) Classify(entry FileEntry) (string, string) {
	name := c.categories.ForExtension(entry.Ext)
	return name, c.DirFor(name)
}

// DirFor returns the destination directory for a category name, used when
// a manual decision overrides the classified category.
func (c *Classifier) DirFor(categoryName string) string {
	return filepath.Join(c.root, categoryName)
}

// Categories returns the category names available for manual selection.
func (c *Classifier) Categories() []string {
	return c.categories.Names()
}
