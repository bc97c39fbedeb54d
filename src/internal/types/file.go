// Package types holds the server-side file and location model shared by the
// session and translation layers.
package types

import "sort"

// FileRef identifies a file in a Table. The zero value refers to no file.
type FileRef struct {
	id uint32
}

// Exists reports whether the reference points at a real table entry
func (f FileRef) Exists() bool {
	return f.id != 0
}

// File is a single tracked source file. PayloadFile marks virtual or
// built-in sources that do not exist in the workspace directory tree.
type File struct {
	Path        string
	Source      string
	PayloadFile bool

	lineStarts []int
}

// NewFile creates a workspace file with its line index built eagerly
func NewFile(path, source string) *File {
	return &File{Path: path, Source: source, lineStarts: buildLineStarts(source)}
}

// NewPayloadFile creates a virtual file that is not present on disk
func NewPayloadFile(path, source string) *File {
	f := NewFile(path, source)
	f.PayloadFile = true
	return f
}

func buildLineStarts(source string) []int {
	starts := []int{0}
	for i := 0; i < len(source); i++ {
		if source[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// LineCount returns the number of lines in the file. An empty file has one
// line.
func (f *File) LineCount() int {
	return len(f.lineStarts)
}

// Pos2Offset resolves a 1-based line/column pair to a byte offset. The
// column is clamped to the line's width; ok is false when the line is out
// of range.
func (f *File) Pos2Offset(d Detail) (int, bool) {
	line := int(d.Line)
	if line < 1 || line > len(f.lineStarts) {
		return 0, false
	}
	start := f.lineStarts[line-1]
	end := len(f.Source)
	if line < len(f.lineStarts) {
		end = f.lineStarts[line] - 1
	}
	col := int(d.Column)
	if col < 1 {
		col = 1
	}
	if width := end - start + 1; col > width {
		col = width
	}
	return start + col - 1, true
}

// Offset2Pos resolves a byte offset to a 1-based line/column pair. Offsets
// past the end of the file clamp to the final position.
func (f *File) Offset2Pos(offset int) Detail {
	if offset < 0 {
		offset = 0
	}
	if offset > len(f.Source) {
		offset = len(f.Source)
	}
	line := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	})
	return Detail{
		Line:   uint32(line),
		Column: uint32(offset - f.lineStarts[line-1] + 1),
	}
}

// FileTable is the lookup surface the URI translation layer needs from the
// surrounding file state.
type FileTable interface {
	FindFileByPath(path string) FileRef
	GetFile(ref FileRef) *File
}

// Table is a path-keyed file registry
type Table struct {
	files  []*File
	byPath map[string]FileRef
}

// NewTable creates an empty file table
func NewTable() *Table {
	return &Table{byPath: make(map[string]FileRef)}
}

// Add registers a file and returns its reference. Re-adding a path replaces
// the stored file but keeps the original reference.
func (t *Table) Add(f *File) FileRef {
	if ref, ok := t.byPath[f.Path]; ok {
		t.files[ref.id-1] = f
		return ref
	}
	t.files = append(t.files, f)
	ref := FileRef{id: uint32(len(t.files))}
	t.byPath[f.Path] = ref
	return ref
}

// FindFileByPath returns the reference for path, or the zero FileRef when
// the path is unknown
func (t *Table) FindFileByPath(path string) FileRef {
	return t.byPath[path]
}

// GetFile returns the file for ref, or nil for a nonexistent reference
func (t *Table) GetFile(ref FileRef) *File {
	if !ref.Exists() || int(ref.id) > len(t.files) {
		return nil
	}
	return t.files[ref.id-1]
}
