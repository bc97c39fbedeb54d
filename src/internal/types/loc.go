package types

// Detail is a 1-based line/column position, the convention used internally
// and by most editors. The wire protocol is 0-based; the lspconv package
// converts between the two.
type Detail struct {
	Line   uint32
	Column uint32
}

// Loc is a byte-offset range within a file. A zero-width Loc (equal begin
// and end offsets) represents a point position.
type Loc struct {
	File        FileRef
	BeginOffset int
	EndOffset   int
}

// NewPointLoc creates a zero-width Loc at the given offset
func NewPointLoc(file FileRef, offset int) Loc {
	return Loc{File: file, BeginOffset: offset, EndOffset: offset}
}

// Empty reports whether the Loc is zero-width
func (l Loc) Empty() bool {
	return l.BeginOffset == l.EndOffset
}

// Position resolves the Loc's offsets to 1-based begin/end details within f
func (l Loc) Position(f *File) (Detail, Detail) {
	return f.Offset2Pos(l.BeginOffset), f.Offset2Pos(l.EndOffset)
}
