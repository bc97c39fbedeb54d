// Package lspconv converts between protocol positions (0-based line and
// character) and internal Locs (byte-offset ranges, 1-based line/column).
package lspconv

import (
	"go.lsp.dev/protocol"

	"sorbet-lsp/src/internal/types"
)

// PositionToLoc resolves a protocol position in f to a zero-width Loc. The
// protocol is 0-based; internal Detail values are 1-based. ok is false when
// the position's line is outside the file.
func PositionToLoc(f *types.File, fref types.FileRef, pos protocol.Position) (types.Loc, bool) {
	detail := types.Detail{
		Line:   pos.Line + 1,
		Column: pos.Character + 1,
	}
	offset, ok := f.Pos2Offset(detail)
	if !ok {
		return types.Loc{}, false
	}
	return types.NewPointLoc(fref, offset), true
}

// RangeFromLoc converts a Loc's byte offsets into a protocol range. ok is
// false when the Loc does not reference a file or f is nil.
func RangeFromLoc(f *types.File, loc types.Loc) (protocol.Range, bool) {
	if f == nil || !loc.File.Exists() {
		return protocol.Range{}, false
	}
	begin, end := loc.Position(f)
	return protocol.Range{
		Start: detailToPosition(begin),
		End:   detailToPosition(end),
	}, true
}

func detailToPosition(d types.Detail) protocol.Position {
	return protocol.Position{Line: d.Line - 1, Character: d.Column - 1}
}
