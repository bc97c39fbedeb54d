// Package uritranslate maps between the server's canonical local paths and
// the URIs the editor client sees, including the sorbet: scheme for files
// the client cannot resolve on its own filesystem.
package uritranslate

import (
	"fmt"
	"strings"

	"go.lsp.dev/protocol"
	lspuri "go.lsp.dev/uri"

	"sorbet-lsp/src/internal/common"
	"sorbet-lsp/src/internal/types"
	"sorbet-lsp/src/server/session"
	"sorbet-lsp/src/utils/filepattern"
	"sorbet-lsp/src/utils/lspconv"
)

const (
	sorbetScheme = "sorbet:"
	httpsScheme  = "https"
)

// Translator converts between local paths and client URIs. It reads the
// session configuration and never mutates it; all methods require the
// client configuration to be installed.
type Translator struct {
	cfg    *session.Config
	logger *common.SafeLogger
}

// New creates a Translator over the given session configuration
func New(cfg *session.Config, logger *common.SafeLogger) *Translator {
	return &Translator{cfg: cfg, logger: logger}
}

// LocalToRemote converts a local path under the workspace root into a
// client URI. Callers only pass paths under the root; anything else is a
// programming error.
func (t *Translator) LocalToRemote(path string) string {
	if !strings.HasPrefix(path, t.cfg.RootPath()) {
		panic(fmt.Sprintf("uritranslate: LocalToRemote called with path %q outside workspace root %q", path, t.cfg.RootPath()))
	}
	client := t.cfg.ClientConfig()

	rel := strings.TrimPrefix(path, t.cfg.RootPath())
	rel = strings.TrimPrefix(rel, "/")

	// Special case: root URI is "" (happens in Monaco).
	if client.RootURI == "" {
		return rel
	}

	// Use a sorbet: URI if the file is not present on the client AND the
	// client supports sorbet: URIs.
	if client.SorbetURISupport &&
		filepattern.IsFileIgnored(t.cfg.RootPath(), path, t.cfg.DirsMissingFromClient(), nil) {
		return sorbetScheme + rel
	}
	return client.RootURI + "/" + rel
}

// RemoteToLocal converts a client URI into a local path. An unrecognized
// URI is logged and returned unchanged; callers must tolerate an unresolved
// result rather than crash the session.
func (t *Translator) RemoteToLocal(uri string) string {
	client := t.cfg.ClientConfig()

	isSorbetURI := strings.HasPrefix(uri, sorbetScheme)
	if !strings.HasPrefix(uri, client.RootURI) && !client.SorbetURISupport && !isSorbetURI {
		t.logger.Error("Unrecognized URI received from client: %s", uri)
		return uri
	}

	root := client.RootURI
	if isSorbetURI {
		root = sorbetScheme
	}
	path := strings.TrimPrefix(uri, root)
	path = strings.TrimPrefix(path, "/")

	// May be `https://` or `https%3A//`. VS Code URL-encodes the : in
	// sorbet:https:// paths. Such a URI names an external resource, not a
	// workspace file, so it is not resolved against the root path.
	isHTTPS := isSorbetURI && strings.HasPrefix(path, httpsScheme) && len(path) > len(httpsScheme) &&
		(path[len(httpsScheme)] == ':' || path[len(httpsScheme)] == '%')
	if isHTTPS {
		return strings.ReplaceAll(path, "%3A", ":")
	}
	if t.cfg.RootPath() != "" {
		return t.cfg.RootPath() + "/" + path
	}
	// Special case: workspace folder is "" (current directory).
	return path
}

// URIToFileRef resolves a client URI to a file table reference. URIs
// outside the workspace and sorbet: scheme resolve to the zero FileRef.
func (t *Translator) URIToFileRef(table types.FileTable, uri string) types.FileRef {
	client := t.cfg.ClientConfig()
	if !strings.HasPrefix(uri, client.RootURI) && !strings.HasPrefix(uri, sorbetScheme) {
		return types.FileRef{}
	}
	return table.FindFileByPath(t.RemoteToLocal(uri))
}

// FileRefToURI renders a file table reference as a client URI. Payload
// files bypass the root-relative mapping: they render with the sorbet:
// scheme when the client opted in, and as the bare internal path otherwise.
// A nonexistent reference renders as the placeholder "???".
func (t *Translator) FileRefToURI(table types.FileTable, fref types.FileRef) string {
	client := t.cfg.ClientConfig()
	if !fref.Exists() {
		return "???"
	}
	f := table.GetFile(fref)
	if f.PayloadFile {
		if client.SorbetURISupport {
			return sorbetScheme + f.Path
		}
		return f.Path
	}
	return t.LocalToRemote(f.Path)
}

// LocToLocation converts an internal Loc into a protocol Location. Returns
// nil when the Loc's range cannot be computed.
func (t *Translator) LocToLocation(table types.FileTable, loc types.Loc) *protocol.Location {
	client := t.cfg.ClientConfig()
	f := table.GetFile(loc.File)
	rng, ok := lspconv.RangeFromLoc(f, loc)
	if !ok {
		return nil
	}
	uri := t.FileRefToURI(table, loc.File)
	if loc.File.Exists() && f.PayloadFile && !client.SorbetURISupport {
		// Generic viewers jump to "#L<line>" fragments and ignore the
		// "#<line>,<col>" suffix protocol clients append, so a payload
		// file link stays usable outside the editor.
		begin, _ := loc.Position(f)
		uri = fmt.Sprintf("%s#L%d", uri, begin.Line)
	}
	return &protocol.Location{URI: lspuri.URI(uri), Range: rng}
}

// IsURIInWorkspace reports whether uri addresses a file under the client's
// workspace root
func (t *Translator) IsURIInWorkspace(uri string) bool {
	return strings.HasPrefix(uri, t.cfg.ClientConfig().RootURI)
}
