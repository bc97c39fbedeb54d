// Package session holds the per-session configuration negotiated during the
// initialize handshake: the workspace root, ignore-pattern sets, and the
// client's advertised capabilities.
package session

import (
	"strings"

	"go.lsp.dev/protocol"

	"sorbet-lsp/src/utils/jsonutil"
)

// ClientConfig is the immutable result of capability negotiation. It is
// produced once per session from the initialize request and installed into
// the session Config.
type ClientConfig struct {
	// RootURI is the client's workspace root with any trailing slash
	// stripped. Empty means the workspace root is the filesystem root,
	// which some in-browser clients (e.g. Monaco) report.
	RootURI string

	CompletionSnippetSupport bool
	CompletionMarkupKind     protocol.MarkupKind
	HoverMarkupKind          protocol.MarkupKind

	OperationNotifications bool
	TypecheckInfo          bool
	SorbetURISupport       bool
}

// InitializationOptions is the optional sorbet-specific payload carried in
// the initialize request.
type InitializationOptions struct {
	SupportsOperationNotifications bool `json:"supportsOperationNotifications"`
	EnableTypecheckInfo            bool `json:"enableTypecheckInfo"`
	SupportsSorbetURIs             bool `json:"supportsSorbetURIs"`
}

// preferredMarkupKind picks markdown when the client lists it anywhere,
// plaintext otherwise. The client's ordering does not matter; this is a
// membership test with two outcomes.
func preferredMarkupKind(formats []protocol.MarkupKind) protocol.MarkupKind {
	for _, f := range formats {
		if f == protocol.Markdown {
			return protocol.Markdown
		}
	}
	return protocol.PlainText
}

// NewClientConfig derives a ClientConfig from the initialize request. Every
// field is optional-with-default, so negotiation never fails.
func NewClientConfig(params *protocol.InitializeParams) ClientConfig {
	cfg := ClientConfig{
		CompletionMarkupKind: protocol.PlainText,
		HoverMarkupKind:      protocol.PlainText,
	}

	// Strip at most one trailing slash; no other normalization.
	cfg.RootURI = strings.TrimSuffix(string(params.RootURI), "/")

	if td := params.Capabilities.TextDocument; td != nil {
		if td.Completion != nil && td.Completion.CompletionItem != nil {
			item := td.Completion.CompletionItem
			cfg.CompletionSnippetSupport = item.SnippetSupport
			if item.DocumentationFormat != nil {
				cfg.CompletionMarkupKind = preferredMarkupKind(item.DocumentationFormat)
			}
		}
		if td.Hover != nil && td.Hover.ContentFormat != nil {
			cfg.HoverMarkupKind = preferredMarkupKind(td.Hover.ContentFormat)
		}
	}

	if params.InitializationOptions != nil {
		if opts, err := jsonutil.Convert[InitializationOptions](params.InitializationOptions); err == nil {
			cfg.OperationNotifications = opts.SupportsOperationNotifications
			cfg.TypecheckInfo = opts.EnableTypecheckInfo
			cfg.SorbetURISupport = opts.SupportsSorbetURIs
		}
	}

	return cfg
}
