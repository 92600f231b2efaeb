package analysis

import (
	"context"
	"strings"
)

// Analyzer is the document-understanding and team-recommendation collaborator.
type Analyzer interface {
	AnalyzeDocument(ctx context.Context, doc Document) (DocumentAnalysis, error)
	AnalyzeTeam(ctx context.Context, prompt string) (TeamAnalysis, error)
}

// IsBinaryMIME reports whether content of the given type is passed to the model as raw
// bytes. Everything else is treated as text.
func IsBinaryMIME(contentType string) bool {
	ct := strings.ToLower(strings.TrimSpace(contentType))
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = strings.TrimSpace(ct[:i])
	}
	return strings.HasPrefix(ct, "image/") || ct == "application/pdf"
}
