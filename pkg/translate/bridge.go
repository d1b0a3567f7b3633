package translate

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Bridge moves text between the visitor's language and the pivot language the
// pipeline operates in. Implementations never return errors: detection falls
// open to the default code, ToPivot reports failure through the result tag,
// and FromPivot substitutes a fixed failure message.
type Bridge interface {
	Detect(ctx context.Context, text string) string
	ToPivot(ctx context.Context, text string) PivotResult
	FromPivot(ctx context.Context, text, destLang string) string
}

// PivotResult is the tagged outcome of a pivot translation. Failed means the
// original text came back untranslated and the turn cannot proceed.
type PivotResult struct {
	Text   string
	Lang   string
	Failed bool
}

// Sentinel renders the wire-level error flag ("ERROR-<lang>") kept for
// logging and API compatibility.
func (r PivotResult) Sentinel() string {
	if !r.Failed {
		return r.Lang
	}
	return fmt.Sprintf("ERROR-%s", r.Lang)
}

// Normalize applies Unicode NFC so composed and decomposed diacritics hash
// and match identically downstream.
func Normalize(text string) string {
	return norm.NFC.String(strings.TrimSpace(text))
}
