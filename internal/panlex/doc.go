// Package panlex is a small client for the PanLex v2 API. It resolves source
// words to expression identifiers and fetches quality-scored translations for
// those identifiers, one POST per batch with a fixed pause between requests.
//
// PanLex terminology:
//
//	expression  identifier for one word form in one language variety
//	variety     sub-category of a language; "-000" is the most general form
//	quality     integer score for how strongly two expressions are linked
package panlex
