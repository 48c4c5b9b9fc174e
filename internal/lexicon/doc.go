// Package lexicon turns PanLex translation tables into bilingual lexicons.
// It selects the top-k candidates per expression, joins them back to their
// source words, applies the embeddings post-filters and writes the result as
// delimited text.
package lexicon
