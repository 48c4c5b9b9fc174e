// Package processor contains the lexicon induction workflows. It wires the
// PanLex client, the quality filter, the post-filters and the writers
// together for the list and embeddings commands.
package processor
