// Package embedding reads the vocabulary of word2vec-style text embeddings
// and indexes it for case-insensitive lookup.
package embedding
