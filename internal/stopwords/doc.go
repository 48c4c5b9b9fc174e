// Package stopwords provides stopword sets for filtering source words out of
// embedding training dictionaries.
package stopwords
