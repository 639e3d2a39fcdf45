// Package reindex re-embeds every indexed job record.
//
// Use it after changing the embedding model or dimensionality: the old
// vectors are incompatible with new query embeddings, so every document's
// vector must be regenerated from its index text.
package reindex
