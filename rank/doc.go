// Package rank scores document sections against a persona and a job to be
// done. Sections are assembled from an extracted outline (heading text plus
// the body lines that follow it), indexed in an embedded chromem-go vector
// store, and ranked by cosine similarity against a blended query embedding
// that weights the job over the persona.
//
// The embedding model stays outside the library: callers provide an Embedder,
// typically backed by a local model server or an API client.
package rank
