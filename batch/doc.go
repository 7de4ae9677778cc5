// Package batch implements the query-batch processing pipeline.
//
// A batch is one caller-submitted set of queries processed as a unit:
// queries are extracted from raw text, looked up one at a time through a
// search.RowSource with fixed pacing, and accumulated into a single CSV
// report whose header is fixed by the first successful lookup.
//
// A failed lookup isolates that query only; it never aborts the batch.
// Progress is reported through an injected ProgressSink so the pipeline
// stays independent of any transport.
package batch
