// Package archive stores finalized batch reports in BadgerDB.
//
// Reports are keyed by a content-derived ID, with a secondary time index so
// the most recent reports can be listed without a full scan. The archive is
// optional infrastructure: the batch pipeline runs without it.
package archive
