// Package telegram adapts the batch pipeline to the Telegram Bot API.
//
// The adapter is deliberately thin: it extracts query text from incoming
// messages, hands each batch to a worker pool, reports progress by editing a
// status message in place, and returns the finished CSV as a document.
// All sequencing and failure-isolation logic lives in the batch package.
package telegram
