// Package search defines the boundary to the external ranking-search API.
//
// The batch pipeline depends only on the RowSource interface. The production
// implementation is Client, which queries an XMLRiver-style Yandex SERP
// endpoint and reports where a target domain ranks for each query.
package search
