// Package cache provides the bounded LRU used to memoize shaped text runs.
//
// Hit testing measures every text layer on every pointer event, and the
// preview repaints on every layer change, so shaping the same string at
// the same size is by far the most repeated piece of work. Cache keeps the
// most recently used results and drops the least recently used one when
// the limit is reached.
//
//	runs := cache.New[runKey, *Run](512)
//	run := runs.GetOrCreate(key, func() *Run { return shape(key) })
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
