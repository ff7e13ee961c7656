// Package cache provides a small generic LRU cache safe for concurrent use.
//
// It bounds memoization whose key space is driven by input, such as
// compiled expressions taken from reloadable declaration files:
//
//	c := cache.NewLRU[string, *regexp.Regexp](256)
//	if re, ok := c.Get(p); ok {
//		return re
//	}
//	c.Put(p, regexp.MustCompile(p))
package cache
