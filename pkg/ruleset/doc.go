// Package ruleset loads named form definitions from YAML or JSON files.
//
// A file maps form names to rule and filter lists written in tuple form:
//
//	forms:
//	  signup:
//	    default_error: "Invalid value"
//	    rules:
//	      - [[name, email], required, {}, "Field is required"]
//	      - [email, email, {}, "Incorrect email"]
//	      - [password, string, {min: 8}, "Too short"]
//	      - [[bio]]                      # accepted without checks
//	    filters:
//	      - ["*", trim]
//	      - [email, lowercase]
//
// A rule tuple is [fields, action?, params?, message?] and a filter tuple is
// [fields, action?, params?]. fields is a name or a list of names; "*"
// targets every field of the form.
//
// Parse, LoadFile and LoadDir build a Catalog. A Watcher reloads a directory
// catalog when its files change and swaps the new definitions in with
// Catalog.Replace, keeping the previous ones when a reload fails.
package ruleset
