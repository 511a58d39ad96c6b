// Package testutil provides testing utilities for refdict.
//
// This package is intended for use in tests only. It provides helpers for
// building records with inline tags and dictionaries that must construct
// cleanly:
//
//	dict := testutil.NewDictionary(t,
//	    testutil.NewRecord("chr1", 100, testutil.Tag{Key: record.TagMD5, Value: "abc"}),
//	    testutil.NewRecord("chr2", 200),
//	)
package testutil
