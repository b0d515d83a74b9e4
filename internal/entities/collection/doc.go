// Package collection holds the token, metadata record and run types produced by a
// generation run, plus the content hashes used for deduplication and verification.
package collection
