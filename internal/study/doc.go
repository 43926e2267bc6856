// Package study implements the study collection: an ordered list of study
// items with add, increment, delete and export operations.
//
// A Collection is not safe for concurrent use. It belongs to a single owner
// (a presentation session) which must serialize calls into it. Observers
// learn about changes through the events package or by polling Version.
package study
