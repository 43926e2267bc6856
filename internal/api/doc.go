// Package api is the HTTP presentation layer of the study tracker. It owns
// the session that serializes access to the study collection, translates
// requests into collection operations, and offers exports as downloads.
package api
