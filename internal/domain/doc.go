// Package domain contains the core entities of the study tracker: the study
// item and the errors raised when one is malformed. It has no knowledge of
// how items are stored, exported or presented.
package domain
