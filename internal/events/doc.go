// Package events provides the change-notification mechanism of the study
// collection.
//
// The collection emits a ChangeEvent after every mutation. A presentation
// layer registers an EventHandler to re-render on change, without the
// collection knowing who is listening.
//
// The primary components are:
// - ChangeEvent: describes one completed mutation
// - EventHandler: interface for components that react to changes
// - EventEmitter: interface for components that publish changes
package events
