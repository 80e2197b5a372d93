// Package extension defines the contract shipped extension modules
// implement to hook into an editor. Attaching pipes to the editor's scope
// is the core's sole extension point; there is no separate plugin manifest
// or lifecycle API.
package extension
