// Package state provides thread-safe state management for liftlog.
//
// # Overview
//
// The Store holds the route the user navigated to (the target) and the page
// most recently loaded for it. The UI's load commands and the background
// poller both write to it; the UI reads snapshots to render.
//
//	Navigate(match) ──> generation N
//	    │
//	    ├── load for N ──> Update(N, page, err)   applied
//	    │
//	Navigate(other) ──> generation N+1
//	    │
//	    └── late load for N ──> Update(N, ...)    dropped
//
// # Generations
//
// Every Navigate bumps the generation and clears the page, the last error and
// the failure count. A load captures the generation before it starts and
// passes it to Update; results for any other generation are discarded, so a
// slow response for a view the user already left never overwrites the current
// one.
//
// # Update Semantics
//
//	// Success: replace the page
//	store.Update(gen, &page, nil)
//
//	// Failure: keep the previous page, record the error
//	store.Update(gen, nil, err)
//
// ConsecutiveFailures counts failed loads of the current target. IsOffline
// reports true from the second failure on.
//
// # Copying
//
// Snapshot and Target return copies: sections, the target's params, props
// and query are cloned, and errors are rewrapped. Documents inside a section
// are shared and must be treated as read-only.
//
// The zero Store is ready to use.
package state
