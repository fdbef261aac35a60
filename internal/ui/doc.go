// Package ui provides the liftlog terminal navigator, a Bubble Tea program
// that browses the backend through the client-side route table.
//
// # Layout
//
//	┌──────────────────────────────────────────────────────────┐
//	│ liftlog  OK  History  /history  updated 3s  127.0.0.1:8080 │  header
//	│ 1 Exercises  2 History  3 Manage  : Go to  r Reload  ...   │  command bar
//	│ redirected from /exercises                                 │  status line
//	│ Sessions  12 items                                         │
//	│ > 2024-03-31  calendarEntryId=c1  id=s1  userId=u1         │  page sections
//	└──────────────────────────────────────────────────────────┘
//
// # Navigation
//
// Every navigation goes through routes.Table.Resolve: the number keys use
// Href for the named routes, ":" opens a prompt for an arbitrary path and
// enter on a history row opens /workout/<id>. A path that does not resolve
// shows the route error in the status line and leaves the current page
// alone. Redirects are followed and reported.
//
// Resolving a path calls state.Store.Navigate and starts a load command.
// The load writes its result back to the store with the generation it
// started with, so results for a page the user already left are dropped.
// A tick re-reads the store so the background poller's refreshes show up.
//
// # Connection State
//
// The header badge is LOADING while a load is in flight, STALE when the
// last refresh failed but an older page is shown, OFFLINE after two
// consecutive failures and OK otherwise.
//
// # Preferences
//
// The theme (cycled with T) and the last visited path are written to the
// prefs file when the theme changes and on quit.
package ui
