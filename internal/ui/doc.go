// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a multi-view workflow for browsing the movie catalog:
//  1. [CatalogView] : Browse and search the movie listing
//  2. [DetailView] : Inspect a single movie, with owner-gated mutations
//  3. [WatchlistView] : Manage the signed-in user's watchlist queue
//  4. [SignInView] : Email/password authentication for guarded views
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Session changes and application signals flow in through channels pumped as
// messages, so the views always render from the live session snapshot.
//
// Navigation to guarded views goes through the route guard: while restoration
// is pending the TUI shows a neutral loading line, and a denied navigation
// lands on [SignInView] remembering where the user was headed.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, q) with contextual
// help displayed via charmbracelet/bubbles/help.
package ui
