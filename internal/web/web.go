// Package web implements an HTMX-based web application mirroring the TUI functionality.
//
// # HTMX Web Application Implementation Plan
//
// # Architecture
//
// The web app replicates the TUI's view workflow using server-side rendering
// with HTMX for dynamic updates. Each view corresponds to a template and handler:
//
//  1. Catalog: Server-rendered movie grid with hx-get for detail preview
//  2. Movie Detail: HTMX partial swap showing summary + watchlist button
//  3. Watchlist: Sortable queue with hx-post reorder persistence
//  4. Sign In: Email/password form plus OAuth redirect entry point
//
// Core Components
//
//   - HTTP Server: server.BasicRouter with html/template rendering
//   - Service Integration: Uses the same api.Client and identity.Adapter as the TUI
//   - Session Management: Cookie-based sessions carrying the principal's credential
//   - Guard Middleware: guard.Decide over the session snapshot on protected routes
//
// Routes
//
//	GET  /                      → Catalog view (public)
//	GET  /login                 → Sign-in form
//	POST /login                 → Password sign-in
//	GET  /auth/oauth            → OAuth initiation
//	GET  /auth/oauth/callback   → OAuth completion
//	GET  /movies/{id}           → HTMX partial: movie detail
//	GET  /watchlist             → Watchlist view (guarded)
//	POST /watchlist             → Add entry, triggers badge refresh event
//	POST /watchlist/order       → Persist display order
//
// Templates
//
//   - base.html: Layout with navigation, auth status, watchlist badge
//   - catalog.html: Movie grid with hx-get on cards
//   - detail.html: Partial template for movie detail
//   - watchlist.html: Queue with drag handles posting order changes
//   - login.html: Sign-in form with provider error passthrough
//
// # State Management
//
// Unlike the TUI's in-memory state, the web app persists state in:
//   - Session cookies: the bearer credential and principal ID
//   - watchlist_order records: display order shared with the TUI
//   - HX-Trigger response headers: replace the in-process signal bus for
//     cross-fragment refresh (the watchlist badge listens for them)
//
// Authentication Flow
//
//  1. User visits /watchlist, guard middleware redirects to /login with the
//     original route carried as ?from=
//  2. Password or OAuth sign-in stores the credential in the session cookie
//  3. Successful sign-in redirects back to the carried route
//  4. A 401 from the catalog clears the cookie and re-runs the guard
//
// Dependencies
//
//   - html/template: Server-side rendering
//   - server.BasicRouter: Route registration and middleware
//
// # Testing Strategy
//
// Use httptest:
//   - Mock identity.Adapter for sign-in outcomes
//   - Validate HTMX headers and response structure
//   - Exercise the guard redirect chain end to end
package web
