// Package panels implements panel-based view navigation and focus
// restoration.
//
// A Panels value owns an ordered list of Panel views and the active index.
// Changing the index starts a slide transition; the entering panel keeps its
// body withheld until the transition completes, and only then restores focus
// into itself. Rendering and committing are separate passes:
//
//	view := m.View(ctx)   // mounts visible bodies into the focus engine
//	m.Commit()            // runs focus restoration for freshly shown panels
//
// Stale transition completions are recognized by sequence number and
// dropped.
package panels
