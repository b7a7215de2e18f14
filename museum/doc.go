// Package museum contains concrete core.MuseumTracker implementations. The
// tracker interface resides in the core package; depend on
// core.MuseumTracker in your code and select an implementation (like the
// in-memory tracker below) at wiring time.
//
// A tracked form is in exactly one collection state: new (wanted by the
// museum, never found), found (owned but not on display) or displayed.
// Untracked forms answer false to every question.
package museum
