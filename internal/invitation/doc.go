// Package invitation is the full-screen Bubble Tea program for the
// invitation: welcome, the heating animation, event details with the RSVP
// modal, and the confirmation.
//
// All flow rules live in the session package. The model here turns key
// presses and timer ticks into session operations, schedules the delays the
// session asks for, and paints the current state with colors taken from the
// theme interpolator.
//
// # Timers
//
// Animation frames carry the ID of the animation that scheduled them and
// delayed transitions carry the session epoch. Going back to the start
// cancels the animation and bumps the epoch, so anything still in flight is
// dropped when it arrives.
package invitation
