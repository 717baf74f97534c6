// Package audio provides notification sound playback.
// Playback shells out to the system audio player (afplay) so that any
// format the OS understands works, including the built-in .aiff alert
// sounds. The beep library is used only to verify that custom sound
// files are actually decodable before they are relied on.
package audio
