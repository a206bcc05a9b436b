// meta/meta.go
package meta

// NUM_GAMES defines the number of games the play command runs by default.
const NUM_GAMES = 1

// MAX_MOVES caps the length of a single game.
const MAX_MOVES = 100000

// SELFTEST_SAMPLES defines the number of random boards the self test checks.
const SELFTEST_SAMPLES = 100000

// TIMING_ITERATIONS defines the number of left/right move pairs timed by the self test.
const TIMING_ITERATIONS = 1000000

// OUTPUT_ROOT is where experiment records are stored.
const OUTPUT_ROOT = "."
