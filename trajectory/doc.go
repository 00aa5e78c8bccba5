// Package trajectory provides pure helpers over discrete trajectories:
// ordered sequences of state labels.
//
// What:
//
//   - EraseLoops removes every loop from a path and keeps both endpoints,
//     even when they are equal.
//   - Transitions and Pairwise extract consecutive state pairs.
//   - Key renders a path as a stable string, used as a histogram class.
//   - LoopErasureClassifier classifies a trajectory by its loop erasure.
//
// All functions are deterministic and never mutate their input.
package trajectory
