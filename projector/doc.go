// SPDX-License-Identifier: MIT

// Package projector relaxes coordinates back onto a set of edge-length
// constraints by iterative position-based projection (FABRIK style).
//
// Each sweep visits the constraints in order and moves the endpoints of every
// bar along the bar by its length error: half to each end, or the whole
// correction to the free end when the other is pinned. Sweeps stop after the
// iteration budget or once the summed absolute error drops to
// tolerance·|constraints|.
//
// Nudge displaces a framework along a motion vector (typically one of
// rigidity.NonTrivialMotions) and projects the result back, which turns an
// infinitesimal flex into a finite, length-preserving step.
package projector
