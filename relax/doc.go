// Package relax implements the relaxation (smoothing) strategies used by
// the amg package's pre- and post-smoothing steps.
//
// A Relaxation is constructed once per level from that level's operator and
// is then called many times by the cycling phase; construction may be
// expensive (e.g. SPAI0's per-row diagonal estimate), application must be
// cheap. Both ApplyPre and ApplyPost receive the same four arguments on
// purpose: most strategies use an identical sweep for pre- and
// post-smoothing and simply alias one to the other.
package relax
