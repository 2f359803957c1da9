package translation

// kdThreshold is the non-dimensional wavenumber magnitude below which the
// translation is degenerate and the operator is an exact identity.
//
// Below this value the largest off-identity term of the true operator is
// bounded by √3·j₁(kd) ≈ kd/√3, well under working precision for audio
// processing, and the recurrence itself would divide vanishing Bessel
// values. Degenerate samples never enter the recurrence.
const kdThreshold = 1e-6
