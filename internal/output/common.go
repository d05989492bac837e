package output

// TSVHeader is the canonical header row for text/TSV outputs.
// Keep this as the single source of truth; all writers should use it.
const TSVHeader = "normal_x\tnormal_y\tnormal_z\tcenter\tback\tfront\tthickness\tresidues\tscore\tmethod"

// ResidueHeader is the header for the optional per-residue rows.
const ResidueHeader = "# num\taa\tx\ty\tz\tasa"
