package domain

// Money is an amount in minor currency units (cents). Keeping totals in
// integers avoids drift when line totals are recomputed on every update.
type Money int64
