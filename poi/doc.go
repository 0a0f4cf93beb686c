// Package poi loads arbitrary "points of interest" — concrete contests
// off the sampling grid — from CSV and classifies each with the 2CP
// resolver.
//
// 🚀 Input format:
//
//	One row per point: blue, green[, label]. The red share is implied as
//	1 − (blue + green). Example:
//
//	  0.32, 0.29, Wills 2022
//	  0.26, 0.38, Melbourne 2022
//
// ✨ Behaviour:
//
//	Row handling is deliberately lenient, as befits hand-maintained CSV:
//	rows that fail to parse, carry out-of-range values, or leave the
//	simplex (blue + green > 1) are counted and dropped rather than
//	aborting the batch. Only a reader-level failure aborts.
//
// ⚙️ Usage:
//
//	pts, skipped, err := poi.Read(file, flows, core.Epsilon(0.01))
//	for _, p := range pts {
//	  fmt.Println(p.Label, p.Result)
//	}
package poi
