// Package core holds the domain logic of the financial Q&A dashboard.
//
// It is independent of any transport: the web layer, tests and tools all use
// the same types.
//
// # Dataset
//
// A [Dataset] is the immutable in-memory table of [Record] rows, one per
// company and fiscal year, built once at startup by the source package via
// [NewDataset]. Lookups are keyed by the case-insensitive company name and
// the fiscal year. When the source contains duplicates for a key the first
// row wins.
//
// # Resolver
//
// [Resolver.Answer] maps a (company, year, [Question]) triple to an [Answer].
// Questions form a closed set; anything else yields the fixed
// [MsgUnsupportedQuestion] reply. Missing data is not an error:
//
//	r := core.NewResolver(ds, nil)
//	a := r.Answer("acme", 2023, core.QuestionNetIncomeChange)
//	// a.Text == "The net income has increased by $100 compared to the previous year."
//
// # Error Handling
//
// Technical errors from loading and request parsing are mapped to
// user-facing messages with support codes by [MapError].
package core
