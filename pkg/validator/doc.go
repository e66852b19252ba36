// Package validator checks tabular data sets against OCA schema
// bundles.
//
// # Overview
//
// The validator package runs four independent passes over a data set:
// attribute presence, format conformance, entry code membership, and
// character encoding. Findings are collected into a structured report
// rather than returned as errors, so a run always completes all four
// passes regardless of how much of the data is malformed.
//
// # Passes
//
// Attribute pass - cross-checks data columns against capture-base
// attributes; columns unknown to the bundle are unmatched, bundle
// attributes without a column are missing. Unmatched columns carry a
// nearest-attribute suggestion when a schema attribute is close by
// edit distance.
//
// Format pass - checks every cell against the attribute's declared
// type and format pattern (regex for Text/Numeric, ISO 8601 grammar
// for DateTime, fixed literal set for Boolean), records empty
// mandatory cells, and validates array-typed cells element by
// element.
//
// Entry code pass - checks cells of entry-coded attributes for
// membership in the permitted set.
//
// Encoding pass - checks that every cell can be encoded in the
// attribute's declared character encoding.
//
// # Usage
//
// Basic validation:
//
//	v := validator.New()
//	doc, err := v.Validate(ctx, bundle, dataSet)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(doc.Report.Overview())
//	for _, col := range doc.Report.AffectedColumns() {
//	    fmt.Println(doc.Report.ColumnDetail(col))
//	}
//
// # Notices
//
// Flagged-attribute and spec-version notices are advisory side
// channels: they appear on the report but never affect its pass/fail
// status. Both can be disabled with options; options never change
// pass outcomes.
package validator
