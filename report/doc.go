// Package report provides ReportSink implementations.
//
// The XLSX sink writes one sheet per room-group to a workbook, with the five
// columns the lab instructors expect (name, surname, identifier, email,
// assigned turn-group). Rows arrive pre-sorted from the core; sinks only
// render.
package report
