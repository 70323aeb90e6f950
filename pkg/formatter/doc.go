/*
Package formatter renders specification results.

Formatters implement domain.LiveFormatter and receive context headers and example
results while the tree runs. Formatters that also implement runner.Summarizer print
a closing summary once the run is over.

  - Console: indented, coloured terminal output.
  - JSON: newline-delimited JSON events for machines.
  - Multi: fans out to several formatters.

SummaryTable renders a per-context table of a finished report.
*/
package formatter
