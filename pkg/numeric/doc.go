// Package numeric defines the typed value model shared by fieldkit input
// components. A Value carries exactly one Kind — one of the fixed-width
// signed/unsigned integers, single/double floats, or arbitrary-precision
// decimal — fixed at construction. Parsing and formatting always go through
// an explicit FormattingContext (culture tag, decimal separator, decimal
// places) so conversions stay deterministic and free of ambient locale state.
// All arithmetic is performed in decimal space regardless of the native kind,
// with truncation back to integer kinds on the final conversion.
package numeric
