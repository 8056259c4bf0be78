// Package uiconfig loads optional layout overlays for fieldkit components
// from YAML or JSON files. Overlays stay out of the component core: they
// carry presentation hints only (column sizes, extra classes, icon markup,
// formatting defaults) that callers apply to field wrappers and numeric
// inputs at wiring time. Icon markup is sanitized against a strict SVG
// policy before it is stored.
package uiconfig
