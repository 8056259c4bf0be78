// Package schemabind derives numeric input parameters from OpenAPI schema
// properties: type/format select the numeric kind, minimum/maximum become
// bounds, multipleOf becomes the step, and the x-fieldkit extension carries
// presentation hints (decimals, separator, culture, spinner). It lets hosts
// configure fieldkit components straight from the API document that already
// describes the payload the input feeds.
package schemabind
