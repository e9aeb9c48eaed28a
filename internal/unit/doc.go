// Package unit holds the data model shared by every stage of resolution.
//
//   - Descriptor: the result of a successful lookup, before any handle exists.
//   - Handle: the long-lived object bound into the registry. Its identity never
//     changes once registered; its attribute namespace is mutable while the
//     unit initializes.
//   - Value: a tagged attribute value, either a bound sub-unit or plain data.
//   - Request: the parameters of one caller-facing resolution.
package unit
