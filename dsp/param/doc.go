// Package param provides parameter smoothing and range helpers for
// real-time processors.
//
// [Smoother] moves a value toward a target over a fixed time, either
// exponentially (reaching 99.99% of the step after the configured time) or
// linearly. [Range] describes a bounded parameter with a default value.
package param
