// Package dynamics provides the per-band dynamics stage of the multiband
// engine.
//
// Included pieces:
//   - Envelope: one-pole power follower with separate attack and release.
//   - GainComputer: three-region soft-knee gain computer, attenuation only.
//   - Saturate: odd-symmetric cubic waveshaper with output trim.
//   - Band: stereo band processor combining the above with independent
//     left/right envelopes and a smoothed gain-reduction factor per channel.
//
// Building with -tags fastmath switches the dB and square-root helpers to
// the approximations in github.com/meko-christian/algo-approx.
package dynamics
