// Package storm builds synthetic tropical-cyclone tracks.
//
// # Model
//
// A track is assembled on a caller-supplied time grid (elapsed seconds from
// an epoch). Eye position and maximum sustained wind speed are primary
// inputs, supplied as plain functions of elapsed time. The two remaining
// physical quantities are derived per sample from empirical regressions:
//
// Radius of maximum winds:
//
//	rmw_km = 218.3784 - 1.2014·V + (V/10.9884)² - (V/35.3052)³
//	         - 145.5090·cos(lat·π/180)
//
// a fourth-order polynomial in the wind speed V with a latitude-dependent
// cosine correction, after Knaff et al. climatological fits. The result is
// converted to meters. The fit is calibrated for tropical-cyclone-range
// winds (roughly 10–90 m/s); values outside that range are accepted but the
// physical fidelity of the output is the caller's problem — no clamping or
// rejection happens here.
//
// Central pressure:
//
//	p_mb = -0.0025·V² - 0.36·V + 1021.36
//
// the Kossin (2015, Weather and Forecasting) quadratic, calibrated to
// Atlantic-basin storms. The millibar result is converted to Pascals and
// capped at the ambient pressure so that a spinning storm never reports a
// center above the background field.
//
// Both derivations are pure functions of (V, latitude): identical inputs
// produce bit-identical outputs, so rebuilding a track from the same rules
// is reproducible.
//
// # Units
//
// Positions are degrees, wind speeds m/s, radii meters, pressures Pascals,
// grid times seconds. These match the storm-file wire format consumed by
// the surge-forcing model (see the stormfile package).
package storm
