// Package detect implements per-scan mass peak detection with exact-mass
// refinement and shoulder-peak suppression.
//
// Detection walks one scan in three stages. Local-maximum segmentation turns
// the profile samples into candidate peaks above the configured noise level.
// Candidates are then accepted in descending intensity order; each accepted
// peak has its apex m/z refined to the midpoint of its full width at half
// maximum, and every weaker candidate that the configured peak shape model
// explains as a lateral (shoulder) artifact of the accepted peak is dropped.
// The surviving peaks are returned ascending by m/z.
//
// # Usage
//
//	det, err := detect.New(detect.Config{
//		NoiseLevel: 10,
//		Resolution: 60000,
//		PeakModel:  "gaussian",
//	})
//	peaks := det.DetectScan(scan)
//
// A Detector is stateless across calls and safe for concurrent use on
// different scans.
package detect
