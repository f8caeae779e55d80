// Package prediction computes awesomeness predictions for cities.
//
// A prediction is a uniform integer draw in [MinPercentage, MaxPercentage]
// rendered into a fixed plain-text template. Predictions carry no state
// between calls and a Predictor is safe for concurrent use.
package prediction
