// Package adwin provides adaptive-windowing concept drift detection for
// numeric data streams.
//
// The library implements the ADWIN algorithm (Bifet & Gavalda, 2007): a
// variable-length sliding window backed by an exponential histogram, with a
// confidence-bounded cut test that detects when the distribution of recent
// values has changed and discards the stale prefix of the window.
//
// # Quick Start
//
//	package main
//
//	import (
//	    "fmt"
//
//	    "github.com/YuminosukeSato/adwin/drift"
//	)
//
//	func main() {
//	    detector, err := drift.NewADWIN()
//	    if err != nil {
//	        panic(err)
//	    }
//	    for _, v := range stream {
//	        if detector.Update(v) {
//	            fmt.Printf("change detected, window mean is now %.3f\n",
//	                detector.GetMean())
//	        }
//	    }
//	}
//
// # Design
//
//   - drift: the ADWIN engine and the Detector interface
//   - pkg/errors: structured errors and the warning system
//   - pkg/log: structured logging for detector events
//
// Memory and per-update cost are O(maxBuckets * log(width)) regardless of
// stream length. A detector monitors exactly one stream; instantiate one
// detector per stream and feed each strictly sequentially.
//
// # License
//
// Released under the MIT License.
package adwin
