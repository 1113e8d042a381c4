// Package stream wires the filter designer, FIR kernel, sample histories,
// and spectrum analyzer into a push-driven pipeline.
//
// A Processor accepts one raw sample at a time, maintains bounded histories
// of the raw and filtered signals, and produces DC-centered magnitude
// spectra of either history on demand.
package stream
