// Package hclgraph loads graph descriptions from HCL files and translates
// them into an import snapshot for the editor.
//
// A graph file declares node and connection blocks:
//
//	node "osc" {
//	  label = "Oscillator"
//	  output "signal" { socket = "stream" }
//	  input "freq" {
//	    socket = "number"
//	    control {
//	      kind  = "number"
//	      value = 440
//	    }
//	  }
//	}
//
//	connection {
//	  source        = "osc"
//	  source_output = "signal"
//	  target        = "mix"
//	  target_input  = "a"
//	}
//
// Node block labels ("osc") are file-local names used by connection
// blocks; entity identifiers are generated unless an explicit id attribute
// is present. Any violation (duplicate node name, unknown reference,
// missing port key) fails the whole load; the loader never produces a
// partial snapshot.
package hclgraph
