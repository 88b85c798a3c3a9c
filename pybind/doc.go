// Package pybind registers the gpython module kb_tool, which exposes the
// path sampler to Python scripts run by the embedded interpreter:
//
//	import kb_tool
//	s = kb_tool.PathSampler("train.txt", 1.5, 3, 42)
//	s.data_size                                # number of triples
//	s.sample_path()                            # ('a', 'r::-->', 'b', ...)
//	s.sample_path_with_negative()              # (path, negative), exact policy
//	s.sample_path_with_negative_uniformly()    # uniform policy
//	s.sample_path_with_negative_near_miss()    # near-miss policy
//	s.sample_path_with_negative_traced()       # traced policy
//
// Importing this package for side effects is enough to make kb_tool
// importable; Run executes a script file or, with an empty path, a REPL.
package pybind
