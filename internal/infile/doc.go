// Package infile models a directory of layered requirements input files.
//
// Each `*.in` file is a layer. A layer holds free-text dependency lines and
// references to other layers, typed either as requirements (`-r`) or as
// constraints (`-c`). The package parses a directory into a graph of InFile
// nodes, orders the graph so that every layer follows the layers it
// references, and renders each layer into the exact lines handed to the
// external resolver.
//
// # Lifecycle
//
//  1. **Parsing:** ReadInFiles creates one InFile per file, then links
//     references by stem. Nodes are open for mutation during this pass only.
//  2. **Sealing:** every parsed node is sealed; later mutation panics.
//  3. **Ordering:** SortInFiles peels leaf layers round by round and reports
//     a CircularReferenceError for whatever cannot be peeled.
//  4. **Filtering:** FilterInFiles optionally reduces the set to selected
//     layers and their parents before ordering.
//  5. **Rendering:** Render flattens the transitive references of one node,
//     followed by its own dependency lines.
//
// # Reference Type Propagation
//
// Walking references recursively carries an effective type. Below a
// constraints edge every reference is a constraint; below a requirements
// edge each reference keeps the type it was declared with.
//
//	main --r--> parent --c--> grand --r--> leaf
//
//	-r parent.txt
//	-c grand.txt
//	-c leaf.txt
package infile
