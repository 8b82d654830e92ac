// Package export turns core graphs into Graphviz DOT documents and writes
// them to disk, optionally rendering them to PNG with the external dot tool.
//
// Encoding goes through gonum's graph/encoding/dot: a core.Graph is mirrored
// into a gonum multigraph whose nodes carry the jurisdiction label and whose
// lines carry the edge weight as a label, so parallel edges of the
// rate-difference graph survive the round trip and show up when rendered.
// Graphviz reads its own weight attribute as an integer layout hint, so the
// data weight is never written there.
//
// Side effects live behind two small ports:
//
//	Exporter  – persists an encoded document (FileExporter writes under a directory).
//	Renderer  – converts a DOT file to an image (Graphviz shells out to `dot -Tpng`).
//
// Every filesystem or process failure is reported as *IOError and matches
// ErrIO with errors.Is. A missing dot binary additionally matches
// ErrRendererUnavailable.
package export
