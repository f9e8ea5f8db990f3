package geom

import "src.tvk.sh/pkg/scene"

// Assemble groups vertex indices into the primitives of a topology: single
// indices for points, pairs for lines and triples for triangles. Indices that
// do not complete a primitive are dropped.
func Assemble(t scene.Topology, indices []uint32) [][]uint32 {
	var prims [][]uint32
	switch t {
	case scene.PointList:
		for i := range indices {
			prims = append(prims, indices[i:i+1])
		}
	case scene.LineList:
		for i := 0; i+1 < len(indices); i += 2 {
			prims = append(prims, indices[i:i+2])
		}
	case scene.LineStrip:
		for i := 0; i+1 < len(indices); i++ {
			prims = append(prims, indices[i:i+2])
		}
	case scene.TriangleList:
		for i := 0; i+2 < len(indices); i += 3 {
			prims = append(prims, indices[i:i+3])
		}
	case scene.TriangleStrip:
		for i := 0; i+2 < len(indices); i++ {
			prims = append(prims, indices[i:i+3])
		}
	}
	return prims
}

// Sequence returns the indices 0 to n-1. Vertex buffers drawn without an index
// buffer are assembled in this order.
func Sequence(n int) []uint32 {
	indices := make([]uint32, n)
	for i := range indices {
		indices[i] = uint32(i)
	}
	return indices
}
