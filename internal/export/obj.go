// Package export writes generated geometry and height maps to files.
package export

import (
	"bufio"
	"fmt"
	"io"

	"github.com/Faultbox/fractalgen/pkg/math"
	"github.com/Faultbox/fractalgen/pkg/terrain"
)

// WriteOBJ writes vertices and triangle faces as Wavefront OBJ.
// Face indices are zero-based on input and one-based in the file.
func WriteOBJ(w io.Writer, vertices []math.Vec3, faces [][3]uint32) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d faces\n", len(vertices), len(faces))
	for _, v := range vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.X, v.Y, v.Z)
	}
	n := uint32(len(vertices))
	for i, f := range faces {
		if f[0] >= n || f[1] >= n || f[2] >= n {
			return fmt.Errorf("face %d %v references vertex beyond %d", i, f, n)
		}
		fmt.Fprintf(bw, "f %d %d %d\n", f[0]+1, f[1]+1, f[2]+1)
	}
	return bw.Flush()
}

// WriteSurfaceOBJ writes a terrain surface with per-vertex normals.
func WriteSurfaceOBJ(w io.Writer, mesh *terrain.Mesh) error {
	if len(mesh.Indices)%3 != 0 {
		return fmt.Errorf("index count %d is not a multiple of 3", len(mesh.Indices))
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %d vertices, %d faces\n", len(mesh.Vertices), mesh.TriangleCount())
	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "v %g %g %g\n", v.Position[0], v.Position[1], v.Position[2])
	}
	for _, v := range mesh.Vertices {
		fmt.Fprintf(bw, "vn %g %g %g\n", v.Normal[0], v.Normal[1], v.Normal[2])
	}
	n := uint32(len(mesh.Vertices))
	for i := 0; i < len(mesh.Indices); i += 3 {
		a, b, c := mesh.Indices[i], mesh.Indices[i+1], mesh.Indices[i+2]
		if a >= n || b >= n || c >= n {
			return fmt.Errorf("face %d references vertex beyond %d", i/3, n)
		}
		fmt.Fprintf(bw, "f %d//%d %d//%d %d//%d\n", a+1, a+1, b+1, b+1, c+1, c+1)
	}
	return bw.Flush()
}
