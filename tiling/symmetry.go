package tiling

import "github.com/procedural-go/wfc/grid2d"

// rotationMap[sc][o] is the orientation reached by rotating orientation o
// of a tile with symmetry class sc by 90 degrees CCW.
var rotationMap = map[SymmetryClass][]int{
	SymmetryX:         {0},
	SymmetryI:         {1, 0},
	SymmetryBackslash: {1, 0},
	SymmetryT:         {1, 2, 3, 0},
	SymmetryL:         {1, 2, 3, 0},
	SymmetryP:         {1, 2, 3, 0, 5, 6, 7, 4},
}

// reflectionMap[sc][o] is the orientation reached by reflecting
// orientation o along the x axis.
var reflectionMap = map[SymmetryClass][]int{
	SymmetryX:         {0},
	SymmetryI:         {0, 1},
	SymmetryBackslash: {1, 0},
	SymmetryT:         {0, 3, 2, 1},
	SymmetryL:         {1, 0, 3, 2},
	SymmetryP:         {4, 7, 6, 5, 0, 3, 2, 1},
}

// actionMap computes the 8 x orientations(sc) table: actionMap[a][o] is
// the orientation resulting from applying action a to base orientation o.
// Actions 0..3 are rotations by 0/90/180/270 degrees CCW; actions 4..7 are
// those preceded by a reflection.
func actionMap(sc SymmetryClass) [8][]int {
	rot := rotationMap[sc]
	refl := reflectionMap[sc]
	n := len(rot)

	var m [8][]int
	for a := range m {
		m[a] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		m[0][i] = i
	}
	for a := 1; a < 4; a++ {
		for i := 0; i < n; i++ {
			m[a][i] = rot[m[a-1][i]]
		}
	}
	for i := 0; i < n; i++ {
		m[4][i] = refl[m[0][i]]
	}
	for a := 5; a < 8; a++ {
		for i := 0; i < n; i++ {
			m[a][i] = rot[m[a-1][i]]
		}
	}

	return m
}

// generateOriented returns the distinct oriented variants of content for
// symmetry class sc, in the order tile.rs's generate_oriented produces
// them: X -> [id]; I/Backslash -> [id, rot]; T/L -> the four successive
// rotations; P -> the four rotations, then the reflection of the base
// content and its three further rotations, so orientation 4 is the mirror
// of orientation 0 as reflectionMap records.
// Complexity: O(orientations(sc) * S^2).
func generateOriented[S Symbol](content *grid2d.Grid2D[S], sc SymmetryClass) []*grid2d.Grid2D[S] {
	switch sc {
	case SymmetryX:
		return []*grid2d.Grid2D[S]{content}
	case SymmetryI, SymmetryBackslash:
		return []*grid2d.Grid2D[S]{content, content.Rotated()}
	case SymmetryT, SymmetryL:
		oriented := []*grid2d.Grid2D[S]{content}
		for i := 0; i < 3; i++ {
			oriented = append(oriented, oriented[len(oriented)-1].Rotated())
		}
		return oriented
	case SymmetryP:
		oriented := []*grid2d.Grid2D[S]{content}
		for i := 0; i < 3; i++ {
			oriented = append(oriented, oriented[len(oriented)-1].Rotated())
		}
		oriented = append(oriented, oriented[len(oriented)-1].Rotated().Reflected())
		for i := 0; i < 3; i++ {
			oriented = append(oriented, oriented[len(oriented)-1].Rotated())
		}
		return oriented
	default:
		return nil
	}
}
