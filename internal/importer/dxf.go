package importer

import (
	"fmt"
	"math"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/entity"

	"github.com/piwi3910/TrimCut/internal/model"
)

// minWallLength is the shortest segment (inches) imported as a wall.
const minWallLength = 1.0 / model.Sixteenths

// DXF unit scales to inches.
const (
	UnitsInches      = 1.0
	UnitsFeet        = 12.0
	UnitsMillimeters = 1 / 25.4
	UnitsCentimeters = 1 / 2.54
)

// ImportDXF imports wall measurements from a floor-plan DXF file. Every LINE
// and every LWPOLYLINE segment becomes one measurement, its length multiplied
// by scale to convert drawing units to inches and snapped to 1/16".
// A scale of zero or less is treated as inches.
func ImportDXF(path string, scale float64) ImportResult {
	result := ImportResult{}
	if scale <= 0 {
		scale = UnitsInches
	}

	drawing, err := dxf.Open(path)
	if err != nil {
		result.Errors = append(result.Errors, fmt.Sprintf("Cannot open DXF file: %v", err))
		return result
	}

	entities := drawing.Entities()
	if len(entities) == 0 {
		result.Errors = append(result.Errors, "DXF file contains no entities")
		return result
	}

	wallNum := 0
	addWall := func(start, end []float64) {
		length := model.SnapToSixteenth(distance(start, end) * scale)
		if length < minWallLength {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Skipped degenerate segment (%s)", model.FormatLength(length)))
			return
		}
		wallNum++
		result.Measurements = append(result.Measurements,
			model.NewMeasurement(length, "", fmt.Sprintf("Wall %d", wallNum)))
	}

	skipped := 0
	for _, ent := range entities {
		switch e := ent.(type) {
		case *entity.Line:
			addWall(e.Start[:], e.End[:])

		case *entity.LwPolyline:
			if len(e.Vertices) < 2 {
				result.Warnings = append(result.Warnings, "Skipped LWPOLYLINE with fewer than 2 vertices")
				continue
			}
			for i := 0; i+1 < len(e.Vertices); i++ {
				addWall(e.Vertices[i], e.Vertices[i+1])
			}
			if e.Closed && len(e.Vertices) > 2 {
				addWall(e.Vertices[len(e.Vertices)-1], e.Vertices[0])
			}

		default:
			skipped++
		}
	}

	if skipped > 0 {
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("Skipped %d unsupported entities (only LINE and LWPOLYLINE are read)", skipped))
	}
	if len(result.Measurements) == 0 {
		result.Errors = append(result.Errors, "No wall segments found in DXF file")
	}
	return result
}

// distance returns the planar distance between two DXF points.
func distance(a, b []float64) float64 {
	if len(a) < 2 || len(b) < 2 {
		return 0
	}
	return math.Hypot(b[0]-a[0], b[1]-a[1])
}
