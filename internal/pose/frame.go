package pose

import (
	"fmt"

	"github.com/danielpatrickdp/form-coach/go-evaluator/internal/geom"
)

// #region landmark

// Landmark is one estimated joint position. X and Y are normalized to [0,1]
// image space (origin top-left, y grows downward); Visibility is the
// estimator's confidence in [0,1].
type Landmark struct {
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Visibility float64 `json:"visibility"`
}

// Point returns the landmark position as a geometry point.
func (l Landmark) Point() geom.Point {
	return geom.Point{X: l.X, Y: l.Y}
}

// #endregion landmark

// #region invalid-input

// InvalidInputError reports a frame that cannot supply a required landmark.
// It is the only error the frame accessors produce.
type InvalidInputError struct {
	Joint Joint
	Count int
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid frame: %d landmarks (want %d), cannot read %s",
		e.Count, LandmarkCount, e.Joint)
}

// #endregion invalid-input

// #region frame

// Frame holds one video frame's worth of landmarks. A well-formed frame has
// exactly LandmarkCount entries; accessors reject anything else with a typed
// InvalidInputError rather than misindexing.
type Frame struct {
	Index     int
	Landmarks []Landmark
}

// NewFrame wraps landmarks into a Frame, validating the count up front.
func NewFrame(index int, landmarks []Landmark) (Frame, error) {
	f := Frame{Index: index, Landmarks: landmarks}
	if err := f.Validate(); err != nil {
		return Frame{}, err
	}
	return f, nil
}

// Validate reports whether the frame holds exactly LandmarkCount entries.
func (f Frame) Validate() error {
	if len(f.Landmarks) != LandmarkCount {
		return &InvalidInputError{Joint: Nose, Count: len(f.Landmarks)}
	}
	return nil
}

// At returns the landmark for joint j.
func (f Frame) At(j Joint) (Landmark, error) {
	if len(f.Landmarks) != LandmarkCount || j < 0 || int(j) >= LandmarkCount {
		return Landmark{}, &InvalidInputError{Joint: j, Count: len(f.Landmarks)}
	}
	return f.Landmarks[j], nil
}

// PointAt returns the position of joint j as a geometry point.
func (f Frame) PointAt(j Joint) (geom.Point, error) {
	lm, err := f.At(j)
	if err != nil {
		return geom.Point{}, err
	}
	return lm.Point(), nil
}

// #endregion frame
