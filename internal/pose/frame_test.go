package pose

import (
	"errors"
	"testing"
)

// #region helpers

func zeroFrame() Frame {
	f, err := NewFrame(0, make([]Landmark, LandmarkCount))
	if err != nil {
		panic(err)
	}
	return f
}

// #endregion helpers

// #region frame-tests

func TestNewFrame_RejectsWrongCount(t *testing.T) {
	for _, n := range []int{0, 1, 32, 34, 100} {
		_, err := NewFrame(0, make([]Landmark, n))
		if err == nil {
			t.Errorf("expected error for %d landmarks", n)
			continue
		}
		var inv *InvalidInputError
		if !errors.As(err, &inv) {
			t.Errorf("expected InvalidInputError for %d landmarks, got %T", n, err)
		}
	}
}

func TestNewFrame_AcceptsExactCount(t *testing.T) {
	f, err := NewFrame(7, make([]Landmark, LandmarkCount))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Index != 7 {
		t.Errorf("expected index 7, got %d", f.Index)
	}
}

func TestFrame_At(t *testing.T) {
	lms := make([]Landmark, LandmarkCount)
	lms[LeftElbow] = Landmark{X: 0.4, Y: 0.6, Visibility: 0.9}
	f, _ := NewFrame(0, lms)

	got, err := f.At(LeftElbow)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.X != 0.4 || got.Y != 0.6 {
		t.Errorf("unexpected landmark: %+v", got)
	}
}

func TestFrame_At_OutOfRangeJoint(t *testing.T) {
	f := zeroFrame()
	if _, err := f.At(Joint(33)); err == nil {
		t.Error("expected error for joint 33")
	}
	if _, err := f.At(Joint(-1)); err == nil {
		t.Error("expected error for joint -1")
	}
}

func TestFrame_At_ShortFrame(t *testing.T) {
	f := Frame{Landmarks: make([]Landmark, 10)}
	_, err := f.At(LeftShoulder)
	var inv *InvalidInputError
	if !errors.As(err, &inv) {
		t.Fatalf("expected InvalidInputError, got %v", err)
	}
	if inv.Count != 10 {
		t.Errorf("expected count 10 in error, got %d", inv.Count)
	}
}

func TestFrame_PointAt(t *testing.T) {
	lms := make([]Landmark, LandmarkCount)
	lms[RightKnee] = Landmark{X: 0.25, Y: 0.75}
	f, _ := NewFrame(0, lms)

	p, err := f.PointAt(RightKnee)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.X != 0.25 || p.Y != 0.75 {
		t.Errorf("unexpected point: %+v", p)
	}
}

// #endregion frame-tests

// #region joint-tests

func TestJointString(t *testing.T) {
	cases := []struct {
		j    Joint
		want string
	}{
		{LeftShoulder, "left_shoulder"},
		{RightAnkle, "right_ankle"},
		{Nose, "nose"},
		{RightFootIndex, "right_foot_index"},
		{Joint(99), "unknown_joint"},
	}
	for _, tc := range cases {
		if got := tc.j.String(); got != tc.want {
			t.Errorf("Joint(%d).String() = %q, want %q", int(tc.j), got, tc.want)
		}
	}
}

// #endregion joint-tests
