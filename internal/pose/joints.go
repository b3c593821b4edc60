package pose

// #region joint

// Joint names one of the 33 canonical body landmarks emitted by the pose
// estimator. The numeric values are the estimator's fixed landmark indices
// and must not be reordered.
type Joint int

const (
	Nose           Joint = 0
	LeftEyeInner   Joint = 1
	LeftEye        Joint = 2
	LeftEyeOuter   Joint = 3
	RightEyeInner  Joint = 4
	RightEye       Joint = 5
	RightEyeOuter  Joint = 6
	LeftEar        Joint = 7
	RightEar       Joint = 8
	MouthLeft      Joint = 9
	MouthRight     Joint = 10
	LeftShoulder   Joint = 11
	RightShoulder  Joint = 12
	LeftElbow      Joint = 13
	RightElbow     Joint = 14
	LeftWrist      Joint = 15
	RightWrist     Joint = 16
	LeftPinky      Joint = 17
	RightPinky     Joint = 18
	LeftIndex      Joint = 19
	RightIndex     Joint = 20
	LeftThumb      Joint = 21
	RightThumb     Joint = 22
	LeftHip        Joint = 23
	RightHip       Joint = 24
	LeftKnee       Joint = 25
	RightKnee      Joint = 26
	LeftAnkle      Joint = 27
	RightAnkle     Joint = 28
	LeftHeel       Joint = 29
	RightHeel      Joint = 30
	LeftFootIndex  Joint = 31
	RightFootIndex Joint = 32
)

// LandmarkCount is the number of landmarks in every well-formed frame.
const LandmarkCount = 33

// #endregion joint

// #region joint-string

var jointNames = [LandmarkCount]string{
	"nose",
	"left_eye_inner", "left_eye", "left_eye_outer",
	"right_eye_inner", "right_eye", "right_eye_outer",
	"left_ear", "right_ear",
	"mouth_left", "mouth_right",
	"left_shoulder", "right_shoulder",
	"left_elbow", "right_elbow",
	"left_wrist", "right_wrist",
	"left_pinky", "right_pinky",
	"left_index", "right_index",
	"left_thumb", "right_thumb",
	"left_hip", "right_hip",
	"left_knee", "right_knee",
	"left_ankle", "right_ankle",
	"left_heel", "right_heel",
	"left_foot_index", "right_foot_index",
}

// String returns the canonical snake_case landmark name.
func (j Joint) String() string {
	if j < 0 || int(j) >= LandmarkCount {
		return "unknown_joint"
	}
	return jointNames[j]
}

// #endregion joint-string
