package pose

// COCO body part indices as emitted by the 18-part OpenPose model.
var cocoJoints = map[int]Joint{
	0:  Nose,
	1:  Neck,
	2:  RightShoulder,
	3:  RightElbow,
	4:  RightWrist,
	5:  LeftShoulder,
	6:  LeftElbow,
	7:  LeftWrist,
	8:  RightHip,
	11: LeftHip,
}

// COCOParts is the number of body heatmaps in the COCO model output.
const COCOParts = 18

// Peak is the strongest response of one part heatmap, in heatmap cells.
type Peak struct {
	Part       int
	X, Y       int
	Confidence float64
}

// FromPeaks builds a skeleton out of heatmap peaks on a w×h grid. Parts the
// game does not use and peaks under minConfidence are dropped; a result with
// no joints is returned as nil.
func FromPeaks(peaks []Peak, w, h int, minConfidence float64) Skeleton {
	if w <= 0 || h <= 0 {
		return nil
	}
	var s Skeleton
	for _, p := range peaks {
		j, ok := cocoJoints[p.Part]
		if !ok || p.Confidence <= minConfidence {
			continue
		}
		if s == nil {
			s = make(Skeleton)
		}
		// Центр ячейки, а не её угол.
		s[j] = Landmark{
			X: (float64(p.X) + 0.5) / float64(w),
			Y: (float64(p.Y) + 0.5) / float64(h),
		}
	}
	return s
}
