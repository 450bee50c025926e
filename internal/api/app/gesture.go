package app

import "github.com/kazukinakai/neural-translator/internal/gesture"

// GestureAPI is the delivery point for raw key-combo observations from the
// global input hook. Each call is one raw tap; a confirmed double-tap makes
// the detector emit its application event.
type GestureAPI struct{ det *gesture.Detector }

func NewGestureAPI(det *gesture.Detector) *GestureAPI { return &GestureAPI{det: det} }

// Tap reports whether this tap confirmed a double-tap.
func (a *GestureAPI) Tap() (bool, error) {
	return a.det.Tap(), nil
}
