package internal

import "github.com/pkg/errors"

// Threading errors up through every nested loop of the scene and SVG parsers
// would bury the parsing logic. Instead, the parsers panic with a SceneError,
// and the public loaders recover to convert it to an error. The geometry
// functions never panic.

// Wrapped in a struct so that runtime errors (which are also errors) are not
// mistaken for parse failures.
type SceneError struct {
	error
}

// Panic with a SceneError.
func fatalf(format string, args ...interface{}) {
	panic(SceneError{errors.Errorf(format, args...)})
}

func HandleScenePanicRecover(r interface{}) error {
	if r != nil {
		if sceneError, ok := r.(SceneError); ok {
			return sceneError
		}
		panic(r)
	}
	return nil
}
