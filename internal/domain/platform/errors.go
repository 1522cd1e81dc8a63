package platform

import "errors"

var (
	ErrPlatformNotFound = errors.New("platform not found")
	ErrPlatformInUse    = errors.New("platform is referenced by games")
)
