package core

import (
	"errors"
)

var (
	ErrDegenerateHexahedron = errors.New("all the vertices of the hexahedron coincide")
	ErrNullPlane            = errors.New("plane normal is null")
	ErrNullOutputBuffer     = errors.New("output buffer is nil")
	ErrUnknownShape         = errors.New("unknown shape")
	ErrUnknownQuery         = errors.New("unknown query kind")
	ErrInvalidScene         = errors.New("invalid scene")
)
