package guidraw

import "errors"

// Errors returned by the renderer. They are wrapped with context, so
// compare with errors.Is.
var (
	// ErrResourceCreation reports that a shader program, GPU buffer or
	// texture could not be created. There is no degraded mode.
	ErrResourceCreation = errors.New("guidraw: gpu resource creation failed")

	// ErrTextureNotFound reports a handle outside 1..Len() of the texture
	// registry. During Render it means the GUI library and the registry
	// are out of sync, and the frame is aborted.
	ErrTextureNotFound = errors.New("guidraw: texture handle not registered")

	// ErrCapacityOverflow reports that a frame's geometry does not fit the
	// staging buffers, either during conversion or when a command's index
	// range runs past the index capacity.
	ErrCapacityOverflow = errors.New("guidraw: staging capacity exceeded")

	// ErrDrawFailed reports a failed draw call. The rest of the frame is
	// dropped; the next frame starts from freshly invalidated buffers.
	ErrDrawFailed = errors.New("guidraw: draw call failed")

	// ErrInvalidImage reports pixel data that does not match width*height*4.
	ErrInvalidImage = errors.New("guidraw: invalid RGBA8 image")

	// ErrBufferFull is returned by a fixed Buffer when a write would exceed
	// its capacity.
	ErrBufferFull = errors.New("guidraw: fixed buffer full")

	// ErrInvalidLayout reports a vertex layout that does not fit its stride.
	ErrInvalidLayout = errors.New("guidraw: invalid vertex layout")
)
