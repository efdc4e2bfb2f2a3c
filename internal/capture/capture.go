// Package capture stands in for the camera, file picker and microphone.
// Each capture yields an opaque reference token; the engine only ever
// checks that a token is present, never what it points at.
package capture

import "github.com/google/uuid"

// NewVideoRef simulates a camera/file-picker capture for reading proof.
func NewVideoRef() string {
	return "blob:video/" + uuid.NewString()
}

// NewAudioRef simulates a microphone recording for English practice.
func NewAudioRef() string {
	return "blob:audio/" + uuid.NewString()
}
