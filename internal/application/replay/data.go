package replay

import "github.com/younwookim/platformer/internal/application/system"

// Version is written into every recording
const Version = "2.0"

// FrameInput records the decoded intent for a single tick
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Move left
	R  bool `json:"r,omitempty"`  // Move right
	JP bool `json:"jp,omitempty"` // JumpPressed
	JR bool `json:"jr,omitempty"` // JumpReleased
}

// ReplayData contains all data needed to replay a session
type ReplayData struct {
	Version   string       `json:"version"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// FrameFromIntent encodes an intent for frame f
func FrameFromIntent(f int, in system.Intent) FrameInput {
	return FrameInput{
		F:  f,
		L:  in.Horizontal == system.DirLeft,
		R:  in.Horizontal == system.DirRight,
		JP: in.JumpPressed,
		JR: in.JumpReleased,
	}
}

// Intent decodes the frame back into the intent that was recorded
func (fi FrameInput) Intent() system.Intent {
	return system.Intent{
		JumpPressed:  fi.JP,
		JumpReleased: fi.JR,
		Horizontal:   system.HorizontalFromKeys(fi.L, fi.R),
	}
}
