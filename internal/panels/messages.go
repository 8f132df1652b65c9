package panels

// FrameMsg advances the running transition by one frame. Frames carrying an
// old sequence number are ignored.
type FrameMsg struct {
	Seq uint64
}

// TransitionCompleteMsg reports that the arranger settled. It only takes
// effect when Seq still names the current transition.
type TransitionCompleteMsg struct {
	Seq  uint64
	From int
	To   int
}
