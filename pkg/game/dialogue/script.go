package dialogue

import "github.com/leonelquinteros/gotext"

// Speaker names for the two scientists.
const (
	SpeakerVega   = "Dr. Elena Vega"
	SpeakerPatel  = "Dr. Arun Patel"
	SpeakerSystem = "System"
)

// OpeningBriefing returns the lines queued when the lab boots.
func OpeningBriefing() []Line {
	return []Line{
		{SpeakerVega, gotext.Get("Systems nominal. Dr. Patel, ready to bring the Quantum Lab online?")},
		{SpeakerPatel, gotext.Get("Always. Once the prototype array spins up we can prove the UNIVERSE CONNECTED FOR EVERYONE thesis.")},
		{SpeakerVega, gotext.Get("Any anomalies become teachable moments—perfect for onboarding our new field operator.")},
	}
}

// HallwayTransition returns the beat played while walking to the next room.
func HallwayTransition(roomName string) []Line {
	return []Line{
		{SpeakerPatel, gotext.Get("Next stop: %s. Let's translate theory into puzzles.", roomName)},
	}
}

// CodexRecap returns the debrief text shown after the final room.
func CodexRecap() string {
	return gotext.Get("Level Recap — The Quantum Lab: We collapsed a superposed doorway with a detector, synced entangled switches across distance, balanced focus and spread to honor the uncertainty principle, and tuned wave energy until tunneling succeeded. Quantum behaviors make intuitive sense when you choreograph the lab around them.")
}

// FinalDebrief returns the lines queued when the last room is completed.
func FinalDebrief() []Line {
	return []Line{
		{SpeakerVega, gotext.Get("Tutorial complete. Let's debrief with the codex.")},
		{SpeakerSystem, CodexRecap()},
	}
}
