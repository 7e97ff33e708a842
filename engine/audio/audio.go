package audio

// Silent is the audio device used when no mixer is available.
// Sounds load and play without producing output.
type Silent struct{}

func NewSilent() *Silent { return &Silent{} }

// Sound is a handle to a loaded clip.
type Sound struct {
	Path   string
	Volume float32
}

func (*Silent) NewSound(path string) *Sound { return &Sound{Path: path, Volume: 1} }

// Play returns an id identifying the playback instance; Silent always returns 0.
func (*Silent) Play(s *Sound) int64 { return 0 }

func (*Silent) Dispose() {}
