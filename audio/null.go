package audio

// NullMixer is a Mixer that tracks calls without touching any real audio
// device, for headless runs (tests, CI, dedicated servers) where
// speaker.Init would fail or isn't wanted.
type NullMixer struct {
	Loaded        []string
	Played        []PlayCall
	ChannelVolume map[string]float64
	MasterVolume  float64
	Closed        bool

	nextHandle SoundHandle
}

// PlayCall records one Play invocation against a NullMixer.
type PlayCall struct {
	Handle  SoundHandle
	Channel string
}

// NewNullMixer returns a ready NullMixer with master volume at full.
func NewNullMixer() *NullMixer {
	return &NullMixer{ChannelVolume: make(map[string]float64), MasterVolume: 1}
}

func (m *NullMixer) LoadSound(path string) (SoundHandle, error) {
	m.nextHandle++
	m.Loaded = append(m.Loaded, path)
	return m.nextHandle, nil
}

func (m *NullMixer) Play(handle SoundHandle, channel string) error {
	m.Played = append(m.Played, PlayCall{Handle: handle, Channel: channel})
	return nil
}

func (m *NullMixer) SetChannelVolume(channel string, volume float64) {
	m.ChannelVolume[channel] = clampVolume(volume)
}

func (m *NullMixer) SetMasterVolume(volume float64) {
	m.MasterVolume = clampVolume(volume)
}

func (m *NullMixer) Close() error {
	m.Closed = true
	return nil
}
