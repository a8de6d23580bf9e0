package ports

// SoundPlayer plays notification sounds
type SoundPlayer interface {
	// PlaySound plays the default notification sound
	PlaySound() error

	// PlaySoundForEvent plays a sound for a specific phase event (work, break, complete, cancel)
	PlaySoundForEvent(eventType string) error
}
