package catalog

// FrenchVoice identifies an Azure neural voice used for audio synthesis.
type FrenchVoice string

const (
	VoiceDenise   FrenchVoice = "fr-FR-DeniseNeural"
	VoiceHenri    FrenchVoice = "fr-FR-HenriNeural"
	VoiceEloise   FrenchVoice = "fr-FR-EloiseNeural"
	VoiceVivienne FrenchVoice = "fr-FR-VivienneMultilingualNeural"
	VoiceRemy     FrenchVoice = "fr-FR-RemyMultilingualNeural"
)

// AllFrenchVoices returns the voice pool a generation run picks from.
func AllFrenchVoices() []FrenchVoice {
	return []FrenchVoice{
		VoiceDenise,
		VoiceHenri,
		VoiceEloise,
		VoiceVivienne,
		VoiceRemy,
	}
}
