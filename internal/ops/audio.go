package ops

import "github.com/avtools/premiere-mcp/internal/dispatch"

func audioOps(d Deps) []dispatch.Descriptor {
	return []dispatch.Descriptor{
		{
			Name:        "set_clip_volume",
			Description: "Set an audio clip's level in decibels.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the clip"),
				field("clipId", dispatch.TypeString, true, "Audio clip to adjust"),
				field("level", dispatch.TypeNumber, true, "Level in dB; 0 is unity gain"),
			),
			Handler: d.script("set_clip_volume", "audio.setClipLevel"),
		},
		{
			Name:        "set_track_volume",
			Description: "Set an audio track's level in decibels.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the track"),
				field("trackIndex", dispatch.TypeInteger, true, "Zero-based audio track index"),
				field("level", dispatch.TypeNumber, true, "Level in dB; 0 is unity gain"),
			),
			Handler: d.script("set_track_volume", "audio.setTrackLevel"),
		},
		{
			Name:        "mute_track",
			Description: "Mute or unmute a track.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the track"),
				field("trackIndex", dispatch.TypeInteger, true, "Zero-based track index"),
				enumField("trackType", false, "Track kind; defaults to audio", "video", "audio"),
				field("mute", dispatch.TypeBoolean, true, "True to mute, false to unmute"),
			),
			Handler: d.script("mute_track", "audio.muteTrack"),
		},
		{
			Name:        "add_audio_track",
			Description: "Append an audio track to a sequence.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence to extend"),
			),
			Handler: d.script("add_audio_track", "audio.addTrack"),
		},
	}
}
