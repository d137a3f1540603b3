package ops

import "github.com/avtools/premiere-mcp/internal/dispatch"

func timelineOps(d Deps) []dispatch.Descriptor {
	return []dispatch.Descriptor{
		{
			Name:        "add_to_timeline",
			Description: "Insert a project item into a sequence track at a given time.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Target sequence"),
				field("projectItemId", dispatch.TypeString, true, "Project item to insert"),
				field("trackIndex", dispatch.TypeInteger, true, "Zero-based track index"),
				field("time", dispatch.TypeNumber, true, "Insertion time in seconds"),
				enumField("trackType", false, "Track kind; defaults to video", "video", "audio"),
				field("overwrite", dispatch.TypeBoolean, false, "Overwrite instead of insert"),
			),
			Handler: d.script("add_to_timeline", "timeline.add"),
		},
		{
			Name:        "remove_from_timeline",
			Description: "Remove a clip from a sequence.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the clip"),
				field("clipId", dispatch.TypeString, true, "Clip to remove"),
				field("ripple", dispatch.TypeBoolean, false, "Close the resulting gap"),
			),
			Destructive: true,
			Handler:     d.script("remove_from_timeline", "timeline.remove"),
		},
		{
			Name:        "get_timeline_clips",
			Description: "List clips on a sequence's tracks with their in/out points.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence to inspect"),
				enumField("trackType", false, "Restrict to one track kind", "video", "audio"),
			),
			ReadOnly: true,
			Handler:  d.script("get_timeline_clips", "timeline.clips"),
		},
		{
			Name:        "move_clip",
			Description: "Move a clip to a new time and/or track.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the clip"),
				field("clipId", dispatch.TypeString, true, "Clip to move"),
				field("time", dispatch.TypeNumber, true, "New start time in seconds"),
				field("trackIndex", dispatch.TypeInteger, false, "New track; defaults to the current one"),
			),
			Handler: d.script("move_clip", "timeline.move"),
		},
		{
			Name:        "trim_clip",
			Description: "Adjust a clip's in and/or out point.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the clip"),
				field("clipId", dispatch.TypeString, true, "Clip to trim"),
				field("inPoint", dispatch.TypeNumber, false, "New in point in seconds"),
				field("outPoint", dispatch.TypeNumber, false, "New out point in seconds"),
			),
			Handler: d.script("trim_clip", "timeline.trim"),
		},
		{
			Name:        "split_clip",
			Description: "Split a clip at a time, producing two clips.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the clip"),
				field("clipId", dispatch.TypeString, true, "Clip to split"),
				field("time", dispatch.TypeNumber, true, "Split time in seconds"),
			),
			Handler: d.script("split_clip", "timeline.split"),
		},
		{
			Name:        "razor_at_time",
			Description: "Razor every track of a sequence at a time.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence to cut"),
				field("time", dispatch.TypeNumber, true, "Cut time in seconds"),
			),
			Handler: d.script("razor_at_time", "timeline.razor"),
		},
		{
			Name:        "set_clip_speed",
			Description: "Change a clip's playback speed.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the clip"),
				field("clipId", dispatch.TypeString, true, "Clip to retime"),
				field("speed", dispatch.TypeNumber, true, "Speed multiplier; 1.0 is normal, negative reverses"),
				field("ripple", dispatch.TypeBoolean, false, "Shift later clips to fit the new duration"),
			),
			Handler: d.script("set_clip_speed", "timeline.setSpeed"),
		},
	}
}
