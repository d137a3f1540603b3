package ops

import "github.com/avtools/premiere-mcp/internal/dispatch"

func effectOps(d Deps) []dispatch.Descriptor {
	return []dispatch.Descriptor{
		{
			Name:        "apply_effect",
			Description: "Apply a video effect to a clip by its match name.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the clip"),
				field("clipId", dispatch.TypeString, true, "Clip to affect"),
				field("effectName", dispatch.TypeString, true, "Effect match name, e.g. \"AE.ADBE Gaussian Blur 2\""),
				field("parameters", dispatch.TypeObject, false, "Initial parameter values, keyed by parameter name"),
			),
			Handler: d.script("apply_effect", "effect.apply"),
		},
		{
			Name:        "remove_effect",
			Description: "Remove an applied effect from a clip.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the clip"),
				field("clipId", dispatch.TypeString, true, "Clip to strip"),
				field("effectName", dispatch.TypeString, true, "Effect match name to remove"),
			),
			Handler: d.script("remove_effect", "effect.remove"),
		},
		{
			Name:        "list_applied_effects",
			Description: "List the effects applied to a clip.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the clip"),
				field("clipId", dispatch.TypeString, true, "Clip to inspect"),
			),
			ReadOnly: true,
			Handler:  d.script("list_applied_effects", "effect.list"),
		},
		{
			Name:        "apply_transition",
			Description: "Apply a transition at a clip edge.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the clip"),
				field("clipId", dispatch.TypeString, true, "Clip receiving the transition"),
				field("transitionName", dispatch.TypeString, true, "Transition match name, e.g. \"Cross Dissolve\""),
				enumField("edge", true, "Which edge of the clip", "start", "end"),
				field("duration", dispatch.TypeNumber, false, "Transition duration in seconds"),
			),
			Handler: d.script("apply_transition", "effect.applyTransition"),
		},
		{
			Name:        "set_clip_opacity",
			Description: "Set a clip's opacity.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the clip"),
				field("clipId", dispatch.TypeString, true, "Clip to adjust"),
				field("opacity", dispatch.TypeNumber, true, "Opacity from 0 to 100"),
			),
			Handler: d.script("set_clip_opacity", "effect.setOpacity"),
		},
		{
			Name:        "set_clip_position_scale",
			Description: "Set a clip's motion position and scale.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the clip"),
				field("clipId", dispatch.TypeString, true, "Clip to adjust"),
				field("x", dispatch.TypeNumber, false, "Horizontal position, 0..1 frame-relative"),
				field("y", dispatch.TypeNumber, false, "Vertical position, 0..1 frame-relative"),
				field("scale", dispatch.TypeNumber, false, "Scale percentage; 100 is native size"),
			),
			Handler: d.script("set_clip_position_scale", "effect.setMotion"),
		},
	}
}
