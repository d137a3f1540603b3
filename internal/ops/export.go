package ops

import "github.com/avtools/premiere-mcp/internal/dispatch"

func exportOps(d Deps) []dispatch.Descriptor {
	return []dispatch.Descriptor{
		{
			Name:        "export_sequence",
			Description: "Render a sequence to a media file via Adobe Media Encoder.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence to render"),
				field("outputPath", dispatch.TypeString, true, "Absolute destination path"),
				field("presetPath", dispatch.TypeString, false, "Encoder preset (.epr); defaults to the host default"),
				enumField("range", false, "What to render; defaults to the whole sequence", "entire", "inout", "workarea"),
			),
			Handler: d.script("export_sequence", "export.sequence"),
		},
		{
			Name:        "export_frame",
			Description: "Export a single frame of a sequence as a still image.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence to sample"),
				field("time", dispatch.TypeNumber, true, "Frame time in seconds"),
				field("outputPath", dispatch.TypeString, true, "Absolute destination path"),
				enumField("format", false, "Still format; defaults to png", "png", "jpeg", "tiff"),
			),
			Handler: d.script("export_frame", "export.frame"),
		},
		{
			Name:        "list_export_presets",
			Description: "List the encoder presets known to the host.",
			Contract:    contract(),
			ReadOnly:    true,
			Handler:     d.script("list_export_presets", "export.listPresets"),
		},
	}
}
