package ops

import "github.com/avtools/premiere-mcp/internal/dispatch"

func sequenceOps(d Deps) []dispatch.Descriptor {
	return []dispatch.Descriptor{
		{
			Name:        "create_sequence",
			Description: "Create a sequence in the active project.",
			Contract: contract(
				field("name", dispatch.TypeString, true, "Sequence name"),
				field("presetPath", dispatch.TypeString, false, "Sequence preset (.sqpreset); defaults to the host default"),
			),
			Handler: d.script("create_sequence", "sequence.create"),
		},
		{
			Name:        "list_sequences",
			Description: "List sequences in the active project with their ids.",
			Contract:    contract(),
			ReadOnly:    true,
			Handler:     d.script("list_sequences", "sequence.list"),
		},
		{
			Name:        "get_sequence_info",
			Description: "Return settings, duration, and track layout of a sequence.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence to inspect"),
			),
			ReadOnly: true,
			Handler:  d.script("get_sequence_info", "sequence.info"),
		},
		{
			Name:        "set_active_sequence",
			Description: "Make a sequence the active one in the timeline panel.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence to activate"),
			),
			Handler: d.script("set_active_sequence", "sequence.activate"),
		},
		{
			Name:        "duplicate_sequence",
			Description: "Clone a sequence under a new name.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence to clone"),
				field("name", dispatch.TypeString, false, "Name for the copy"),
			),
			Handler: d.script("duplicate_sequence", "sequence.duplicate"),
		},
		{
			Name:        "delete_sequence",
			Description: "Delete a sequence from the project.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence to delete"),
			),
			Destructive: true,
			Handler:     d.script("delete_sequence", "sequence.delete"),
		},
	}
}
