package ops

import "github.com/avtools/premiere-mcp/internal/dispatch"

func markerOps(d Deps) []dispatch.Descriptor {
	return []dispatch.Descriptor{
		{
			Name:        "add_marker",
			Description: "Add a marker to a sequence.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence to mark"),
				field("time", dispatch.TypeNumber, true, "Marker time in seconds"),
				field("name", dispatch.TypeString, false, "Marker name"),
				field("comment", dispatch.TypeString, false, "Marker comment"),
				field("duration", dispatch.TypeNumber, false, "Marker duration in seconds; 0 for a point marker"),
				enumField("color", false, "Marker color",
					"green", "red", "purple", "orange", "yellow", "white", "blue", "cyan"),
			),
			Handler: d.script("add_marker", "marker.add"),
		},
		{
			Name:        "list_markers",
			Description: "List a sequence's markers.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence to inspect"),
			),
			ReadOnly: true,
			Handler:  d.script("list_markers", "marker.list"),
		},
		{
			Name:        "delete_marker",
			Description: "Delete a marker from a sequence.",
			Contract: contract(
				field("sequenceId", dispatch.TypeString, true, "Sequence containing the marker"),
				field("markerId", dispatch.TypeString, true, "Marker to delete"),
			),
			Destructive: true,
			Handler:     d.script("delete_marker", "marker.delete"),
		},
	}
}
