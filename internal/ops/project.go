package ops

import "github.com/avtools/premiere-mcp/internal/dispatch"

func projectOps(d Deps) []dispatch.Descriptor {
	return []dispatch.Descriptor{
		{
			Name:        "create_project",
			Description: "Create a new Premiere Pro project file and open it.",
			Contract: contract(
				field("path", dispatch.TypeString, true, "Absolute path for the new .prproj file"),
				field("name", dispatch.TypeString, false, "Project display name; defaults to the file name"),
			),
			Handler: d.script("create_project", "project.create"),
		},
		{
			Name:        "open_project",
			Description: "Open an existing project file.",
			Contract: contract(
				field("path", dispatch.TypeString, true, "Absolute path to the .prproj file"),
			),
			Handler: d.script("open_project", "project.open"),
		},
		{
			Name:        "save_project",
			Description: "Save the active project.",
			Contract:    contract(),
			Handler:     d.script("save_project", "project.save"),
		},
		{
			Name:        "save_project_as",
			Description: "Save the active project to a new path.",
			Contract: contract(
				field("path", dispatch.TypeString, true, "Absolute destination path"),
			),
			Handler: d.script("save_project_as", "project.saveAs"),
		},
		{
			Name:        "get_project_info",
			Description: "Return name, path, and item counts of the active project.",
			Contract:    contract(),
			ReadOnly:    true,
			Handler:     d.script("get_project_info", "project.info"),
		},
		{
			Name:        "import_media",
			Description: "Import media files into the active project.",
			Contract: contract(
				field("paths", dispatch.TypeArray, true, "Absolute paths of the media files to import"),
				field("binId", dispatch.TypeString, false, "Target bin; defaults to the project root"),
			),
			Handler: d.script("import_media", "project.importMedia"),
		},
		{
			Name:        "import_folder",
			Description: "Import a folder of media as a bin.",
			Contract: contract(
				field("path", dispatch.TypeString, true, "Absolute path of the folder to import"),
			),
			Handler: d.script("import_folder", "project.importFolder"),
		},
		{
			Name:        "create_bin",
			Description: "Create a bin in the active project.",
			Contract: contract(
				field("name", dispatch.TypeString, true, "Bin name"),
				field("parentBinId", dispatch.TypeString, false, "Parent bin; defaults to the project root"),
			),
			Handler: d.script("create_bin", "project.createBin"),
		},
		{
			Name:        "list_bins",
			Description: "List all bins in the active project.",
			Contract:    contract(),
			ReadOnly:    true,
			Handler:     d.script("list_bins", "project.listBins"),
		},
		{
			Name:        "list_project_items",
			Description: "List project items, optionally scoped to one bin.",
			Contract: contract(
				field("binId", dispatch.TypeString, false, "Bin to list; defaults to the project root"),
			),
			ReadOnly: true,
			Handler:  d.script("list_project_items", "project.listItems"),
		},
		{
			Name:        "delete_project_item",
			Description: "Remove an item (clip or bin) from the project.",
			Contract: contract(
				field("itemId", dispatch.TypeString, true, "Project item to delete"),
			),
			Destructive: true,
			Handler:     d.script("delete_project_item", "project.deleteItem"),
		},
	}
}
