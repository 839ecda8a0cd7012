package menu

// Demo returns the catalogue shown when no catalogue file is supplied.
func Demo() Bar {
	return Bar{
		Label: "Demo",
		Entries: []BarEntry{
			{
				ID:    "file",
				Label: "File",
				Items: []Item{
					Action("file:new", "New").WithShortcut("ctrl+n"),
					Action("file:open", "Open…").WithShortcut("ctrl+o"),
					Submenu("file:recent", "Open Recent",
						Action("file:recent:notes", "notes.txt"),
						Action("file:recent:todo", "todo.md"),
						Submenu("file:recent:more", "More",
							Action("file:recent:more:archive", "archive.tar"),
							Action("file:recent:more:clear", "Clear List").Disable(),
						),
					),
					Action("file:save", "Save").WithShortcut("ctrl+s"),
					Separator("file:sep"),
					Action("quit", "Quit").WithShortcut("ctrl+c"),
				},
			},
			{
				ID:    "edit",
				Label: "Edit",
				Items: []Item{
					Action("edit:undo", "Undo").Disable(),
					Action("edit:cut", "Cut"),
					Action("edit:copy", "Copy"),
					Action("edit:paste", "Paste"),
				},
			},
			{
				ID:    "view",
				Label: "View",
				Items: []Item{
					Checkbox("view:autosave", "Auto Save", false),
					Checkbox("view:wordwrap", "Word Wrap", true),
					Separator("view:sep"),
					RadioGroup("view:theme", "theme", "Theme",
						Radio("view:theme:light", "Light", true),
						Radio("view:theme:dark", "Dark", false),
						Radio("view:theme:system", "System", false),
					),
				},
			},
			{
				ID:    "help",
				Label: "Help",
				Items: []Item{
					Action("help:docs", "Documentation"),
					Action("help:about", "About"),
				},
			},
		},
	}
}
