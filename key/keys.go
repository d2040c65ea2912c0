// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Style Sheet Resolution - these keys locate the file that named styles are loaded from.
const (
	SheetPath = "sheet.path"
)

// Rendering - these keys govern how decoration chains are assembled and rendered on the command line.
const (
	RenderWrap = "render.wrap"
)

// Preview - these keys configure the interactive preview.
const (
	PreviewMouse = "preview.mouse"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these flags and settings govern the non-TUI application behavior.
const (
	CliColored = "cli.colored"
)
