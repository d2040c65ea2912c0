package constant

// Sheet file names and formats recognized when no explicit sheet path is configured.
const (
	SheetName = "styles"
)

// SheetTypes lists the file extensions a style sheet may use, in lookup order.
var SheetTypes = []string{"toml", "yaml", "yml", "json"}

// SampleText is rendered by commands that preview a style without user-supplied text.
const SampleText = "The quick brown fox"
