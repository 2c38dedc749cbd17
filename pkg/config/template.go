package config

// FileName is the name written by "norgsyntax init" and searched for first
// during discovery.
const FileName = ".norgsyntax.yml"

// Header is the comment block placed at the top of generated config files.
const Header = `# norgsyntax configuration
# Precedence: defaults < this file < --config < NORGSYNTAX_* env < flags`

// Template returns a commented configuration file holding the defaults.
// When minimal is true, every setting is commented out so the file only
// documents the available keys.
func Template(minimal bool) []byte {
	if minimal {
		return []byte(Header + `

# File extensions picked up when walking directories
# extensions:
#   - .norg

# File patterns to ignore (glob patterns)
# ignore:
#   - "archive/**"

# Output format of "check": text or json
# format: text

# Colored output: auto, always or never
# color: auto

# Number of parallel workers (0 = auto)
# jobs: 0

# Text report details
# output:
#   hints: true
#   source: true
#   summary: true
`)
	}

	return []byte(Header + `

# File extensions picked up when walking directories
extensions:
  - .norg

# File patterns to ignore (glob patterns)
ignore: []

# Output format of "check": text or json
format: text

# Colored output: auto, always or never
color: auto

# Number of parallel workers (0 = auto)
jobs: 0

# Text report details
output:
  hints: true
  source: true
  summary: true
`)
}
