package cli

import (
	"fmt"
	"regexp"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/abhinandh-s/vimwiki-syntax/internal/ui/pretty"
)

const usageTemplate = `{{ heading "Usage:" }}
{{- if .Runnable }}
  {{ command .UseLine }}
{{- end }}
{{- if .HasAvailableSubCommands }}
  {{ command .CommandPath }} [command]
{{- end }}
{{- if gt (len .Aliases) 0 }}

{{ heading "Aliases:" }}
  {{ dim (join .Aliases ", ") }}
{{- end }}
{{- if .HasExample }}

{{ heading "Examples:" }}
{{ dim .Example }}
{{- end }}
{{- if .HasAvailableSubCommands }}

{{ heading "Commands:" }}
{{- range .Commands }}{{ if (or .IsAvailableCommand (eq .Name "help")) }}
  {{ subcommand (rpad .Name .NamePadding) }} {{ .Short }}
{{- end }}{{ end }}
{{- end }}
{{- if .HasAvailableLocalFlags }}

{{ heading "Flags:" }}
{{ flags .LocalFlags.FlagUsages }}
{{- end }}
{{- if .HasAvailableInheritedFlags }}

{{ heading "Global Flags:" }}
{{ flags .InheritedFlags.FlagUsages }}
{{- end }}
{{- if .HasAvailableSubCommands }}

Use "{{ command (print .CommandPath " [command] --help") }}" for more information about a command.
{{- end }}
`

const helpTemplate = `{{ with (or .Long .Short) }}{{ trimLines . }}

{{ end }}` + usageTemplate

// flagLine splits a pflag usage line into indent, flag names with the
// value type, padding, and description. pflag pads with at least two spaces.
var flagLine = regexp.MustCompile(`^(\s*)(-\S.*?)(\s{2,})(\S.*)$`)

// helpFormatter renders cobra help and usage text with the pretty palette.
// Styles are picked per invocation so --color and the output writer of the
// command being described are honored.
type helpFormatter struct {
	usage *template.Template
	help  *template.Template
}

func newHelpFormatter() *helpFormatter {
	// Parse once with placeholder funcs; execution swaps in styled ones.
	funcs := helpFuncs(pretty.NewStyles(false))
	return &helpFormatter{
		usage: template.Must(template.New("usage").Funcs(funcs).Parse(usageTemplate)),
		help:  template.Must(template.New("help").Funcs(funcs).Parse(helpTemplate)),
	}
}

// apply installs the formatter on cmd. Subcommands inherit it.
func (h *helpFormatter) apply(cmd *cobra.Command) {
	cmd.SetUsageFunc(func(c *cobra.Command) error {
		return h.render(h.usage, c)
	})
	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		if err := h.render(h.help, c); err != nil {
			c.PrintErrln(err)
		}
	})
}

func (h *helpFormatter) render(tmpl *template.Template, cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(helpColorMode(cmd), out))

	clone, err := tmpl.Clone()
	if err != nil {
		return fmt.Errorf("clone %s template: %w", tmpl.Name(), err)
	}
	if err := clone.Funcs(helpFuncs(styles)).Execute(out, cmd); err != nil {
		return fmt.Errorf("render %s: %w", tmpl.Name(), err)
	}
	return nil
}

// helpColorMode reads --color without requiring the flags to be valid yet.
func helpColorMode(cmd *cobra.Command) string {
	if flag := cmd.Flags().Lookup("color"); flag != nil {
		return flag.Value.String()
	}
	if flag := cmd.Root().PersistentFlags().Lookup("color"); flag != nil {
		return flag.Value.String()
	}
	return "auto"
}

func helpFuncs(styles *pretty.Styles) template.FuncMap {
	return template.FuncMap{
		"heading":    styles.Header.Render,
		"command":    styles.Bold.Render,
		"subcommand": styles.Kind.Render,
		"dim":        styles.Dim.Render,
		"flags": func(usages string) string {
			return styleFlagUsages(styles, usages)
		},
		"join":      strings.Join,
		"rpad":      rpad,
		"trimLines": trimTrailingWhitespaces,
	}
}

// styleFlagUsages colors flag names and dims value types. Continuation
// lines of long descriptions are left as they are.
func styleFlagUsages(styles *pretty.Styles, usages string) string {
	lines := strings.Split(strings.TrimSuffix(usages, "\n"), "\n")
	for i, line := range lines {
		m := flagLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}

		names := strings.Fields(m[2])
		for j, name := range names {
			if strings.HasPrefix(name, "-") {
				bare := strings.TrimSuffix(name, ",")
				names[j] = styles.Kind.Render(bare) + name[len(bare):]
			} else {
				names[j] = styles.Dim.Render(name)
			}
		}

		lines[i] = m[1] + strings.Join(names, " ") + m[3] + m[4]
	}
	return strings.Join(lines, "\n")
}

// rpad pads s with spaces to width, as cobra's own templates do.
func rpad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func trimTrailingWhitespaces(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n")
}

