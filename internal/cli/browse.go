package cli

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/matzehuels/kbdlayout/pkg/render"
)

// keymapDirs are searched when browse is given no directory.
var keymapDirs = []string{"/usr/share/keymaps", "/usr/share/kbd/keymaps", "/lib/kbd/keymaps"}

const keymapExt = ".map"

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// browseCommand creates the browse command.
func (c *CLI) browseCommand() *cobra.Command {
	var geometriesStr, formatsStr string
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "browse [dir]",
		Short: "Pick a keymap file interactively and render it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := ""
			if len(args) == 1 {
				dir = args[0]
			}
			opts.geometries = parseList(geometriesStr, c.cfg.Geometry)
			opts.formats = parseList(formatsStr, string(render.FormatSVG))
			return c.runBrowse(cmd.Context(), dir, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output base path (default: keymap name in the current directory)")
	cmd.Flags().StringVarP(&geometriesStr, "geometry", "g", "", "keyboard geometry(s): iso, ansi (comma-separated)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), json, png, pdf (comma-separated)")

	return cmd
}

func (c *CLI) runBrowse(ctx context.Context, dir string, opts renderOpts) error {
	if dir == "" {
		dir = firstExistingDir(keymapDirs)
		if dir == "" {
			return fmt.Errorf("no keymap directory found (tried %s)", strings.Join(keymapDirs, ", "))
		}
	}

	files, err := findKeymaps(os.DirFS(dir))
	if err != nil {
		return fmt.Errorf("scan %s: %w", dir, err)
	}
	if len(files) == 0 {
		printWarning(c.Out, "No %s files under %s", keymapExt, dir)
		return nil
	}

	final, err := tea.NewProgram(NewKeymapListModel(files), tea.WithContext(ctx), tea.WithOutput(c.Err)).Run()
	if err != nil {
		return err
	}
	selected := final.(KeymapListModel).Selected
	if selected == "" {
		return nil
	}

	path := filepath.Join(dir, selected)
	if opts.output == "" {
		opts.output = strings.TrimSuffix(filepath.Base(selected), keymapExt)
	}
	opts.includeDir = systemIncludeDir(path)
	if err := c.runRender(ctx, path, opts); err != nil {
		return err
	}
	printNextStep(c.Out, "Render again", fmt.Sprintf("%s render %s", appName, path))
	return nil
}

// findKeymaps lists keymap files under fsys, sorted.
func findKeymaps(fsys fs.FS) ([]string, error) {
	var files []string
	err := fs.WalkDir(fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, keymapExt) {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files, err
}

// systemIncludeDir returns <arch>/include for a keymap stored as
// <arch>/<family>/<name>.map, or "" when there is no such directory.
func systemIncludeDir(path string) string {
	dir := filepath.Join(filepath.Dir(filepath.Dir(path)), "include")
	return firstExistingDir([]string{dir})
}

func firstExistingDir(dirs []string) string {
	for _, d := range dirs {
		if fi, err := os.Stat(d); err == nil && fi.IsDir() {
			return d
		}
	}
	return ""
}

// =============================================================================
// KeymapListModel - Interactive keymap selection
// =============================================================================

// KeymapListModel is the bubbletea model for picking a keymap file. Typing
// filters the list by substring.
type KeymapListModel struct {
	Files    []string
	Filter   string
	Cursor   int
	Offset   int
	Height   int
	Selected string
}

// NewKeymapListModel creates a new keymap list model.
func NewKeymapListModel(files []string) KeymapListModel {
	return KeymapListModel{Files: files, Height: 15}
}

// Visible returns the files matching the current filter.
func (m KeymapListModel) Visible() []string {
	if m.Filter == "" {
		return m.Files
	}
	var out []string
	for _, f := range m.Files {
		if strings.Contains(f, m.Filter) {
			out = append(out, f)
		}
	}
	return out
}

func (m KeymapListModel) Init() tea.Cmd {
	return nil
}

func (m KeymapListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		visible := m.Visible()
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyUp:
			if m.Cursor > 0 {
				m.Cursor--
			}
		case tea.KeyDown:
			if m.Cursor < len(visible)-1 {
				m.Cursor++
			}
		case tea.KeyEnter:
			if len(visible) > 0 {
				m.Selected = visible[m.Cursor]
				return m, tea.Quit
			}
		case tea.KeyBackspace:
			if m.Filter != "" {
				m.Filter = m.Filter[:len(m.Filter)-1]
				m.Cursor, m.Offset = 0, 0
			}
		case tea.KeyRunes:
			m.Filter += string(msg.Runes)
			m.Cursor, m.Offset = 0, 0
		}
	case tea.WindowSizeMsg:
		m.Height = max(msg.Height-6, 5)
	}

	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	return m, nil
}

func (m KeymapListModel) View() string {
	var b strings.Builder
	visible := m.Visible()

	b.WriteString(StyleTitle.Render("Select Keymap"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  type to filter  esc quit"))
	b.WriteString("\n")
	if m.Filter != "" {
		b.WriteString(listNormalStyle.Render("filter: " + m.Filter))
	}
	b.WriteString("\n\n")

	end := min(m.Offset+m.Height, len(visible))
	for i := m.Offset; i < end; i++ {
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render("▸ " + visible[i]))
		} else {
			b.WriteString(listNormalStyle.Render("  " + visible[i]))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(visible)), len(visible))))
	return b.String()
}
