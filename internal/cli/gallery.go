package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mkoester/lightbox/pkg/gallery"
	"github.com/mkoester/lightbox/pkg/gallery/schedule"
	"github.com/mkoester/lightbox/pkg/gallery/window"
	"github.com/mkoester/lightbox/pkg/library"
	"github.com/mkoester/lightbox/pkg/pipeline"
	"github.com/mkoester/lightbox/pkg/viewstate"
)

// Terminal cells map to layout pixels at a fixed scale so the preview
// geometry tracks the real engine output.
const (
	pxPerColumn = 8.0
	pxPerRow    = 24.0
)

// modeCycle is the order the m key steps through.
var modeCycle = []gallery.Mode{
	gallery.ModeAdaptive,
	gallery.ModeGrid,
	gallery.ModeMasonry,
	gallery.ModeList,
}

// galleryCommand creates the interactive gallery preview command.
func (c *CLI) galleryCommand() *cobra.Command {
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "gallery <directory>",
		Short: "Browse a library interactively in the terminal",
		Long: `Browse a library interactively in the terminal.

The gallery command scans a directory and opens a terminal preview of the
computed layout. Layouts are recomputed off the UI loop on every change;
only the newest request wins, and only the visible viewport is drawn.

Keys:
  up/down, pgup/pgdn  scroll
  m                   cycle layout mode
  p                   toggle people view (grouped)
  c                   collapse/expand the group at the top of the viewport
  q                   quit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Root = args[0]
			return c.runGallery(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Recursive, "recursive", "r", false, "descend into subdirectories")
	cmd.Flags().BoolVar(&opts.ProbeExif, "exif", false, "read EXIF orientation from JPEG files")

	return cmd
}

// runGallery scans the library and runs the bubbletea program.
func (c *CLI) runGallery(ctx context.Context, opts pipeline.Options) error {
	runner, err := c.newRunner(false)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()
	opts.Logger = c.Logger

	prog := newProgress(loggerFromContext(ctx))
	lib, err := runner.Scan(ctx, opts)
	if err != nil {
		return fmt.Errorf("scan %s: %w", opts.Root, err)
	}
	prog.done(fmt.Sprintf("Scanned %d items", lib.Len()))
	if lib.Len() == 0 {
		printInfo("No images found in %s", opts.Root)
		return nil
	}

	model := newGalleryModel(lib, opts)
	defer model.sched.Close()

	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	return err
}

// =============================================================================
// Model
// =============================================================================

// layoutMsg delivers a freshly computed layout to the UI loop.
type layoutMsg gallery.LayoutResult

type galleryModel struct {
	lib   *library.Library
	sched *schedule.Scheduler
	mgr   *viewstate.Manager
	opts  pipeline.Options

	layout    gallery.LayoutResult
	modeIdx   int
	people    bool
	scrollTop float64
	width     float64
	viewportH float64
	rows      int
}

func newGalleryModel(lib *library.Library, opts pipeline.Options) *galleryModel {
	return &galleryModel{
		lib:   lib,
		sched: schedule.New(opts.Logger),
		mgr:   viewstate.NewManager(nil),
		opts:  opts,
	}
}

func (m *galleryModel) Init() tea.Cmd {
	return m.waitForLayout()
}

// waitForLayout blocks on the scheduler's results channel and converts the
// next layout into a message.
func (m *galleryModel) waitForLayout() tea.Cmd {
	return func() tea.Msg {
		result, ok := <-m.sched.Results()
		if !ok {
			return nil
		}
		return layoutMsg(result)
	}
}

// submit posts the current layout request. Latest-wins semantics make this
// safe to call on every keystroke.
func (m *galleryModel) submit() {
	m.opts.Mode = string(modeCycle[m.modeIdx])
	if m.people {
		m.opts.View = string(gallery.ViewPeople)
		m.opts.Grouped = true
	} else {
		m.opts.View = string(gallery.ViewContent)
		m.opts.Grouped = false
	}
	m.opts.Collapsed = map[string]bool(m.mgr.Snapshot())
	m.opts.ContainerWidth = m.width

	m.sched.Submit(pipeline.BuildInput(m.lib, m.opts))
}

func (m *galleryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case layoutMsg:
		m.layout = gallery.LayoutResult(msg)
		m.clampScroll()
		return m, m.waitForLayout()

	case tea.WindowSizeMsg:
		m.rows = msg.Height
		m.width = float64(msg.Width) * pxPerColumn
		m.viewportH = float64(msg.Height-3) * pxPerRow
		m.submit()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			m.scrollTop -= pxPerRow * 2
			m.clampScroll()
		case "down", "j":
			m.scrollTop += pxPerRow * 2
			m.clampScroll()
		case "pgup":
			m.scrollTop -= m.viewportH
			m.clampScroll()
		case "pgdown", "pgdn":
			m.scrollTop += m.viewportH
			m.clampScroll()
		case "m":
			m.modeIdx = (m.modeIdx + 1) % len(modeCycle)
			m.submit()
		case "p":
			m.people = !m.people
			m.submit()
		case "c":
			if id := m.topHeaderID(); id != "" {
				m.mgr.Toggle(id)
				m.submit()
			}
		}
	}
	return m, nil
}

// clampScroll keeps the viewport inside the layout.
func (m *galleryModel) clampScroll() {
	max := m.layout.TotalHeight - m.viewportH
	if max < 0 {
		max = 0
	}
	if m.scrollTop > max {
		m.scrollTop = max
	}
	if m.scrollTop < 0 {
		m.scrollTop = 0
	}
}

// topHeaderID returns the first group header at or below the viewport top,
// so the c key collapses what the user is looking at.
func (m *galleryModel) topHeaderID() string {
	for _, it := range window.Visible(m.layout.Layout, m.scrollTop, m.viewportH, 0) {
		if gallery.IsHeaderID(it.ID) {
			return it.ID
		}
	}
	return ""
}

func (m *galleryModel) View() string {
	header := StyleTitle.Render("lightbox") + "  " +
		StyleDim.Render(fmt.Sprintf("mode:%s  view:%s  items:%d  height:%.0f  scroll:%.0f",
			m.opts.Mode, m.opts.View, m.lib.Len(), m.layout.TotalHeight, m.scrollTop))
	help := StyleDim.Render("↑/↓ scroll  m mode  p people  c collapse  q quit")

	body := m.renderViewport()
	return header + "\n" + body + "\n" + help
}

// renderViewport draws only the windowed slice of the layout, one line per
// item, positioned by its pixel geometry.
func (m *galleryModel) renderViewport() string {
	visible := window.Visible(m.layout.Layout, m.scrollTop, m.viewportH, 0)
	names := m.lib.Names()

	lines := m.rows - 3
	if lines < 1 {
		lines = 1
	}
	grid := make([]string, lines)

	for _, it := range visible {
		row := int((it.Y - m.scrollTop) / pxPerRow)
		if row < 0 || row >= lines {
			continue
		}
		indent := int(it.X / pxPerColumn)

		label := names[it.ID]
		if label == "" {
			label = it.ID
		}
		cell := fmt.Sprintf("%*s[%s %.0fx%.0f]", indent, "", label, it.Width, it.Height)

		if gallery.IsHeaderID(it.ID) {
			collapsed := ""
			if m.mgr.IsCollapsed(it.ID) {
				collapsed = " (collapsed)"
			}
			cell = StyleTitle.Render(fmt.Sprintf("%*s== %s%s ==", indent, "", label, collapsed))
		} else if grid[row] != "" {
			cell = grid[row] + " " + StyleValue.Render(fmt.Sprintf("[%s]", label))
			grid[row] = cell
			continue
		}
		grid[row] = cell
	}

	out := ""
	for _, line := range grid {
		out += line + "\n"
	}
	return out
}
