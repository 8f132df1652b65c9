package components

import (
	"github.com/alexisbeaulieu97/panelkit/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap.
type Stack struct {
	BaseComponent
	children  []ui.Renderable
	direction Direction
	gap       int
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children}
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return &Stack{BaseComponent: NewBaseComponent(), children: children, direction: DirectionHorizontal}
}

// WithGap sets the spacing between children.
func (s *Stack) WithGap(gap int) *Stack {
	s.gap = gap
	return s
}

// WithAppliers adds theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.AddAppliers(appliers...)
	return s
}

// Add appends children to the stack.
func (s *Stack) Add(children ...ui.Renderable) *Stack {
	s.children = append(s.children, children...)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}

// View renders the stack with the default context.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack and its children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := RenderChild(child, ctx); view != "" {
			views = append(views, view)
		}
	}
	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}
	if s.direction == DirectionHorizontal {
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, s.withGap(views, HorizontalSpacer(s.gap).View())...))
	}
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, s.withGap(views, VerticalSpacer(s.gap).View())...))
}

func (s *Stack) withGap(views []string, spacer string) []string {
	if s.gap <= 0 {
		return views
	}
	out := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			out = append(out, spacer)
		}
		out = append(out, view)
	}
	return out
}

// Cell is one region of a Column. Shrink cells take their content height;
// the others share whatever height is left.
type Cell struct {
	ID      string
	Classes Classes
	Shrink  bool
	Content ui.Renderable
}

// View renders the cell with the default context.
func (c *Cell) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the cell content styled by its classes.
func (c *Cell) ViewWithContext(ctx RenderContext) string {
	return c.render(ctx, -1)
}

func (c *Cell) render(ctx RenderContext, height int) string {
	style := ctx.Theme.Style(c.Classes)
	inner := ctx
	if ctx.Constraints.HasWidth() {
		width := max(ctx.Constraints.MaxWidth-style.GetHorizontalMargins()-style.GetHorizontalBorderSize(), 0)
		style = style.Width(width)
		inner = ctx.WithConstraints(Constraints{MaxWidth: max(width-style.GetHorizontalPadding(), 0), MaxHeight: -1})
	}
	content := RenderChild(c.Content, inner)
	if height >= 0 {
		h := max(height-style.GetVerticalMargins()-style.GetVerticalBorderSize(), 0)
		style = style.Height(h).MaxHeight(height)
	}
	return style.Render(content)
}

// Column stacks cells vertically and, when the context bounds the height,
// fills it by growing the non-shrink cells.
type Column struct {
	BaseComponent
	cells []*Cell
}

// NewColumn creates a column of cells.
func NewColumn(cells ...*Cell) *Column {
	return &Column{BaseComponent: NewBaseComponent(), cells: cells}
}

// Cells returns the column's cells.
func (c *Column) Cells() []*Cell {
	return c.cells
}

// View renders the column with the default context.
func (c *Column) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders every cell top to bottom.
func (c *Column) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme)
	views := make([]string, len(c.cells))

	remaining := -1
	if ctx.Constraints.HasHeight() {
		remaining = ctx.Constraints.MaxHeight - style.GetVerticalFrameSize()
	}

	growing := 0
	for i, cell := range c.cells {
		if !cell.Shrink {
			growing++
			continue
		}
		views[i] = cell.render(ctx, -1)
		if remaining >= 0 {
			remaining -= lipgloss.Height(views[i])
		}
	}

	for i, cell := range c.cells {
		if cell.Shrink {
			continue
		}
		height := -1
		if remaining >= 0 && growing > 0 {
			height = remaining / growing
			if height < 0 {
				height = 0
			}
			remaining -= height
			growing--
		}
		views[i] = cell.render(ctx, height)
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, views...))
}
