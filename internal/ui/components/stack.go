package components

import (
	"strings"

	"github.com/alexisbeaulieu97/showcase/internal/ui"
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
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context. Horizontal stacks
// split the available width evenly between children.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx
	if s.direction == DirectionHorizontal && ctx.Constraints.HasWidth() && len(s.children) > 0 {
		available := ctx.Constraints.MaxWidth - s.gap*(len(s.children)-1)
		if available > 0 {
			childCtx = ctx.WithConstraints(WithMaxWidth(available / len(s.children)))
		}
	}

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if view := Render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}

	if s.direction == DirectionHorizontal {
		return style.Render(s.joinHorizontal(views))
	}
	return style.Render(s.joinVertical(views))
}

func (s *Stack) joinVertical(views []string) string {
	if s.gap == 0 {
		return lipgloss.JoinVertical(s.crossAlign.position(), views...)
	}

	// An empty string is one blank line, so gap-1 newlines give gap lines.
	spacer := strings.Repeat("\n", s.gap-1)
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinVertical(s.crossAlign.position(), parts...)
}

func (s *Stack) joinHorizontal(views []string) string {
	if s.gap == 0 {
		return lipgloss.JoinHorizontal(lipgloss.Top, views...)
	}

	spacer := strings.Repeat(" ", s.gap)
	parts := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			parts = append(parts, spacer)
		}
		parts = append(parts, view)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children, in lines or columns.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment of vertical stacks.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithAppliers applies theme-based style modifiers.
func (s *Stack) WithAppliers(appliers ...StyleFunc) *Stack {
	s.SetAppliers(appliers...)
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
