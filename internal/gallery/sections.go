package gallery

import (
	"fmt"
	"strings"
)

// ShowcaseSection enumerates the tabs of the component preview widget.
type ShowcaseSection int

const (
	SectionForm ShowcaseSection = iota
	SectionData
	SectionFeedback
	SectionLayout
)

// ShowcaseSections lists every showcase section in display order.
func ShowcaseSections() []ShowcaseSection {
	return []ShowcaseSection{SectionForm, SectionData, SectionFeedback, SectionLayout}
}

func (s ShowcaseSection) String() string {
	switch s {
	case SectionForm:
		return "form"
	case SectionData:
		return "data"
	case SectionFeedback:
		return "feedback"
	case SectionLayout:
		return "layout"
	default:
		return fmt.Sprintf("showcase(%d)", int(s))
	}
}

// Title is the tab trigger label.
func (s ShowcaseSection) Title() string {
	switch s {
	case SectionForm:
		return "Form"
	case SectionData:
		return "Data"
	case SectionFeedback:
		return "Feedback"
	case SectionLayout:
		return "Layout"
	default:
		return s.String()
	}
}

// ParseShowcaseSection maps a section key such as "data" to its value.
func ParseShowcaseSection(value string) (ShowcaseSection, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	for _, section := range ShowcaseSections() {
		if section.String() == key {
			return section, nil
		}
	}
	return SectionForm, fmt.Errorf("%w: unknown showcase section %q", ErrInvalidSections, value)
}

// QuickStartSection enumerates the tabs of the quick start widget.
type QuickStartSection int

const (
	SectionSetup QuickStartSection = iota
	SectionInstall
	SectionUsage
)

// QuickStartSections lists every quick start section in display order.
func QuickStartSections() []QuickStartSection {
	return []QuickStartSection{SectionSetup, SectionInstall, SectionUsage}
}

func (s QuickStartSection) String() string {
	switch s {
	case SectionSetup:
		return "setup"
	case SectionInstall:
		return "install"
	case SectionUsage:
		return "usage"
	default:
		return fmt.Sprintf("quickstart(%d)", int(s))
	}
}

// Title is the tab trigger label.
func (s QuickStartSection) Title() string {
	switch s {
	case SectionSetup:
		return "Setup"
	case SectionInstall:
		return "Installation"
	case SectionUsage:
		return "Usage"
	default:
		return s.String()
	}
}

// ParseQuickStartSection maps a section key such as "install" to its value.
func ParseQuickStartSection(value string) (QuickStartSection, error) {
	key := strings.ToLower(strings.TrimSpace(value))
	for _, section := range QuickStartSections() {
		if section.String() == key {
			return section, nil
		}
	}
	return SectionSetup, fmt.Errorf("%w: unknown quick start section %q", ErrInvalidSections, value)
}
