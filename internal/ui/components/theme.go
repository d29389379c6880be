package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantDisplay
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantMuted
	TypographyVariantLabel
	TypographyVariantCode
	TypographyVariantEmphasis
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

type InputState int

const (
	InputStateDefault InputState = iota
	InputStateFocus
)

// ThemeName selects one of the built-in themes.
type ThemeName string

const (
	ThemeAuto  ThemeName = "auto"
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
)

// ColourSet pairs a surface colour with the text colour that reads on it.
//
//   - Base: background or brand colour
//   - OnBase: text drawn on Base
//   - Muted: secondary text drawn on Base
type ColourSet struct {
	Base   lipgloss.TerminalColor
	OnBase lipgloss.TerminalColor
	Muted  lipgloss.TerminalColor
}

// Palette describes the semantic colour slots used by components.
type Palette struct {
	Background  ColourSet
	Card        ColourSet
	Primary     ColourSet
	Secondary   ColourSet
	Muted       ColourSet
	Accent      ColourSet
	Destructive ColourSet
	Success     ColourSet
	Border      lipgloss.TerminalColor
	Ring        lipgloss.TerminalColor
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Display  lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Label    lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style
}

// InputStyles describes default/focus styles for input controls.
type InputStyles struct {
	Default lipgloss.Style
	Focus   lipgloss.Style
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[interface{}]StyleStrategy
}

// NewVariantRegistry creates a new variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{
		strategies: make(map[interface{}]StyleStrategy),
	}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant interface{}, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant interface{}) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of styling tokens. Build one with DefaultTheme,
// LightTheme, DarkTheme or ThemeByName and pass it through RenderContext.
type Theme struct {
	Name       ThemeName
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Input      InputStyles
	Variants   *VariantRegistry
}

// Normalize returns a new theme with all fields properly initialized.
func (t Theme) Normalize() Theme {
	t.Spacing = normalizeSpacingConfig(t.Spacing)
	if t.Variants == nil {
		t.Variants = newVariants()
	}
	return t
}

func normalizeSpacingConfig(cfg SpacingConfig) SpacingConfig {
	if spacingTableIsZero(cfg.Padding) {
		cfg.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(cfg.Margin) {
		cfg.Margin = defaultSpacingTable()
	}
	return cfg
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

// Terminal cells are tall, so the scale is much tighter than a CSS one.
func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      1,
		SpacingSizeMedium:     2,
		SpacingSizeLarge:      3,
		SpacingSizeExtraLarge: 4,
	}
}

type swatch struct {
	light string
	dark  string
}

var (
	swatchBackground    = swatch{"#ffffff", "#09090b"}
	swatchForeground    = swatch{"#09090b", "#fafafa"}
	swatchPrimary       = swatch{"#18181b", "#fafafa"}
	swatchOnPrimary     = swatch{"#fafafa", "#18181b"}
	swatchSecondary     = swatch{"#f4f4f5", "#27272a"}
	swatchMutedText     = swatch{"#71717a", "#a1a1aa"}
	swatchDestructive   = swatch{"#ef4444", "#dc2626"}
	swatchOnDestructive = swatch{"#fafafa", "#fafafa"}
	swatchSuccess       = swatch{"#16a34a", "#4ade80"}
	swatchBorder        = swatch{"#e4e4e7", "#3f3f46"}
	swatchRing          = swatch{"#18181b", "#d4d4d8"}
)

type colourPicker func(swatch) lipgloss.TerminalColor

func adaptive(s swatch) lipgloss.TerminalColor {
	return lipgloss.AdaptiveColor{Light: s.light, Dark: s.dark}
}

func lightOnly(s swatch) lipgloss.TerminalColor {
	return lipgloss.Color(s.light)
}

func darkOnly(s swatch) lipgloss.TerminalColor {
	return lipgloss.Color(s.dark)
}

func buildTheme(name ThemeName, pick colourPicker) Theme {
	palette := Palette{
		Background: ColourSet{
			Base:   pick(swatchBackground),
			OnBase: pick(swatchForeground),
			Muted:  pick(swatchMutedText),
		},
		Card: ColourSet{
			Base:   pick(swatchBackground),
			OnBase: pick(swatchForeground),
			Muted:  pick(swatchMutedText),
		},
		Primary: ColourSet{
			Base:   pick(swatchPrimary),
			OnBase: pick(swatchOnPrimary),
			Muted:  pick(swatchMutedText),
		},
		Secondary: ColourSet{
			Base:   pick(swatchSecondary),
			OnBase: pick(swatchPrimary),
			Muted:  pick(swatchMutedText),
		},
		Muted: ColourSet{
			Base:   pick(swatchSecondary),
			OnBase: pick(swatchMutedText),
			Muted:  pick(swatchMutedText),
		},
		Accent: ColourSet{
			Base:   pick(swatchSecondary),
			OnBase: pick(swatchPrimary),
			Muted:  pick(swatchMutedText),
		},
		Destructive: ColourSet{
			Base:   pick(swatchDestructive),
			OnBase: pick(swatchOnDestructive),
			Muted:  pick(swatchOnDestructive),
		},
		Success: ColourSet{
			Base:   pick(swatchSuccess),
			OnBase: pick(swatchBackground),
			Muted:  pick(swatchBackground),
		},
		Border: pick(swatchBorder),
		Ring:   pick(swatchRing),
	}

	borders := BorderSet{
		None:    lipgloss.Border{},
		Normal:  lipgloss.NormalBorder(),
		Rounded: lipgloss.RoundedBorder(),
		Thick:   lipgloss.ThickBorder(),
		Double:  lipgloss.DoubleBorder(),
	}

	input := InputStyles{
		Default: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Border).
			Foreground(palette.Background.OnBase).
			Padding(0, 1),
		Focus: lipgloss.NewStyle().
			BorderStyle(borders.Rounded).
			BorderForeground(palette.Ring).
			Foreground(palette.Background.OnBase).
			Padding(0, 1),
	}

	theme := Theme{
		Name:       name,
		Palette:    palette,
		Borders:    borders,
		Typography: defaultTypography(palette),
		Input:      input,
		Variants:   newVariants(),
	}
	return theme.Normalize()
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Background.OnBase)

	return TypographyScale{
		Base:     base,
		Display:  base.Bold(true),
		Title:    base.Bold(true),
		Subtitle: base.Foreground(p.Background.Muted),
		Body:     base,
		Muted:    base.Foreground(p.Background.Muted),
		Label:    base.Bold(true),
		Code: base.
			Foreground(p.Muted.OnBase).
			Background(p.Muted.Base),
		Emphasis: base.Bold(true),
	}
}

// DefaultTheme adapts to the terminal background.
func DefaultTheme() Theme {
	return buildTheme(ThemeAuto, adaptive)
}

// LightTheme always uses the light swatches.
func LightTheme() Theme {
	return buildTheme(ThemeLight, lightOnly)
}

// DarkTheme always uses the dark swatches.
func DarkTheme() Theme {
	return buildTheme(ThemeDark, darkOnly)
}

// ThemeByName resolves "auto", "light" or "dark". An empty name is auto.
func ThemeByName(name string) (Theme, error) {
	switch ThemeName(strings.ToLower(strings.TrimSpace(name))) {
	case ThemeAuto, "":
		return DefaultTheme(), nil
	case ThemeLight:
		return LightTheme(), nil
	case ThemeDark:
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (want auto, light or dark)", name)
	}
}

// Toggled returns the opposite fixed theme. Auto toggles to dark.
func (t Theme) Toggled() Theme {
	if t.Name == ThemeDark {
		return LightTheme()
	}
	return DarkTheme()
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// PaddingValue returns the padding value for the given size.
func PaddingValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Padding, size)
}

// MarginValue returns the margin value for the given size.
func MarginValue(theme Theme, size SpacingSize) int {
	return spacingLookup(theme.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style from the given theme.
func TypographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantDisplay:
		return typo.Display
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantMuted:
		return typo.Muted
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	default:
		return typo.Base
	}
}

// InputStyle returns the input style for the given state.
func InputStyle(theme Theme, state InputState) lipgloss.Style {
	if state == InputStateFocus {
		return theme.Input.Focus
	}
	return theme.Input.Default
}

// PaletteSlot selects a semantic colour set from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PaletteBackground  PaletteSlot = func(p Palette) ColourSet { return p.Background }
	PaletteCard        PaletteSlot = func(p Palette) ColourSet { return p.Card }
	PalettePrimary     PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary   PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteMuted       PaletteSlot = func(p Palette) ColourSet { return p.Muted }
	PaletteAccent      PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteDestructive PaletteSlot = func(p Palette) ColourSet { return p.Destructive }
	PaletteSuccess     PaletteSlot = func(p Palette) ColourSet { return p.Success }
)

// Background applies a semantic background colour and the matching foreground.
//
// Example:
//
//	badge := NewBadge("New").WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a slot's base colour to the text only.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// OnBackground colours text with the page foreground.
func OnBackground() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Palette.Background.OnBase)
	}
}

// MutedForeground colours text with the theme's muted text colour.
func MutedForeground() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(theme.Palette.Background.Muted)
	}
}

// Border applies a border style from the theme in the border colour.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant)).BorderForeground(theme.Palette.Border)
	}
}

// BorderColour recolours an existing border with a palette slot.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

// RingBorder highlights a border with the focus ring colour.
func RingBorder() StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(theme.Palette.Ring)
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.Padding(value)
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Padding, size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := spacingLookup(theme.Spacing.Margin, size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}

func newVariants() *VariantRegistry {
	registry := NewVariantRegistry()
	registerButtonVariants(registry)
	registerBadgeVariants(registry)
	registerAlertVariants(registry)
	return registry
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantDefault, NewCompositeStrategy(
		Background(PalettePrimary),
		Typography(TypographyVariantEmphasis),
	))
	registry.Register(ButtonVariantSecondary, NewCompositeStrategy(
		Background(PaletteSecondary),
	))
	registry.Register(ButtonVariantDestructive, NewCompositeStrategy(
		Background(PaletteDestructive),
		Typography(TypographyVariantEmphasis),
	))
	registry.Register(ButtonVariantOutline, NewCompositeStrategy(
		OnBackground(),
	))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(
		OnBackground(),
	))
	registry.Register(ButtonVariantLink, NewCompositeStrategy(
		func(base lipgloss.Style, theme Theme) lipgloss.Style {
			return base.Foreground(theme.Palette.Primary.Base).Underline(true)
		},
	))
}

func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeVariantDefault, NewCompositeStrategy(
		Background(PalettePrimary),
		Typography(TypographyVariantEmphasis),
	))
	registry.Register(BadgeVariantSecondary, NewCompositeStrategy(
		Background(PaletteSecondary),
	))
	registry.Register(BadgeVariantDestructive, NewCompositeStrategy(
		Background(PaletteDestructive),
	))
	registry.Register(BadgeVariantOutline, NewCompositeStrategy(
		OnBackground(),
	))
}

func registerAlertVariants(registry *VariantRegistry) {
	registry.Register(AlertVariantDefault, NewCompositeStrategy(
		Border(BorderVariantRounded),
		OnBackground(),
	))
	registry.Register(AlertVariantDestructive, NewCompositeStrategy(
		Border(BorderVariantRounded),
		BorderColour(PaletteDestructive),
		Foreground(PaletteDestructive),
	))
	registry.Register(AlertVariantSuccess, NewCompositeStrategy(
		Border(BorderVariantRounded),
		BorderColour(PaletteSuccess),
		Foreground(PaletteSuccess),
	))
}
