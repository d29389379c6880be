package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/showcase/internal/gallery"
	apperrors "github.com/alexisbeaulieu97/showcase/pkg/errors"
)

func TestDefaultContent(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	require.Equal(t, "Beautiful UI Components", c.Hero.Title)
	require.Len(t, c.Features, 6)
	require.Equal(t, "Copy & Paste", c.Features[5].Title)
	require.Len(t, c.QuickStart.PackageManagers, 4)
	require.Len(t, c.QuickStart.InstallSteps, 3)
	require.Len(t, c.QuickStart.Components, 18)
	require.Len(t, c.QuickStart.NextSteps, 3)
	require.Equal(t, 75, c.Showcase.Progress)
	require.Equal(t, "email", c.Showcase.DefaultContact)
	require.Contains(t, c.QuickStart.InstallSteps[2].Code, "export function MyComponent()")
}

func TestDefaultCopyItems(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	items := c.QuickStart.CopyItems()
	indices := make([]int, 0, len(items))
	for _, item := range items {
		indices = append(indices, item.Index)
	}
	require.Equal(t, []int{0, 1, 2, 3, 10, 11, 12}, indices)
	require.Equal(t, "bunx create-next-app@latest my-app", items[3].Payload)
	require.Equal(t, "npx shadcn@latest init", items[4].Payload)
	require.Equal(t, "Initialize shadcn/ui", items[4].Label)
}

func TestDefaultShowcaseBuildsControls(t *testing.T) {
	t.Parallel()

	c, err := Default()
	require.NoError(t, err)

	slider, err := gallery.NewSlider(c.Showcase.SliderOptions())
	require.NoError(t, err)
	require.Equal(t, "Volume: 50", slider.Label())

	toggle := gallery.NewToggle(c.Showcase.Switch.Initial, c.Showcase.ToggleLabels())
	require.Equal(t, "Enable dark mode", toggle.Label())
	require.Equal(t, "Germany", OptionLabel(c.Showcase.Countries, "de"))
	require.Equal(t, "fr", OptionLabel(c.Showcase.Countries, "fr"))
}

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		doc    string
		assert func(t *testing.T, c *Content, err error)
	}{
		{
			name: "syntax error carries line",
			doc:  "hero:\n  title: \"ok\"\n  description: [unterminated\n",
			assert: func(t *testing.T, c *Content, err error) {
				require.Nil(t, c)
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, "inline.yaml", parseErr.Path)
				require.Positive(t, parseErr.Line)
			},
		},
		{
			name: "unknown keys are rejected",
			doc:  "hero:\n  tittle: \"typo\"\n",
			assert: func(t *testing.T, c *Content, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Equal(t, 2, parseErr.Line)
			},
		},
		{
			name: "empty document",
			doc:  "",
			assert: func(t *testing.T, c *Content, err error) {
				var parseErr *apperrors.ParseError
				require.ErrorAs(t, err, &parseErr)
				require.Contains(t, err.Error(), "document is empty")
			},
		},
		{
			name: "missing sections fail validation",
			doc:  "hero:\n  title: \"Only a hero\"\n",
			assert: func(t *testing.T, c *Content, err error) {
				var validationErr *apperrors.ValidationError
				require.ErrorAs(t, err, &validationErr)
			},
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			c, err := Parse("inline.yaml", []byte(tc.doc))
			tc.assert(t, c, err)
		})
	}
}

func TestParseFileRoundTripsDefaultDocument(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, DefaultDocument(), 0o600))

	c, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "Ready to Build?", c.CTA.Title)
}

func TestParseFileMissing(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := ParseFile(path)

	var parseErr *apperrors.ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, path, parseErr.Path)
	require.Zero(t, parseErr.Line)
}

func TestLoadWithoutPathUsesDefault(t *testing.T) {
	t.Parallel()

	c, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "Quick Start", c.Sections.QuickStart.Title)
}
