package content

// Content is the full text and data the showcase site renders.
type Content struct {
	Hero       Hero       `yaml:"hero" validate:"required"`
	Sections   Sections   `yaml:"sections" validate:"required"`
	Features   []Feature  `yaml:"features" validate:"required,min=1,dive"`
	QuickStart QuickStart `yaml:"quick_start" validate:"required"`
	Showcase   Showcase   `yaml:"showcase" validate:"required"`
	CTA        CTA        `yaml:"cta" validate:"required"`
}

// Hero is the banner at the top of the page.
type Hero struct {
	Badge           string `yaml:"badge"`
	Title           string `yaml:"title" validate:"required"`
	Description     string `yaml:"description" validate:"required"`
	PrimaryAction   string `yaml:"primary_action" validate:"required"`
	SecondaryAction string `yaml:"secondary_action"`
}

// Heading titles one page section.
type Heading struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// Sections holds the headings above the feature grid and the two widgets.
type Sections struct {
	Features   Heading `yaml:"features" validate:"required"`
	QuickStart Heading `yaml:"quick_start" validate:"required"`
	Preview    Heading `yaml:"preview" validate:"required"`
}

// Feature is one card of the feature grid.
type Feature struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description" validate:"required"`
	Badge       string `yaml:"badge"`
}

// PackageManager is a project bootstrap command on the Setup tab.
type PackageManager struct {
	Name    string `yaml:"name" validate:"required"`
	Install string `yaml:"install" validate:"required"`
}

// InstallStep is a numbered card on the Installation tab.
type InstallStep struct {
	Title       string `yaml:"title" validate:"required"`
	Code        string `yaml:"code" validate:"required"`
	Description string `yaml:"description"`
}

// NextStep is a bullet on the Usage tab.
type NextStep struct {
	Title       string `yaml:"title" validate:"required"`
	Description string `yaml:"description"`
}

// QuickStart feeds the quick start widget.
type QuickStart struct {
	PackageManagers []PackageManager `yaml:"package_managers" validate:"required,min=1,dive"`
	SetupNote       string           `yaml:"setup_note"`
	InstallSteps    []InstallStep    `yaml:"install_steps" validate:"required,min=1,dive"`
	Components      []string         `yaml:"components" validate:"dive,required"`
	NextSteps       []NextStep       `yaml:"next_steps" validate:"dive"`
}

// Option is a labelled choice in a select or radio group.
type Option struct {
	Value string `yaml:"value" validate:"required,option_value"`
	Label string `yaml:"label" validate:"required"`
}

// SliderSettings configures the volume slider.
type SliderSettings struct {
	Min     int    `yaml:"min"`
	Max     int    `yaml:"max" validate:"gtfield=Min"`
	Step    int    `yaml:"step" validate:"gt=0"`
	Initial int    `yaml:"initial"`
	Label   string `yaml:"label" validate:"omitempty,label_format"`
}

// SwitchSettings labels the dark mode switch.
type SwitchSettings struct {
	Initial bool   `yaml:"initial"`
	On      string `yaml:"on" validate:"required"`
	Off     string `yaml:"off" validate:"required"`
}

// Profile is the avatar row on the Data tab.
type Profile struct {
	Name     string `yaml:"name" validate:"required"`
	Email    string `yaml:"email" validate:"required,email"`
	Initials string `yaml:"initials" validate:"required,max=3"`
}

// Showcase feeds the component preview widget.
type Showcase struct {
	Slider         SliderSettings `yaml:"slider"`
	Switch         SwitchSettings `yaml:"switch" validate:"required"`
	Progress       int            `yaml:"progress" validate:"min=0,max=100"`
	Profile        Profile        `yaml:"profile" validate:"required"`
	Countries      []Option       `yaml:"countries" validate:"required,min=1,dive"`
	ContactMethods []Option       `yaml:"contact_methods" validate:"required,min=1,dive"`
	DefaultContact string         `yaml:"default_contact"`
}

// CTA is the closing call to action.
type CTA struct {
	Title           string `yaml:"title" validate:"required"`
	Description     string `yaml:"description"`
	PrimaryAction   string `yaml:"primary_action" validate:"required"`
	SecondaryAction string `yaml:"secondary_action"`
}
