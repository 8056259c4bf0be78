package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes emitted
// around the numeric control.
type ChromeClass string

const (
	ClassInput   ChromeClass = "fieldkit-input"
	ClassLabel   ChromeClass = "fieldkit-label"
	ClassHelp    ChromeClass = "fieldkit-help"
	ClassIcon    ChromeClass = "fieldkit-icon"
	ClassSpinner ChromeClass = "fieldkit-spinner"
	ClassStepUp  ChromeClass = "fieldkit-step-up"
	ClassStepDn  ChromeClass = "fieldkit-step-down"
)

// Default*Class values apply when RenderOptions overrides are empty.
const (
	DefaultInputClass    = string(ClassInput)
	DefaultLabelClass    = string(ClassLabel)
	DefaultHelpClass     = string(ClassHelp)
	DefaultIconClass     = string(ClassIcon)
	DefaultSpinnerClass  = string(ClassSpinner)
	DefaultStepUpClass   = string(ClassStepUp)
	DefaultStepDownClass = string(ClassStepDn)
)

func defaultChromeClasses() map[ChromeClass]string {
	return map[ChromeClass]string{
		ClassInput:   DefaultInputClass,
		ClassLabel:   DefaultLabelClass,
		ClassHelp:    DefaultHelpClass,
		ClassIcon:    DefaultIconClass,
		ClassSpinner: DefaultSpinnerClass,
		ClassStepUp:  DefaultStepUpClass,
		ClassStepDn:  DefaultStepDownClass,
	}
}
