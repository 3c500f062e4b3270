package models

// Request types offered by the lead form
const (
	RequestTypeDemo        = "Demo"
	RequestTypeEarlyAccess = "Early Access"
)

// DefaultLocations is the preselected "# of Locations" option
const DefaultLocations = "1"

// RequestTypes lists the radio options in display order
var RequestTypes = []string{RequestTypeDemo, RequestTypeEarlyAccess}

// LocationOptions lists the "# of Locations" select options
var LocationOptions = []string{"1", "2-3", "4-10", "11+"}

// POSOptions lists the "POS System" select options. The empty value renders
// as the "Select one" placeholder.
var POSOptions = []string{"", "NRS", "Square", "Clover", "Lightspeed", "Other / Not sure"}

// LeadForm is a prospect's demo or early-access request as typed into the
// contact form. It is never persisted.
type LeadForm struct {
	FullName     string `form:"fullName" json:"fullName"`
	BusinessName string `form:"businessName" json:"businessName"`
	Email        string `form:"email" json:"email"`
	Phone        string `form:"phone" json:"phone"`
	Locations    string `form:"locations" json:"locations"`
	POS          string `form:"pos" json:"pos"`
	RequestType  string `form:"requestType" json:"requestType"`
	Message      string `form:"message" json:"message"`
}

// NewLeadForm returns a form populated with the defaults shown on first render
func NewLeadForm() LeadForm {
	return LeadForm{
		Locations:   DefaultLocations,
		RequestType: RequestTypeDemo,
	}
}

// IsValidRequestType reports whether t is one of the offered request types
func IsValidRequestType(t string) bool {
	for _, rt := range RequestTypes {
		if rt == t {
			return true
		}
	}
	return false
}

// LeadSubmission is the mail-client handoff built from a valid LeadForm
type LeadSubmission struct {
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	MailtoHref string `json:"mailto"`
}

// LeadFormView is everything the contact section needs to render the form
type LeadFormView struct {
	Form         LeadForm
	Error        string
	ErrorField   string // form field name the error refers to, if any
	Submitted    bool
	MailtoHref   string
	CSRFToken    string
	ContactEmail string
}

// ShowFallbackLink reports whether the "click here to send" link is shown
func (v LeadFormView) ShowFallbackLink() bool {
	return v.Submitted && v.MailtoHref != ""
}
