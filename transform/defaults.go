package transform

// Mode selects how the transformer treats missing content.
//
// Sparse drops empty sections and empty personal info entirely; it answers
// "what did the user actually enter". Placeholder keeps every section key
// and substitutes visible dummy text so a template renders a coherent page
// even for a brand-new portfolio.
type Mode int

const (
	ModeSparse Mode = iota
	ModePlaceholder
)

func (m Mode) String() string {
	if m == ModePlaceholder {
		return "placeholder"
	}
	return "sparse"
}

// ParseMode maps the wire value to a Mode, defaulting to sparse.
func ParseMode(s string) Mode {
	if s == "placeholder" {
		return ModePlaceholder
	}
	return ModeSparse
}

// text is the per-mode fallback for fields that stay blank in sparse mode
// but show dummy copy in placeholder mode.
func (m Mode) text(placeholder string) string {
	if m == ModePlaceholder {
		return placeholder
	}
	return ""
}

// Fallbacks applied in both modes. The image URLs are the stock assets the
// templates were designed around.
const (
	fallbackAvatar       = "https://images.pexels.com/photos/2379004/pexels-photo-2379004.jpeg?auto=compress&cs=tinysrgb&w=600"
	fallbackProjectImage = "https://images.pexels.com/photos/230544/pexels-photo-230544.jpeg?auto=compress&cs=tinysrgb&w=600"
	fallbackLink         = "#"
	fallbackAvailability = "Available"
	fallbackProjStatus   = "Completed"
	fallbackCategory     = "Web Development"
	fallbackPubStatus    = "Published"
)
